package game

// InputQueue buffers key presses between ticks so that two quick turns made
// inside one tick are both honoured.
type InputQueue struct {
	entries []Direction
}

// Push queues d. If the queue is already full, or d is already waiting, the
// queue is cleared and restarted with d alone.
func (q *InputQueue) Push(d Direction) {
	if len(q.entries) < InputDepth && !q.has(d) {
		q.entries = append(q.entries, d)
		return
	}
	q.entries = append(q.entries[:0], d)
}

// Pop removes the oldest entry. An empty queue yields NoDirection.
func (q *InputQueue) Pop() Direction {
	if len(q.entries) == 0 {
		return NoDirection
	}
	d := q.entries[0]
	q.entries = append(q.entries[:0], q.entries[1:]...)
	return d
}

func (q *InputQueue) Len() int { return len(q.entries) }

func (q *InputQueue) Empty() bool { return len(q.entries) == 0 }

// Entries returns a copy of the queued directions, oldest first.
func (q *InputQueue) Entries() []Direction {
	out := make([]Direction, len(q.entries))
	copy(out, q.entries)
	return out
}

func (q *InputQueue) has(d Direction) bool {
	for _, e := range q.entries {
		if e == d {
			return true
		}
	}
	return false
}
