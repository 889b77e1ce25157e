// Package logging routes the standard logger to a debug file.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "pixelsnake.log"

	// files past this size are rotated on startup
	maxLogSize = 10 * 1024 * 1024
)

// Setup sends log output to logs/pixelsnake.log when debug is set and
// discards it otherwise. The terminal front end owns the screen, so logs
// never go to stdout or stderr. The returned file, if any, must be closed
// by the caller.
func Setup(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(logDir, logFileName)
	rotate(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== pixelsnake started, pid %d ===", os.Getpid())
	return f
}

// rotate moves path aside if it has grown past maxLogSize.
func rotate(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("pixelsnake-%s.log", stamp))
	_ = os.Rename(path, rotated)
}
