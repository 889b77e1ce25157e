package render

import "github.com/mikenye/pixelsnake/internal/game"

// Mapper converts grid positions into pixel positions for one viewport.
// Grid y grows upward while pixel rows grow downward, hence the flip.
type Mapper struct {
	viewW, viewH int
	blockSize    int
}

// NewMapper derives a mapping from the current viewport size. It must be
// rebuilt whenever the viewport changes.
func NewMapper(viewW, viewH, blockSize int) Mapper {
	return Mapper{viewW: viewW, viewH: viewH, blockSize: blockSize}
}

// ToPixel maps the grid origin to the viewport centre.
func (m Mapper) ToPixel(p game.Position) (x, y int) {
	x = p.X*m.blockSize + m.viewW/2
	y = -p.Y*m.blockSize + m.viewH/2
	return x, y
}

// InView reports whether a pixel lies inside the viewport.
func (m Mapper) InView(x, y int) bool {
	return x >= 0 && x < m.viewW && y >= 0 && y < m.viewH
}
