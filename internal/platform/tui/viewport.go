package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Viewport maps the game's pixel window onto terminal cells.
// A cell is twice as tall as it is wide, so one cell covers ScaleX by
// 2*ScaleX pixels. The grid is centered horizontally in the terminal.
type Viewport struct {
	worldW, worldH float64
	scaleX, scaleY float64
	cols, rows     int
	offsetX        int
}

// NewViewport fits a worldW x worldH pixel window into cols x rows cells.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)

	sx := max(worldW/float64(cols), worldH/(2*float64(rows)))
	sy := 2 * sx
	used := min(int(math.Ceil(worldW/sx)), cols)

	return Viewport{
		worldW:  worldW,
		worldH:  worldH,
		scaleX:  sx,
		scaleY:  sy,
		cols:    used,
		rows:    min(int(math.Ceil(worldH/sy)), rows),
		offsetX: (cols - used) / 2,
	}
}

// Cols returns the number of terminal columns the window occupies.
func (v Viewport) Cols() int {
	return v.cols
}

// Rows returns the number of terminal rows the window occupies.
func (v Viewport) Rows() int {
	return v.rows
}

// OffsetX returns the first terminal column of the window.
func (v Viewport) OffsetX() int {
	return v.offsetX
}

// CellWidth returns how many pixels one column spans.
func (v Viewport) CellWidth() float64 {
	return v.scaleX
}

// ToCell returns the cell containing pixel (x, y).
func (v Viewport) ToCell(x, y float64) (col, row int) {
	return v.offsetX + int(math.Floor(x/v.scaleX)), int(math.Floor(y / v.scaleY))
}

// ToPixel returns the pixel at the center of cell (col, row), clamped to
// the window.
func (v Viewport) ToPixel(col, row int) (x, y float64) {
	x = (float64(col-v.offsetX) + 0.5) * v.scaleX
	y = (float64(row) + 0.5) * v.scaleY
	return core.Clamp(x, 0, v.worldW), core.Clamp(y, 0, v.worldH)
}
