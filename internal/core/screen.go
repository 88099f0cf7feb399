package core

import (
	"strings"
)

// Cell is a single character position with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Run is a horizontal stretch of cells sharing one color.
type Run struct {
	Text  string
	Color Color
}

// Screen is a character buffer the terminal frontend rasterizes the scene
// into before styling it. Cells are stored row-major in one slice.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a blank screen of width x height cells.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the dimensions and blanks the buffer. The frontend redraws
// every frame, so old content is not kept.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	n := s.width * s.height
	if cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell places a colored rune. Off-screen writes are dropped.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell off-screen.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.width+x]
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes text left to right from (x, y), clipping at the edges.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetCell(x, y, r, c)
		x++
	}
}

// FillRect fills w x h cells starting at (x, y).
func (s *Screen) FillRect(x, y, w, h int, r rune, c Color) {
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			s.SetCell(cx, cy, r, c)
		}
	}
}

// DrawVLine draws length cells downward from (x, y).
func (s *Screen) DrawVLine(x, y, length int, r rune, c Color) {
	for i := range length {
		s.SetCell(x, y+i, r, c)
	}
}

// Row returns row y as plain text, or spaces when y is off-screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Runs splits row y into same-color runs, left to right.
func (s *Screen) Runs(y int) []Run {
	if y < 0 || y >= s.height || s.width == 0 {
		return nil
	}

	row := s.cells[y*s.width : (y+1)*s.width]
	var (
		runs []Run
		sb   strings.Builder
	)
	current := row[0].Color
	for _, c := range row {
		if c.Color != current {
			runs = append(runs, Run{Text: sb.String(), Color: current})
			sb.Reset()
			current = c.Color
		}
		sb.WriteRune(c.Rune)
	}
	return append(runs, Run{Text: sb.String(), Color: current})
}

// String returns all rows joined with newlines, without colors.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
