package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scene"
)

// Visual characters for rendering
const (
	BrickChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
	BeamChar   = '│'
)

// edge keeps a shape's right and bottom edges out of the next cell.
const edge = 1e-6

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlack:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Rasterize draws the shapes bottom to top into dst.
func Rasterize(dst *core.Screen, shapes []*scene.Shape, v Viewport) {
	dst.Clear()

	// Text cursor per row, so a value label never overwrites its caption
	textEnd := make(map[int]int)

	for _, s := range shapes {
		b := s.Bounds
		switch s.Kind {
		case scene.KindBrick, scene.KindPaddle:
			c0, r0 := v.ToCell(b.X, b.Y)
			c1, r1 := v.ToCell(b.Right()-edge, b.Bottom()-edge)
			glyph := PaddleChar
			if s.Kind == scene.KindBrick {
				glyph = BrickChar
				// Leave a gap between neighbours when there is room
				if c1-c0 >= 2 {
					c1--
				}
			}
			dst.FillRect(c0, r0, c1-c0+1, r1-r0+1, glyph, s.Color)

		case scene.KindBall:
			c := b.Center()
			col, row := v.ToCell(c.X, c.Y)
			dst.SetCell(col, row, BallChar, s.Color)

		case scene.KindLaserBeam:
			c0, r0 := v.ToCell(b.X, b.Y)
			_, r1 := v.ToCell(b.X, b.Bottom()-edge)
			dst.DrawVLine(c0, r0, r1-r0+1, BeamChar, s.Color)

		case scene.KindLabel:
			c := b.Center()
			col, row := v.ToCell(b.X, c.Y)
			if end, ok := textEnd[row]; ok && col < end {
				col = end
			}
			dst.DrawText(col, row, s.Text, s.Color)
			textEnd[row] = col + len([]rune(s.Text))
		}
	}
}

// RenderScreen styles the screen row by row, one escape sequence per
// color run.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		var sb strings.Builder
		for _, run := range s.Runs(y) {
			style, ok := colorStyles[run.Color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.Text))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
