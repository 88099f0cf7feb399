package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a named palette entry attached to shapes and screen cells.
// Frontends translate it to ANSI codes or RGBA values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// String returns the lower-case palette name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor resolves a palette name (case-insensitive, e.g. "BLUE").
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for c, cn := range colorNames {
		if cn == n {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}

// RGBA returns the color used by pixel frontends. ColorDefault renders as
// black, matching a plain filled shape on a white window.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 220, G: 40, B: 40, A: 255}
	case ColorGreen:
		return color.RGBA{R: 40, G: 180, B: 70, A: 255}
	case ColorYellow:
		return color.RGBA{R: 240, G: 200, B: 30, A: 255}
	case ColorBlue:
		return color.RGBA{R: 40, G: 80, B: 220, A: 255}
	case ColorMagenta:
		return color.RGBA{R: 200, G: 50, B: 200, A: 255}
	case ColorCyan:
		return color.RGBA{R: 40, G: 200, B: 220, A: 255}
	case ColorWhite:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case ColorOrange:
		return color.RGBA{R: 250, G: 140, B: 20, A: 255}
	case ColorGray:
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}
