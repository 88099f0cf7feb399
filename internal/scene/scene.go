// Package scene models the rendering surface shared by the game and its
// frontends: an ordered list of tagged shapes with topmost-first hit-testing.
// Frontends draw the shapes; the game queries them for collisions.
package scene

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Kind tags every shape so callers can switch on it directly.
type Kind int

const (
	KindNone Kind = iota
	KindPaddle
	KindBrick
	KindBall
	KindLabel
	KindLaserBeam
)

// String returns the name of the shape kind.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBrick:
		return "brick"
	case KindBall:
		return "ball"
	case KindLabel:
		return "label"
	case KindLaserBeam:
		return "laser"
	default:
		return "none"
	}
}

// beamTolerance is how far (in pixels) from a beam's column a point may be
// and still count as touching it.
const beamTolerance = 0.5

// Shape is a renderable, hit-testable object.
//
// Bounds is the bounding box for every kind. A laser beam is a vertical
// line at Bounds.X spanning Bounds.Y to Bounds.Bottom(). A ball is the
// ellipse inscribed in its bounds, so its bounding-box corners are outside it.
type Shape struct {
	Kind     Kind
	Bounds   core.Rect
	Color    core.Color
	Filled   bool
	Text     string  // Label text
	FontSize float64 // Label font size in points
	Ref      int     // Owner index (brick index for KindBrick)
}

// Contains reports whether the point (x, y) lies on the shape.
func (s *Shape) Contains(x, y float64) bool {
	switch s.Kind {
	case KindBall:
		rx, ry := s.Bounds.W/2, s.Bounds.H/2
		if rx <= 0 || ry <= 0 {
			return false
		}
		c := s.Bounds.Center()
		dx := (x - c.X) / rx
		dy := (y - c.Y) / ry
		return dx*dx+dy*dy <= 1
	case KindLaserBeam:
		return math.Abs(x-s.Bounds.X) <= beamTolerance && y >= s.Bounds.Y && y <= s.Bounds.Bottom()
	default:
		return s.Bounds.Contains(x, y)
	}
}

// Scene is an in-memory rendering surface of fixed pixel size.
// Shapes added later are drawn on top of earlier ones.
type Scene struct {
	width  float64
	height float64
	shapes []*Shape
}

// New creates an empty scene with the given window size in pixels.
func New(width, height float64) *Scene {
	return &Scene{
		width:  width,
		height: height,
		shapes: make([]*Shape, 0, 64),
	}
}

// Size returns the window size in pixels.
func (sc *Scene) Size() (width, height float64) {
	return sc.width, sc.height
}

// Add places a shape on top of the scene. Adding a shape twice is a no-op.
func (sc *Scene) Add(s *Shape) {
	if s == nil || slices.Contains(sc.shapes, s) {
		return
	}
	sc.shapes = append(sc.shapes, s)
}

// Remove deletes a shape. It returns false when the shape was not present.
func (sc *Scene) Remove(s *Shape) bool {
	i := slices.Index(sc.shapes, s)
	if i < 0 {
		return false
	}
	sc.shapes = slices.Delete(sc.shapes, i, i+1)
	return true
}

// Solid reports whether the shape takes part in hit-testing. Laser beams
// are drawn but never block anything.
func (s *Shape) Solid() bool {
	return s.Kind != KindLaserBeam
}

// ObjectAt returns the topmost solid shape containing (x, y), or nil.
func (sc *Scene) ObjectAt(x, y float64) *Shape {
	for i := len(sc.shapes) - 1; i >= 0; i-- {
		if s := sc.shapes[i]; s.Solid() && s.Contains(x, y) {
			return s
		}
	}
	return nil
}

// Shapes returns the shapes bottom to top. The slice is a copy; the shapes
// are shared.
func (sc *Scene) Shapes() []*Shape {
	return slices.Clone(sc.shapes)
}

// Len returns the number of shapes in the scene.
func (sc *Scene) Len() int {
	return len(sc.shapes)
}
