package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/scene"
)

// Contact identifies what the ball touched during a physics step.
type Contact int

const (
	ContactNone   Contact = iota
	ContactPaddle         // Ball hit the paddle
	ContactBrick          // Ball destroyed a brick
	ContactOther          // Ball overlapped something else (a label)
)

// String returns a human-readable name for the contact.
func (c Contact) String() string {
	switch c {
	case ContactPaddle:
		return "paddle"
	case ContactBrick:
		return "brick"
	case ContactOther:
		return "other"
	default:
		return "none"
	}
}

// Outcome summarizes one physics step.
type Outcome struct {
	Contact    Contact
	Brick      *Brick // Destroyed brick when Contact is ContactBrick
	WallX      bool   // Side wall bounce
	WallY      bool   // Ceiling bounce
	Cleared    bool   // The last brick was destroyed
	PastPaddle bool   // Ball's bottom edge reached the window bottom
	Corner     int    // Index of the sampled corner that hit, or -1
}

// Engine advances the ball and resolves collisions against the surface.
type Engine struct {
	world    *World
	increase float64
}

// NewEngine creates an engine for the world. increase is added to the
// magnitude of each velocity component on every brick hit.
func NewEngine(w *World, increase float64) *Engine {
	return &Engine{world: w, increase: increase}
}

// Step moves the ball one tick and applies wall, paddle and brick rules.
func (e *Engine) Step() Outcome {
	w := e.world
	ball := w.Ball
	var out Outcome

	ball.Move()

	// Side walls and ceiling; there is no floor bounce
	if ball.X <= 0 || ball.X+ball.Diameter() >= w.Width {
		ball.BounceX()
		out.WallX = true
	}
	if ball.Y <= 0 {
		ball.BounceY()
		out.WallY = true
	}

	hit, corner := e.detectCollision()
	out.Corner = corner
	switch {
	case hit == nil:
	case hit.Kind == scene.KindPaddle:
		out.Contact = ContactPaddle
		ball.BounceY()
	case hit.Kind == scene.KindBrick:
		brick := w.BrickFor(hit)
		if brick == nil {
			out.Contact = ContactOther
			break
		}
		out.Contact = ContactBrick
		out.Brick = brick
		out.Cleared = w.DestroyBrick(brick)
		ball.BounceY()
		ball.VX = accelerate(ball.VX, e.increase)
		ball.VY = accelerate(ball.VY, e.increase)
		w.ShrinkPaddle()
	default:
		out.Contact = ContactOther
	}

	out.PastPaddle = w.PastPaddle()
	return out
}

// detectCollision samples the ball's bounding-box corners in order and
// returns the topmost solid shape at the first occupied corner together
// with the corner's index in sampling order. Laser beams are never hit.
func (e *Engine) detectCollision() (*scene.Shape, int) {
	w := e.world
	for i, p := range w.Ball.Bounds().Corners() {
		if s := w.surface.ObjectAt(p.X, p.Y); s != nil && s != w.Ball.shape && s.Solid() {
			return s, i
		}
	}
	return nil, -1
}

// accelerate grows the magnitude of v by delta, keeping its sign.
// A zero component stays zero.
func accelerate(v, delta float64) float64 {
	switch {
	case v > 0:
		return v + delta
	case v < 0:
		return v - delta
	default:
		return 0
	}
}

// cornerNames labels the sampling order.
var cornerNames = [4]string{"top-left", "top-right", "bottom-left", "bottom-right"}

// CornerName returns the name of a corner index reported in Outcome.
func CornerName(i int) string {
	if i < 0 || i >= len(cornerNames) {
		return "none"
	}
	return cornerNames[i]
}
