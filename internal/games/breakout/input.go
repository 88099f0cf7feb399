package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scene"
)

// LaserShot describes one laser firing.
type LaserShot struct {
	X       float64 // Column scanned
	FromY   float64 // Beam start, the paddle's vertical middle
	ToY     float64 // Beam end, the hit row or 0
	Brick   *Brick  // Destroyed brick, nil on a miss
	Cleared bool    // The shot destroyed the last brick
}

// InputHandler applies pointer events and God mode to the paddle, and fires
// the laser.
type InputHandler struct {
	world *World

	beam     *scene.Shape
	beamTTL  int
	beamTick int // Ticks the beam stays on screen
}

// NewInputHandler creates a handler. beamTicks is how many ticks a laser
// beam remains visible; values below one are raised to one.
func NewInputHandler(w *World, beamTicks int) *InputHandler {
	return &InputHandler{world: w, beamTick: max(beamTicks, 1)}
}

// BeamTicks converts the laser duration into whole ticks, rounding up.
func BeamTicks(laserMS, tickMS int) int {
	if tickMS <= 0 {
		return 1
	}
	return max(int(math.Ceil(float64(laserMS)/float64(tickMS))), 1)
}

// FollowBall centers the paddle under the ball when God mode is on.
func (h *InputHandler) FollowBall() {
	w := h.world
	if !w.Modes.God {
		return
	}
	w.SetPaddleX(w.Ball.X - w.Paddle.Width/2)
}

// HandleEvent applies one pointer event. It returns the laser shot when a
// click fired the laser.
func (h *InputHandler) HandleEvent(ev core.PointerEvent) *LaserShot {
	w := h.world
	switch ev.Kind {
	case core.PointerMove:
		if !w.Modes.God {
			w.SetPaddleX(ev.X - w.Paddle.Width/2)
		}
	case core.PointerClick:
		if w.Modes.Laser {
			shot := h.FireLaser()
			return &shot
		}
	}
	return nil
}

// FireLaser scans upward from just above the paddle along its center
// column and destroys the first brick it meets. A beam is drawn from the
// paddle to the hit point, or to the top of the window on a miss.
// Ball velocity and paddle width are not affected.
func (h *InputHandler) FireLaser() LaserShot {
	w := h.world
	p := w.Paddle
	shot := LaserShot{X: p.CenterX(), FromY: p.Y + p.Height/2}

	// One beam at a time
	h.clearBeam()
	for y := p.Y - 1; y >= 0; y-- {
		if brick := w.BrickFor(w.surface.ObjectAt(shot.X, y)); brick != nil {
			shot.ToY = y
			shot.Brick = brick
			break
		}
	}

	if shot.Brick != nil {
		shot.Cleared = w.DestroyBrick(shot.Brick)
	}
	h.showBeam(shot)
	return shot
}

func (h *InputHandler) showBeam(shot LaserShot) {
	h.beam = &scene.Shape{
		Kind:   scene.KindLaserBeam,
		Bounds: core.NewRect(shot.X, shot.ToY, 0, shot.FromY-shot.ToY),
		Color:  core.ColorRed,
		Ref:    -1,
	}
	h.beamTTL = h.beamTick
	h.world.surface.Add(h.beam)
}

// ExpireBeam counts down the visible beam and removes it when its time
// is up.
func (h *InputHandler) ExpireBeam() {
	if h.beam == nil {
		return
	}
	h.beamTTL--
	if h.beamTTL <= 0 {
		h.clearBeam()
	}
}

func (h *InputHandler) clearBeam() {
	if h.beam == nil {
		return
	}
	h.world.surface.Remove(h.beam)
	h.beam = nil
	h.beamTTL = 0
}

// BeamVisible reports whether a laser beam is on screen.
func (h *InputHandler) BeamVisible() bool {
	return h.beam != nil
}
