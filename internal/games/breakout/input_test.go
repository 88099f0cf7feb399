package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/scene"
)

func TestMoveCentersPaddleOnPointer(t *testing.T) {
	tests := []struct {
		name  string
		clamp bool
		x     float64
		want  float64
	}{
		{"inside", true, 200, 140},
		{"clamped left", true, 10, 0},
		{"clamped right", true, 395, 280},
		{"unclamped left", false, 10, -50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := newTestWorld(t, Modes{}, func(c *config.BreakoutConfig) {
				c.Paddle.ClampToWindow = tc.clamp
			})
			h := NewInputHandler(w, 1)

			h.HandleEvent(core.Move(tc.x, 100))

			if w.Paddle.X != tc.want || w.Paddle.Y != 530 {
				t.Errorf("paddle at (%v, %v), expected (%v, 530)", w.Paddle.X, w.Paddle.Y, tc.want)
			}
		})
	}
}

func TestGodModeFollowsBall(t *testing.T) {
	w, _ := newTestWorld(t, Modes{God: true}, nil)
	h := NewInputHandler(w, 1)
	placeBall(w, 100, 300)

	h.FollowBall()
	if w.Paddle.X != 40 {
		t.Errorf("paddle X = %v, expected 40", w.Paddle.X)
	}

	h.HandleEvent(core.Move(300, 100))
	if w.Paddle.X != 40 {
		t.Errorf("pointer moved the paddle to %v in God mode", w.Paddle.X)
	}
}

func TestClickWithoutLaserDoesNothing(t *testing.T) {
	w, _ := newTestWorld(t, Modes{}, nil)
	h := NewInputHandler(w, 1)

	if shot := h.HandleEvent(core.Click(200, 300)); shot != nil {
		t.Errorf("HandleEvent(click) = %+v, expected nil without laser", shot)
	}
	if w.Board.Score != 0 {
		t.Error("click should not score")
	}
}

func TestLaserMissDrawsBeamToTop(t *testing.T) {
	w, sc := newTestWorld(t, Modes{Laser: true}, nil)
	h := NewInputHandler(w, 2)

	// The default paddle center, x = 200, falls in the gap between columns
	shot := h.HandleEvent(core.Click(200, 300))
	if shot == nil {
		t.Fatal("click should fire the laser")
	}
	if shot.Brick != nil || w.Board.Score != 0 || w.Board.BricksRemaining != 50 {
		t.Errorf("laser should miss, got %+v with board %+v", shot, w.Board)
	}
	if shot.X != 200 || shot.FromY != 540 || shot.ToY != 0 {
		t.Errorf("beam = x %v from %v to %v, expected x 200 from 540 to 0", shot.X, shot.FromY, shot.ToY)
	}

	beam := findKind(sc, scene.KindLaserBeam)
	if beam == nil {
		t.Fatal("beam should be on the surface")
	}
	if beam.Bounds.Y != 0 || beam.Bounds.Bottom() != 540 {
		t.Errorf("beam bounds = %+v", beam.Bounds)
	}
}

func TestLaserHitsBrickNearestPaddle(t *testing.T) {
	w, sc := newTestWorld(t, Modes{Laser: true}, nil)
	h := NewInputHandler(w, 2)
	w.SetPaddleX(0) // center x = 60, inside column 1
	vx, vy := w.Ball.VX, w.Ball.VY

	shot := h.FireLaser()

	if shot.Brick == nil {
		t.Fatal("laser should hit a brick")
	}
	if shot.Brick.Col != 1 || shot.Brick.Row != 4 {
		t.Errorf("hit row %d col %d, expected the bottom brick of column 1", shot.Brick.Row, shot.Brick.Col)
	}
	if shot.ToY != 157 {
		t.Errorf("ToY = %v, expected 157", shot.ToY)
	}
	if w.Board.Score != 1 || w.Board.BricksRemaining != 49 {
		t.Errorf("Board = %+v", w.Board)
	}
	if w.Ball.VX != vx || w.Ball.VY != vy || w.Paddle.Width != 120 {
		t.Error("laser must not change ball velocity or paddle width")
	}

	// The next shot in the same column reaches the row above
	shot = h.FireLaser()
	if shot.Brick == nil || shot.Brick.Row != 3 {
		t.Errorf("second shot = %+v, expected row 3", shot.Brick)
	}
	if n := countKind(sc, scene.KindLaserBeam); n != 1 {
		t.Errorf("%d beams on the surface, expected 1", n)
	}
}

func TestBeamExpires(t *testing.T) {
	w, sc := newTestWorld(t, Modes{Laser: true}, nil)
	h := NewInputHandler(w, BeamTicks(15, 10))

	h.FireLaser()
	h.ExpireBeam()
	if !h.BeamVisible() {
		t.Fatal("beam should last two ticks")
	}
	h.ExpireBeam()
	if h.BeamVisible() || findKind(sc, scene.KindLaserBeam) != nil {
		t.Error("beam should be gone after two ticks")
	}
}

func TestBeamTicks(t *testing.T) {
	tests := []struct {
		laser, tick, want int
	}{
		{15, 10, 2},
		{20, 10, 2},
		{21, 10, 3},
		{0, 10, 1},
		{5, 10, 1},
		{15, 0, 1},
	}
	for _, tc := range tests {
		if got := BeamTicks(tc.laser, tc.tick); got != tc.want {
			t.Errorf("BeamTicks(%d, %d) = %d, expected %d", tc.laser, tc.tick, got, tc.want)
		}
	}
}

func findKind(sc *scene.Scene, kind scene.Kind) *scene.Shape {
	for _, s := range sc.Shapes() {
		if s.Kind == kind {
			return s
		}
	}
	return nil
}

func countKind(sc *scene.Scene, kind scene.Kind) int {
	n := 0
	for _, s := range sc.Shapes() {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
