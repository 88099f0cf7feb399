package scene

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestObjectAtReturnsTopmost(t *testing.T) {
	sc := New(400, 600)
	bottom := &Shape{Kind: KindBrick, Bounds: core.NewRect(0, 0, 50, 50)}
	top := &Shape{Kind: KindLabel, Bounds: core.NewRect(25, 25, 50, 50)}
	sc.Add(bottom)
	sc.Add(top)

	tests := []struct {
		name string
		x, y float64
		want *Shape
	}{
		{"only bottom", 10, 10, bottom},
		{"overlap picks later shape", 30, 30, top},
		{"only top", 60, 60, top},
		{"empty space", 200, 200, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sc.ObjectAt(tc.x, tc.y); got != tc.want {
				t.Errorf("ObjectAt(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestBallCornersAreOutside(t *testing.T) {
	ball := &Shape{Kind: KindBall, Bounds: core.NewRect(100, 100, 20, 20)}

	for i, c := range ball.Bounds.Corners() {
		if ball.Contains(c.X, c.Y) {
			t.Errorf("corner %d (%v, %v) should be outside the ball", i, c.X, c.Y)
		}
	}
	if !ball.Contains(110, 110) {
		t.Error("ball center should be inside the ball")
	}
	if !ball.Contains(100, 110) {
		t.Error("leftmost point of the ball should be inside")
	}
}

func TestLaserBeamContains(t *testing.T) {
	beam := &Shape{Kind: KindLaserBeam, Bounds: core.NewRect(50, 0, 0, 100)}

	if !beam.Contains(50, 40) {
		t.Error("point on the beam should be contained")
	}
	if !beam.Contains(50.4, 40) {
		t.Error("point within tolerance should be contained")
	}
	if beam.Contains(52, 40) {
		t.Error("point beside the beam should not be contained")
	}
	if beam.Contains(50, 120) {
		t.Error("point below the beam should not be contained")
	}
}

func TestAddRemove(t *testing.T) {
	sc := New(100, 100)
	s := &Shape{Kind: KindPaddle, Bounds: core.NewRect(0, 0, 10, 10)}

	sc.Add(s)
	sc.Add(s)
	if sc.Len() != 1 {
		t.Errorf("Len() = %d after adding the same shape twice, expected 1", sc.Len())
	}

	if !sc.Remove(s) {
		t.Error("Remove() should report the shape was present")
	}
	if sc.Remove(s) {
		t.Error("second Remove() should report the shape was absent")
	}
	if sc.ObjectAt(5, 5) != nil {
		t.Error("removed shape should not be hit")
	}

	sc.Add(nil)
	if sc.Len() != 0 {
		t.Error("adding nil should be ignored")
	}
}

func TestObjectAtSeesThroughBeam(t *testing.T) {
	sc := New(400, 600)
	paddle := &Shape{Kind: KindPaddle, Bounds: core.NewRect(140, 530, 120, 20)}
	sc.Add(paddle)
	sc.Add(&Shape{Kind: KindLaserBeam, Bounds: core.NewRect(200, 0, 0, 540)})

	if got := sc.ObjectAt(200, 537); got != paddle {
		t.Errorf("ObjectAt on the beam over the paddle = %v, expected the paddle", got)
	}
	if got := sc.ObjectAt(200, 100); got != nil {
		t.Errorf("ObjectAt on the beam alone = %v, expected nil", got.Kind)
	}
}

func TestShapesIsACopy(t *testing.T) {
	sc := New(100, 100)
	sc.Add(&Shape{Kind: KindBrick})
	sc.Add(&Shape{Kind: KindBall})

	shapes := sc.Shapes()
	shapes[0] = nil
	if sc.Shapes()[0] == nil {
		t.Error("mutating the returned slice should not change the scene order")
	}
	if shapes[1].Kind != KindBall {
		t.Errorf("Shapes() order = %v, expected ball on top", shapes[1].Kind)
	}

	w, h := sc.Size()
	if w != 100 || h != 100 {
		t.Errorf("Size() = (%v, %v), expected (100, 100)", w, h)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindPaddle:    "paddle",
		KindBrick:     "brick",
		KindBall:      "ball",
		KindLabel:     "label",
		KindLaserBeam: "laser",
		KindNone:      "none",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, expected %q", k, got, want)
		}
	}
}
