package breakout

import "math"

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	Phase string
	Modes string

	BallX, BallY   float64
	BallVX, BallVY float64

	PaddleX     float64
	PaddleWidth float64

	Score           int
	Lives           int
	BricksRemaining int
	BricksDestroyed int

	// Brick liveness in grid order (column-major)
	BrickAlive []bool

	BeamVisible bool
	Banner      string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	alive := make([]bool, len(w.Bricks))
	for i, b := range w.Bricks {
		alive[i] = b.Alive
	}

	return Snapshot{
		Tick:  g.tick,
		Phase: g.director.Phase().String(),
		Modes: w.Modes.String(),

		BallX:  w.Ball.X,
		BallY:  w.Ball.Y,
		BallVX: w.Ball.VX,
		BallVY: w.Ball.VY,

		PaddleX:     w.Paddle.X,
		PaddleWidth: w.Paddle.Width,

		Score:           w.Board.Score,
		Lives:           w.Board.Lives,
		BricksRemaining: w.Board.BricksRemaining,
		BricksDestroyed: w.Board.BricksDestroyed,

		BrickAlive: alive,

		BeamVisible: g.input.BeamVisible(),
		Banner:      w.Banner(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = hashString(h, snap.Phase)
	h = hashString(h, snap.Modes)

	for _, v := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX, snap.PaddleWidth} {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksDestroyed) //#nosec G115 -- hash computation

	for _, alive := range snap.BrickAlive {
		h = h*31 + boolBit(alive)
	}

	h = h*31 + boolBit(snap.BeamVisible)
	return hashString(h, snap.Banner)
}

func hashString(h uint64, s string) uint64 {
	for i := range len(s) {
		h = h*31 + uint64(s[i])
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
