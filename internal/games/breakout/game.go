// Package breakout implements the Breakout game: a ball bouncing off a
// paddle into a grid of bricks, with optional God, Super, Ultimate and
// Laser modes. The game draws into a Surface and advances one fixed step
// per call to Step; frontends own pacing and input.
package breakout

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Banner texts shown when play ends.
const (
	BannerWon  = "Congratulations!"
	BannerLost = "Game Over"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for phase changes and rejected input.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed fixes the RNG seed. Zero picks a time-based seed.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
	}
}

// Game implements the Breakout game logic.
type Game struct {
	cfg     config.BreakoutConfig
	modes   Modes
	seed    int64
	logger  *log.Logger
	surface Surface

	world    *World
	input    *InputHandler
	engine   *Engine
	director *Director
	tick     uint64
}

// New creates a game drawing into surface. The surface must match the
// configured window size.
func New(cfg config.BreakoutConfig, modes Modes, surface Surface, opts ...Option) (*Game, error) {
	if surface == nil {
		return nil, &RenderError{Op: "init", Err: ErrSurfaceUnavailable}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if w, h := surface.Size(); w != cfg.Window.Width || h != cfg.Window.Height {
		return nil, &RenderError{
			Op:  "init",
			Err: fmt.Errorf("surface is %gx%g, want %gx%g: %w", w, h, cfg.Window.Width, cfg.Window.Height, ErrSurfaceUnavailable),
		}
	}

	g := &Game{
		cfg:     cfg,
		modes:   modes,
		logger:  log.New(io.Discard),
		surface: surface,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	g.Reset()
	return g, nil
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.modes == (Modes{}) {
		return "Breakout"
	}
	return fmt.Sprintf("Breakout (%s)", g.modes)
}

// Reset clears the surface and starts a new game with the same seed.
func (g *Game) Reset() {
	for _, s := range g.surface.Shapes() {
		g.surface.Remove(s)
	}

	rng := rand.New(rand.NewPCG(uint64(g.seed), 0x9e3779b97f4a7c15)) //#nosec G115 -- seed bits only
	g.world = NewWorld(g.cfg, g.modes, g.surface, rng)
	g.input = NewInputHandler(g.world, BeamTicks(g.cfg.Timing.LaserMS, g.cfg.Timing.TickMS))
	g.engine = NewEngine(g.world, g.cfg.Ball.SpeedIncrement)
	g.director = NewDirector(g.logger)
	g.tick = 0

	g.logger.Info("game reset",
		"modes", g.modes,
		"seed", g.seed,
		"vx", g.world.Ball.VX,
		"vy", g.world.Ball.VY,
		"bricks", g.world.Board.BricksRemaining,
	)
}

// Step advances the game by one tick, consuming at most one event from src.
func (g *Game) Step(src core.EventSource) core.StepResult {
	if g.director.Done() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.input.ExpireBeam()

	ev, ok := g.poll(src)

	if g.director.AwaitingClick() {
		if ok && ev.Kind == core.PointerClick {
			g.director.Click()
		}
		return core.StepResult{State: g.State()}
	}

	g.input.FollowBall()
	if ok {
		if shot := g.input.HandleEvent(ev); shot != nil {
			g.logShot(shot)
			if shot.Cleared {
				g.win()
				return core.StepResult{State: g.State()}
			}
		}
	}

	out := g.engine.Step()
	if out.Contact == ContactBrick {
		g.logger.Debug("brick destroyed",
			"row", out.Brick.Row,
			"col", out.Brick.Col,
			"corner", CornerName(out.Corner),
			"score", g.world.Board.Score,
			"paddle_width", g.world.Paddle.Width,
		)
	}

	switch {
	case out.Cleared:
		g.win()
	case out.PastPaddle:
		g.loseLife()
	}

	return core.StepResult{State: g.State()}
}

// poll reads one event and drops it if it is malformed.
func (g *Game) poll(src core.EventSource) (core.PointerEvent, bool) {
	if src == nil {
		return core.PointerEvent{}, false
	}
	ev, ok := src.PollEvent()
	if !ok {
		return ev, false
	}
	if err := g.validate(ev); err != nil {
		g.logger.Warn("input ignored", "err", err, "tick", g.tick)
		return core.PointerEvent{}, false
	}
	return ev, true
}

// validate rejects events the game cannot interpret.
func (g *Game) validate(ev core.PointerEvent) error {
	switch {
	case ev.Kind != core.PointerMove && ev.Kind != core.PointerClick:
		return &InputError{Event: ev, Reason: "unknown kind"}
	case !finite(ev.X) || !finite(ev.Y):
		return &InputError{Event: ev, Reason: "non-finite coordinates"}
	case ev.X < 0 || ev.X > g.world.Width || ev.Y < 0 || ev.Y > g.world.Height:
		return &InputError{Event: ev, Reason: "outside the window"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (g *Game) win() {
	w := g.world
	w.ShowBanner(BannerWon, w.Height/2-g.cfg.Bricks.Height)
	g.director.Cleared()
}

func (g *Game) loseLife() {
	w := g.world
	w.ResetBall()
	lives := w.LoseLife()
	g.logger.Info("life lost", "lives", lives, "score", w.Board.Score)
	if lives == 0 {
		w.ShowBanner(BannerLost, w.Height/2-w.Ball.Diameter())
	}
	g.director.LifeLost(lives)
}

func (g *Game) logShot(shot *LaserShot) {
	if shot.Brick == nil {
		g.logger.Debug("laser missed", "x", shot.X)
		return
	}
	g.logger.Debug("laser hit",
		"x", shot.X,
		"y", shot.ToY,
		"row", shot.Brick.Row,
		"col", shot.Brick.Col,
		"score", g.world.Board.Score,
	)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Board.Score,
		Lives:    g.world.Board.Lives,
		GameOver: g.director.Terminal(),
		Closed:   g.director.Done(),
	}
}

// Phase returns the Director's current phase.
func (g *Game) Phase() Phase {
	return g.director.Phase()
}

// Done reports whether the game has finished and the frontend should exit.
func (g *Game) Done() bool {
	return g.director.Done()
}

// AwaitingClick reports whether the game is paused until the next click.
func (g *Game) AwaitingClick() bool {
	return g.director.AwaitingClick()
}

// World exposes the live game state.
func (g *Game) World() *World {
	return g.world
}

// Surface returns the surface the game draws into.
func (g *Game) Surface() Surface {
	return g.surface
}

// Modes returns the modes the game was started with.
func (g *Game) Modes() Modes {
	return g.modes
}

// Config returns the game configuration.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// Tick returns the number of ticks stepped since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Seed returns the RNG seed in use.
func (g *Game) Seed() int64 {
	return g.seed
}
