// Package headless runs the game without any display. Waiting phases are
// passed with an automatic click, which makes it useful for God-mode soak
// runs and for scripting with --max-ticks.
package headless

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// AutoClicker clicks in the middle of the window whenever the game waits
// for a click, and reports no event otherwise.
type AutoClicker struct {
	Game *breakout.Game
}

// PollEvent implements core.EventSource.
func (a AutoClicker) PollEvent() (core.PointerEvent, bool) {
	if !a.Game.AwaitingClick() {
		return core.PointerEvent{}, false
	}
	w, h := a.Game.Surface().Size()
	return core.Click(w/2, h/2), true
}

// Frontend steps the game on a timer.
type Frontend struct{}

// Name returns the frontend identifier.
func (Frontend) Name() string {
	return "headless"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "no display, auto-clicks through waits (use with GOD and --max-ticks)"
}

// Run steps the game every TickInterval until it closes, MaxTicks is
// reached or ctx is cancelled.
func (Frontend) Run(ctx context.Context, game *breakout.Game, cfg core.RuntimeConfig) error {
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = core.DefaultConfig().TickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	src := AutoClicker{Game: game}
	started := time.Now()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
		}

		game.Step(src)
		if game.Done() {
			break loop
		}
		if cfg.MaxTicks > 0 && game.Tick() >= uint64(cfg.MaxTicks) { //#nosec G115 -- MaxTicks is positive here
			break loop
		}
	}

	snap := game.Snapshot()
	log.Info("headless run finished",
		"ticks", snap.Tick,
		"phase", snap.Phase,
		"score", snap.Score,
		"lives", snap.Lives,
		"bricks", snap.BricksRemaining,
		"elapsed", time.Since(started).Round(time.Millisecond),
		"hash", snap.Hash(),
	)
	return nil
}

func init() {
	registry.Register("headless", func() registry.Frontend {
		return Frontend{}
	})
}
