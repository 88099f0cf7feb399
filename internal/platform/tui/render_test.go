package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/scene"
)

func newTestGame(t *testing.T) *breakout.Game {
	t.Helper()
	cfg := config.DefaultBreakoutConfig()
	g, err := breakout.New(cfg, breakout.Modes{}, scene.New(cfg.Window.Width, cfg.Window.Height), breakout.WithSeed(3))
	if err != nil {
		t.Fatalf("breakout.New() error = %v", err)
	}
	return g
}

func TestRasterizeLayout(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(100, 80)
	v := NewViewport(400, 600, 100, 80)

	Rasterize(screen, g.Surface().Shapes(), v)

	hud := screen.Row(3)
	if !strings.Contains(hud, "Score:") || !strings.Contains(hud, "Lives:") {
		t.Errorf("HUD row = %q, expected score and lives", hud)
	}
	if screen.Get(20, 3) != '0' || screen.Get(67, 3) != '3' {
		t.Errorf("HUD values missing in %q", hud)
	}

	if screen.Get(1, 5) != BrickChar || screen.GetCell(1, 5).Color != core.ColorBlue {
		t.Errorf("cell (1, 5) = %+v, expected a blue brick", screen.GetCell(1, 5))
	}
	if screen.Get(10, 5) != ' ' {
		t.Error("bricks should be separated by a blank column")
	}
	if screen.Get(50, 37) != BallChar {
		t.Errorf("ball missing, got %q", screen.Get(50, 37))
	}
	if screen.Get(35, 66) != PaddleChar || screen.Get(64, 66) != PaddleChar {
		t.Error("paddle should span columns 35 to 64")
	}
}

func TestRasterizeBeamAndBanner(t *testing.T) {
	screen := core.NewScreen(100, 80)
	v := NewViewport(400, 600, 100, 80)
	shapes := []*scene.Shape{
		{Kind: scene.KindLaserBeam, Bounds: core.NewRect(202, 0, 0, 540), Color: core.ColorRed},
		{Kind: scene.KindLabel, Bounds: core.NewRect(100, 274, 100, 32), Text: "Game Over"},
	}

	Rasterize(screen, shapes, v)

	if screen.Get(50, 0) != BeamChar || screen.Get(50, 67) != BeamChar {
		t.Error("beam should run from row 0 to row 67")
	}
	if screen.Get(50, 68) == BeamChar {
		t.Error("beam should stop at the paddle")
	}
	if !strings.Contains(screen.Row(36), "Game Over") {
		t.Errorf("banner row = %q", screen.Row(36))
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawText(0, 0, "Score: 7", core.ColorDefault)
	screen.SetCell(0, 1, BrickChar, core.ColorRed)

	out := RenderScreen(screen)
	if !strings.Contains(out, "Score: 7") || !strings.ContainsRune(out, BrickChar) {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
