package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode("defaults/breakout.yaml", DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded YAML drifted from DefaultBreakoutConfig():\n got %+v\nwant %+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCustomYAMLKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "gameplay:\n  lives: 5\nbricks:\n  rows: 2\n  colors: [green]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}

	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if cfg.Bricks.Rows != 2 || cfg.Bricks.Cols != 10 {
		t.Errorf("grid = %dx%d, expected 2x10", cfg.Bricks.Rows, cfg.Bricks.Cols)
	}
	if got := cfg.BrickColors(); len(got) != 1 || got[0] != core.ColorGreen {
		t.Errorf("BrickColors() = %v, expected [green]", got)
	}
	if cfg.Paddle.Width != 120 {
		t.Errorf("Paddle.Width = %v, expected default 120", cfg.Paddle.Width)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := `
[ball]
super_speed = 6.5

[timing]
tick_ms = 16

[gameplay]
god_mode_on_win = true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}

	if cfg.Ball.SuperSpeed != 6.5 {
		t.Errorf("SuperSpeed = %v, expected 6.5", cfg.Ball.SuperSpeed)
	}
	if cfg.Timing.TickMS != 16 {
		t.Errorf("TickMS = %d, expected 16", cfg.Timing.TickMS)
	}
	if !cfg.Gameplay.GodModeOnWin {
		t.Error("GodModeOnWin should be true")
	}
	if cfg.Ball.UltimateSpeed != 10 {
		t.Errorf("UltimateSpeed = %v, expected default 10", cfg.Ball.UltimateSpeed)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should return an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("window: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(broken); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("broken YAML error = %v, expected parse failure", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(invalid)
	if err == nil || !strings.Contains(err.Error(), "gameplay.lives") {
		t.Errorf("invalid config error = %v, expected it to name gameplay.lives", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		field  string
	}{
		{"zero window", func(c *BreakoutConfig) { c.Window.Width = 0 }, "window"},
		{"empty grid", func(c *BreakoutConfig) { c.Bricks.Cols = 0 }, "bricks"},
		{"empty palette", func(c *BreakoutConfig) { c.Bricks.Colors = nil }, "bricks.colors"},
		{"unknown color", func(c *BreakoutConfig) { c.Bricks.Colors = []string{"plaid"} }, "plaid"},
		{"min width above width", func(c *BreakoutConfig) { c.Paddle.MinWidth = 500 }, "paddle.min_width"},
		{"negative shrink", func(c *BreakoutConfig) { c.Paddle.Shrink = -1 }, "paddle.shrink"},
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }, "ball.radius"},
		{"negative min speed", func(c *BreakoutConfig) { c.Ball.MinSpeed = -2 }, "ball.min_speed"},
		{"negative jitter", func(c *BreakoutConfig) { c.Ball.SpeedJitter = -0.5 }, "ball.speed_jitter"},
		{"negative increment", func(c *BreakoutConfig) { c.Ball.SpeedIncrement = -0.1 }, "ball.speed_increment"},
		{"zero tick", func(c *BreakoutConfig) { c.Timing.TickMS = 0 }, "timing.tick_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.field)
			}
		})
	}
}

func TestValidateAllowsZeroRates(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Paddle.Shrink = 0
	cfg.Ball.SpeedJitter = 0
	cfg.Ball.SpeedIncrement = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, zero rates should be accepted", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Gameplay.Lives = 7

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "lives: 7") {
		t.Errorf("Marshal() output missing lives, got:\n%s", data)
	}

	back, err := decode("out.yaml", data)
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, cfg)
	}
}

func TestBrickCount(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if cfg.BrickCount() != 50 {
		t.Errorf("BrickCount() = %d, expected 50", cfg.BrickCount())
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if got := cfg.TickInterval(); got != 10*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 10ms", got)
	}
}
