// Package config provides YAML/TOML game configuration loading for breakout.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BreakoutConfig contains all tunable parameters of the game.
type BreakoutConfig struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Paddle   PaddleConfig   `yaml:"paddle" toml:"paddle"`
	Bricks   BricksConfig   `yaml:"bricks" toml:"bricks"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing" toml:"timing"`
	HUD      HUDConfig      `yaml:"hud" toml:"hud"`
}

// WindowConfig defines the playfield size in pixels.
type WindowConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PaddleConfig defines paddle geometry and shrinking.
type PaddleConfig struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	BottomMargin  float64 `yaml:"bottom_margin" toml:"bottom_margin"`     // Gap between paddle bottom and window bottom
	Shrink        float64 `yaml:"shrink" toml:"shrink"`                   // Width lost per brick hit by the ball
	MinWidth      float64 `yaml:"min_width" toml:"min_width"`             // Floor for shrinking
	ClampToWindow bool    `yaml:"clamp_to_window" toml:"clamp_to_window"` // Keep the paddle fully inside the window
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Rows      int      `yaml:"rows" toml:"rows"`
	Cols      int      `yaml:"cols" toml:"cols"`
	Width     float64  `yaml:"width" toml:"width"`
	Height    float64  `yaml:"height" toml:"height"`
	Spacing   float64  `yaml:"spacing" toml:"spacing"`
	RowOffset int      `yaml:"row_offset" toml:"row_offset"` // Grid row of the first brick row
	Colors    []string `yaml:"colors" toml:"colors"`         // Palette by row, cycled
}

// BallConfig defines ball size and speed rules.
type BallConfig struct {
	Radius         float64 `yaml:"radius" toml:"radius"`
	MinSpeed       float64 `yaml:"min_speed" toml:"min_speed"`             // Normal mode component lower bound
	SpeedJitter    float64 `yaml:"speed_jitter" toml:"speed_jitter"`       // Normal mode random range above MinSpeed
	SpeedIncrement float64 `yaml:"speed_increment" toml:"speed_increment"` // Added to |vx| and |vy| per brick
	SuperSpeed     float64 `yaml:"super_speed" toml:"super_speed"`
	UltimateSpeed  float64 `yaml:"ultimate_speed" toml:"ultimate_speed"`
}

// GameplayConfig defines lives and compatibility quirks.
type GameplayConfig struct {
	Lives int `yaml:"lives" toml:"lives"`
	// GodModeOnWin turns God mode on when the last brick falls,
	// reproducing an old quirk. Off by default.
	GodModeOnWin bool `yaml:"god_mode_on_win" toml:"god_mode_on_win"`
}

// TimingConfig defines loop pacing in milliseconds.
type TimingConfig struct {
	TickMS  int `yaml:"tick_ms" toml:"tick_ms"`
	LaserMS int `yaml:"laser_ms" toml:"laser_ms"`
}

// HUDConfig defines scoreboard label placement (baseline coordinates).
type HUDConfig struct {
	FontSize       float64 `yaml:"font_size" toml:"font_size"`
	BannerFontSize float64 `yaml:"banner_font_size" toml:"banner_font_size"`
	BaselineY      float64 `yaml:"baseline_y" toml:"baseline_y"`
	ScoreX         float64 `yaml:"score_x" toml:"score_x"`
	LivesX         float64 `yaml:"lives_x" toml:"lives_x"`
	ValueOffset    float64 `yaml:"value_offset" toml:"value_offset"`
}

// Validate checks that the configuration describes a playable game.
func (c *BreakoutConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle: size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.MinWidth < 0 || c.Paddle.MinWidth > c.Paddle.Width {
		errs = append(errs, fmt.Errorf("paddle.min_width: must be within [0, %v], got %v", c.Paddle.Width, c.Paddle.MinWidth))
	}
	if c.Paddle.Shrink < 0 {
		errs = append(errs, fmt.Errorf("paddle.shrink: must not be negative, got %v", c.Paddle.Shrink))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		errs = append(errs, fmt.Errorf("bricks: grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.Cols))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, fmt.Errorf("bricks: size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height))
	}
	if len(c.Bricks.Colors) == 0 {
		errs = append(errs, errors.New("bricks.colors: palette must not be empty"))
	}
	for _, name := range c.Bricks.Colors {
		if _, err := core.ParseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("bricks.colors: %w", err))
		}
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius: must be positive, got %v", c.Ball.Radius))
	}
	if c.Ball.MinSpeed < 0 {
		errs = append(errs, fmt.Errorf("ball.min_speed: must not be negative, got %v", c.Ball.MinSpeed))
	}
	if c.Ball.SpeedJitter < 0 {
		errs = append(errs, fmt.Errorf("ball.speed_jitter: must not be negative, got %v", c.Ball.SpeedJitter))
	}
	if c.Ball.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("ball.speed_increment: must not be negative, got %v", c.Ball.SpeedIncrement))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives: must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms: must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.LaserMS < 0 {
		errs = append(errs, fmt.Errorf("timing.laser_ms: must not be negative, got %d", c.Timing.LaserMS))
	}

	return errors.Join(errs...)
}

// BrickColors resolves the row palette. Call Validate first; unknown names
// fall back to the default color.
func (c *BreakoutConfig) BrickColors() []core.Color {
	colors := make([]core.Color, 0, len(c.Bricks.Colors))
	for _, name := range c.Bricks.Colors {
		col, err := core.ParseColor(name)
		if err != nil {
			col = core.ColorDefault
		}
		colors = append(colors, col)
	}
	return colors
}

// BrickCount returns the initial number of bricks.
func (c *BreakoutConfig) BrickCount() int {
	return c.Bricks.Rows * c.Bricks.Cols
}

// TickInterval returns the pause between simulation ticks.
func (c *BreakoutConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}
