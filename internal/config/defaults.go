package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration: a 400x600
// window, a 120x20 paddle, 5 rows of 10 bricks and 3 lives.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Window: WindowConfig{
			Width:  400,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:         120,
			Height:        20,
			BottomMargin:  50,
			Shrink:        1,
			MinWidth:      10,
			ClampToWindow: true,
		},
		Bricks: BricksConfig{
			Rows:      5,
			Cols:      10,
			Width:     36,
			Height:    20,
			Spacing:   3,
			RowOffset: 2,
			Colors:    []string{"blue", "red", "yellow", "red", "blue"},
		},
		Ball: BallConfig{
			Radius:         10,
			MinSpeed:       2,
			SpeedJitter:    1,
			SpeedIncrement: 0.1,
			SuperSpeed:     5,
			UltimateSpeed:  10,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			GodModeOnWin: false,
		},
		Timing: TimingConfig{
			TickMS:  10,
			LaserMS: 15,
		},
		HUD: HUDConfig{
			FontSize:       18,
			BannerFontSize: 32,
			BaselineY:      30,
			ScoreX:         10,
			LivesX:         200,
			ValueOffset:    70,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
