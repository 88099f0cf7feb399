// breakout is the classic brick-breaking arcade game for the terminal or a
// desktop window.
//
// Usage:
//
//	breakout [GOD] [SUPER] [ULTIMATE] [LASER]   - Play (mode words in any order)
//	breakout frontends                          - List available frontends
//	breakout config                             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - YAML or TOML config file
//	--frontend <name>   - tui, window or headless (default: tui)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
//	--max-ticks <n>     - Stop after n ticks (headless)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/scene"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-breakout/internal/platform/headless"
	_ "github.com/vovakirdan/tui-breakout/internal/platform/tui"
	_ "github.com/vovakirdan/tui-breakout/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagFrontend string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
	flagMaxTicks int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout [GOD] [SUPER] [ULTIMATE] [LASER]",
	Short: "Breakout - bounce the ball, break the bricks",
	Long: `Breakout: steer the paddle with the mouse and clear all bricks
before you run out of lives. Click to start and to serve again after a miss.

Mode words (any order, exact case):
  GOD       - The paddle follows the ball on its own
  SUPER     - The ball launches at super speed
  ULTIMATE  - The ball launches at ultimate speed
  LASER     - Clicking fires a laser from the paddle

Examples:
  breakout
  breakout LASER SUPER
  breakout GOD --frontend headless --max-ticks 5000
  breakout --frontend window --config ./breakout.toml`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend: tui, window, headless")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop after this many ticks (headless, 0 = unlimited)")

	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q (run 'breakout frontends' to list them)", flagFrontend)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, flagFrontend == "headless")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}

	modes := breakout.ParseModes(args)
	surface := scene.New(cfg.Window.Width, cfg.Window.Height)
	game, err := breakout.New(cfg, modes, surface,
		breakout.WithLogger(logger),
		breakout.WithSeed(flagSeed),
	)
	if err != nil {
		return err
	}

	runtime := runtimeConfig(cfg)
	runtime.Seed = game.Seed()

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", frontend.Name(), "modes", modes, "seed", runtime.Seed)
	if err := frontend.Run(ctx, game, runtime); err != nil {
		var renderErr *breakout.RenderError
		if errors.As(err, &renderErr) {
			logger.Error("frontend failed", "op", renderErr.Op, "err", renderErr.Err)
		}
		return err
	}

	st := game.State()
	logger.Info("finished", "phase", game.Phase(), "score", st.Score, "lives", st.Lives)
	return nil
}

// runtimeConfig builds frontend settings from the game config and terminal.
func runtimeConfig(cfg config.BreakoutConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickInterval = cfg.TickInterval()
	rc.MaxTicks = flagMaxTicks
	return rc
}
