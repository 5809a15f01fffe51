// snake is a terminal snake game with a tick-driven engine.
//
// Usage:
//
//	snake list                  - List board variants
//	snake play [variant]        - Play a variant (default from config)
//	snake menu                  - Pick a variant interactively
//	snake scores [variant]      - Show high scores
//	snake serve                 - Start SSH server for remote play
//	snake replay <script.yaml>  - Run a command script headlessly
//
// Global flags:
//
//	--tick <period>     - Time between moves (default: 100ms)
//	--seed <value>      - RNG seed for reproducible food placement
//	--db <path>         - Scores database (default: ~/.snake/scores.db)
//	--config <path>     - Config YAML
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagTick     time.Duration
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	cfg    config.SnakeConfig
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal version of the classic grid game: steer the snake,
eat food to grow, and avoid the walls and your own body.

Available commands:
  list     - Show board variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  replay   - Run a scripted game headlessly

Examples:
  snake play
  snake play small --tick 150ms
  snake menu
  snake serve --ssh :2222
  snake replay ./script.yaml --board`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 100*time.Millisecond, "Time between moves")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup loads the config, applies flags that were set explicitly and builds
// the logger.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})

	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		cfg.Game.Tick = flagTick
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Storage.DB = config.ExpandHome(cfg.Storage.DB)
	cfg.Server.HostKey = config.ExpandHome(cfg.Server.HostKey)

	logger.Debug("config loaded",
		"variant", cfg.Game.Variant,
		"tick", cfg.Game.Tick,
		"db", cfg.Storage.DB,
	)
	return nil
}

// runtimeConfig builds the host config from the terminal size and settings.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickPeriod: cfg.Game.Tick,
		Seed:       cfg.Game.Seed,
		FoodBudget: cfg.Food.PlacementBudget,
	}
}
