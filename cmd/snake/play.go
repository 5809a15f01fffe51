package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board variant",
	Long: `Start playing the given board variant (default: game.variant from config).

Controls:
  Arrows/WASD  - Steer
  P/F2/Space   - Pause / resume
  R/F1         - Restart
  Ctrl+S       - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play wide
  snake play small --tick 80ms --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	id := cfg.Game.Variant
	if len(args) == 1 {
		id = args[0]
	}

	variant, err := registry.Lookup(id)
	if err != nil {
		return fmt.Errorf("%w (run 'snake list' to see boards)", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(variant, store, runtimeConfig(), uuid.NewString(), logger)
	return err
}

// openStore opens the scores database, or returns nil so the game can run
// without it.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.Storage.DB, "error", err)
		return nil
	}
	return store
}
