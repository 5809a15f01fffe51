package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a board, Tab for the
scoreboard. Pause or finish a game and press Esc to return to the menu.

Examples:
  snake menu
  snake menu --tick 150ms
  snake menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sessionID := uuid.NewString() // one player session across menu round trips
	if err := menuLoop(store, sessionID); err != nil {
		return err
	}

	if sum, err := tui.SummarizeSession(store, sessionID); err != nil {
		logger.Warn("could not summarize session", "error", err)
	} else if sum.Games > 0 {
		fmt.Println(sum)
	}
	return nil
}

func menuLoop(store *storage.Store, sessionID string) error {
	rc := runtimeConfig()
	fixedSeed := rc.Seed != 0

	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			return err
		}
		rc = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, sessionID, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		variant, err := registry.Lookup(menuResult.VariantID)
		if err != nil {
			logger.Error("menu returned unknown variant", "error", err)
			continue
		}

		if !fixedSeed {
			rc.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(variant, store, rc, sessionID, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
