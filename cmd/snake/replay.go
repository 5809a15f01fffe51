package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/tick"
)

var (
	flagRealtime bool
	flagBoard    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.yaml>",
	Short: "Run a command script headlessly",
	Long: `Run a scripted game without a terminal UI and print the final state.

A script names a variant, a seed, how many ticks to run and which commands
to submit before which tick:

  variant: classic
  seed: 42
  ticks: 50
  commands:
    - {tick: 3, command: down}
    - {tick: 10, command: pause}
    - {tick: 12, command: pause}
    - {tick: 20, command: restart}

The same script always produces the same result.

Examples:
  snake replay ./script.yaml
  snake replay ./script.yaml --board
  snake replay ./script.yaml --realtime --tick 50ms`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks with --tick instead of running flat out")
	replayCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board")
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	runner, err := replay.NewRunner(script, cfg.Food.PlacementBudget)
	if err != nil {
		return err
	}

	var sched *tick.Scheduler
	if flagRealtime {
		if sched, err = tick.New(cfg.Game.Tick); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Debug("replaying", "script", args[0], "variant", script.Variant, "seed", script.Seed, "ticks", script.Ticks)
	res, err := runner.Run(ctx, sched)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	final := res.Final
	fmt.Printf("Variant:   %s\n", script.Variant)
	fmt.Printf("Ticks:     %d/%d\n", res.Ticks, script.Ticks)
	fmt.Printf("State:     %s\n", final.State)
	if final.State == snake.StateGameOver {
		fmt.Printf("Ended by:  %s\n", final.EndReason)
	}
	fmt.Printf("Score:     %d (best %d)\n", final.Score, res.BestScore)
	fmt.Printf("Length:    %d\n", len(final.Body))
	fmt.Printf("Head:      %s heading %s\n", final.Head(), final.Heading)
	if final.HasFood {
		fmt.Printf("Food:      %s\n", final.Food)
	}
	fmt.Printf("Eaten: %d  Game overs: %d  Restarts: %d\n", res.FoodEaten, res.GameOvers, res.Restarts)

	if flagBoard {
		title := script.Variant
		if v, err := registry.Lookup(script.Variant); err == nil {
			title = v.Title
		}
		scr := core.NewScreen(final.Width+2, final.Height+4)
		snake.Render(scr, final, title)
		fmt.Println()
		fmt.Println(scr.String())
	}
	return nil
}
