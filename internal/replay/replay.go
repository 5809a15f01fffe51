// Package replay runs a snake session headlessly from a YAML command script.
// The same seed and script always produce the same final snapshot.
package replay

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/tick"
)

// ErrInvalidScript is wrapped by every script validation failure.
var ErrInvalidScript = errors.New("replay: invalid script")

// Script is a scripted session.
type Script struct {
	Variant  string `yaml:"variant"`
	Seed     int64  `yaml:"seed"`
	Ticks    uint64 `yaml:"ticks"`
	Commands []Step `yaml:"commands"`
}

// Step submits Command just before tick Tick fires (ticks count from 1).
type Step struct {
	Tick    uint64 `yaml:"tick"`
	Command string `yaml:"command"` // up, down, left, right, pause, restart
}

// Result summarizes a finished run.
type Result struct {
	Final     snake.Snapshot
	Ticks     uint64
	FoodEaten int
	GameOvers int
	Restarts  int
	BestScore int
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	s := &Script{Variant: "classic"}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("replay: failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the variant, ticks and command names.
func (s *Script) Validate() error {
	if !registry.Exists(s.Variant) {
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidScript, s.Variant)
	}
	if s.Ticks == 0 {
		return fmt.Errorf("%w: ticks must be positive", ErrInvalidScript)
	}
	for i, st := range s.Commands {
		if st.Tick == 0 || st.Tick > s.Ticks {
			return fmt.Errorf("%w: command %d: tick %d outside 1..%d", ErrInvalidScript, i, st.Tick, s.Ticks)
		}
		if _, err := ParseCommand(st.Command); err != nil {
			return fmt.Errorf("%w: command %d: %w", ErrInvalidScript, i, err)
		}
	}
	return nil
}

// ParseCommand maps a script word to an engine command.
func ParseCommand(word string) (snake.Command, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	switch word {
	case "pause":
		return snake.TogglePause(), nil
	case "restart":
		return snake.Restart(), nil
	}
	h, err := snake.ParseHeading(word)
	if err != nil {
		return snake.Command{}, err
	}
	return snake.RequestHeading(h), nil
}

// Runner drives one script against a fresh session.
type Runner struct {
	script  *Script
	session *snake.Session
	byTick  map[uint64][]snake.Command
	result  Result
}

// NewRunner builds the session for a validated script.
func NewRunner(s *Script, placementBudget int) (*Runner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	session, err := snake.NewVariantSession(s.Variant, s.Seed, placementBudget)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	byTick := make(map[uint64][]snake.Command, len(s.Commands))
	for _, st := range s.Commands {
		cmd, _ := ParseCommand(st.Command) // checked by Validate
		byTick[st.Tick] = append(byTick[st.Tick], cmd)
	}

	return &Runner{
		script:  s,
		session: session,
		byTick:  byTick,
		result:  Result{Final: session.Snapshot()},
	}, nil
}

// Run executes the whole script. With a nil scheduler ticks fire back to
// back; otherwise they are paced by sched.
func (r *Runner) Run(ctx context.Context, sched *tick.Scheduler) (Result, error) {
	if sched == nil {
		for r.result.Ticks < r.script.Ticks {
			if err := ctx.Err(); err != nil {
				return r.result, err
			}
			r.fire()
		}
		return r.result, nil
	}

	err := sched.Run(ctx, func(uint64) bool {
		r.fire()
		return r.result.Ticks < r.script.Ticks
	})
	return r.result, err
}

func (r *Runner) fire() {
	n := r.result.Ticks + 1
	for _, cmd := range r.byTick[n] {
		r.session.Submit(cmd)
	}

	res := r.session.Tick()
	r.result.Ticks = n
	r.result.Final = res.Snapshot
	r.result.BestScore = max(r.result.BestScore, res.Snapshot.Score)
	for _, e := range res.Events {
		switch e {
		case snake.EventFoodEaten:
			r.result.FoodEaten++
		case snake.EventGameOver:
			r.result.GameOvers++
		case snake.EventRestarted:
			r.result.Restarts++
		}
	}
}
