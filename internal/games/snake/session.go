package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

// Options configures a new session.
type Options struct {
	Width  int
	Height int
	Seed   int64
	Placer Placer // nil means RejectionPlacer with DefaultPlacementBudget
}

// Session is one game: it owns the snake, the food, the score and the
// lifecycle state. Tick is the only method that mutates any of them and must
// be called from a single goroutine. Submit may be called from anywhere.
type Session struct {
	grid   Grid
	rng    *rand.Rand
	placer Placer

	snake     *Snake
	food      Cell
	hasFood   bool
	score     ScoreTracker
	state     State
	endReason EndReason
	pending   *Heading
	tick      uint64

	inbox inbox
}

// NewSession validates the grid and starts a game in the Running state.
func NewSession(opts Options) (*Session, error) {
	grid, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	for _, c := range startBody {
		if !grid.Contains(c) {
			return nil, fmt.Errorf("%w: %dx%d cannot hold a %d-segment snake",
				ErrInvalidGrid, opts.Width, opts.Height, len(startBody))
		}
	}
	if grid.Area() <= len(startBody) {
		return nil, fmt.Errorf("%w: %dx%d leaves no room for food", ErrInvalidGrid, opts.Width, opts.Height)
	}

	placer := opts.Placer
	if placer == nil {
		placer = RejectionPlacer{Budget: DefaultPlacementBudget}
	}

	s := &Session{
		grid:   grid,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		placer: placer,
	}
	s.reset()
	return s, nil
}

// reset puts the session back into the fixed starting configuration.
// The RNG keeps running so restarts stay deterministic for a seed.
func (s *Session) reset() {
	s.snake = newSnake()
	s.score.reset()
	s.state = StateRunning
	s.endReason = EndNone
	s.pending = nil
	s.hasFood = false
	s.placeFood()
}

// Submit queues a command for the next tick.
func (s *Session) Submit(cmd Command) {
	s.inbox.submit(cmd)
}

// Tick advances the simulation by one step.
func (s *Session) Tick() StepResult {
	s.tick++
	var events []Event

	batch := s.inbox.drain()
	if batch.restart {
		s.reset()
		events = append(events, EventRestarted)
	}
	if batch.heading != nil && s.state != StateGameOver {
		s.pending = batch.heading
	}

	// Pausing consumes the tick. Resuming moves on the same tick.
	if batch.togglePause && s.state != StateGameOver {
		if s.state == StateRunning {
			s.state = StatePaused
			return s.result(append(events, EventPaused))
		}
		s.state = StateRunning
		events = append(events, EventResumed)
	}

	if batch.restart || s.state != StateRunning {
		return s.result(events)
	}

	return s.result(s.step(events))
}

// step performs one movement. Caller guarantees the state is Running.
func (s *Session) step(events []Event) []Event {
	heading := s.snake.Heading()
	if s.pending != nil {
		heading = ApplyReversalGuard(*s.pending, heading)
		s.pending = nil
	}

	head := s.snake.PendingHead(heading)
	switch CheckCollision(head, s.grid, s.snake) {
	case OutcomeOutOfBounds:
		return append(events, s.end(EndOutOfBounds))
	case OutcomeSelfCollision:
		return append(events, s.end(EndSelfCollision))
	}

	ate := s.hasFood && head == s.food
	s.snake.commitMove(head, heading, ate)
	events = append(events, EventMoved)

	if ate {
		s.score.OnFoodConsumed()
		events = append(events, EventFoodEaten)
		s.hasFood = false
		if !s.placeFood() {
			events = append(events, s.end(EndBoardFull))
		}
	}
	return events
}

// placeFood asks the placer for a free cell. It returns false when the board
// is full.
func (s *Session) placeFood() bool {
	c, err := s.placer.Place(s.grid, s.snake, s.rng)
	if errors.Is(err, ErrBoardFull) {
		return false
	}
	if err != nil || s.snake.Occupies(c) || !s.grid.Contains(c) {
		// A misbehaving placer must not break the disjointness invariant.
		free := freeCells(s.grid, s.snake)
		if len(free) == 0 {
			return false
		}
		c = free[s.rng.Intn(len(free))]
	}
	s.food = c
	s.hasFood = true
	return true
}

func (s *Session) end(reason EndReason) Event {
	s.state = StateGameOver
	s.endReason = reason
	s.pending = nil
	return EventGameOver
}

func (s *Session) result(events []Event) StepResult {
	return StepResult{Snapshot: s.Snapshot(), Events: events}
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Width:     s.grid.Width(),
		Height:    s.grid.Height(),
		Body:      s.snake.Body(),
		Heading:   s.snake.Heading(),
		Food:      s.food,
		HasFood:   s.hasFood,
		Score:     s.score.Value(),
		State:     s.state,
		EndReason: s.endReason,
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}
