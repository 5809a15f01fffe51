package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// State is the lifecycle state of a session.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason records why a session entered GameOver.
type EndReason int

const (
	EndNone EndReason = iota
	EndOutOfBounds
	EndSelfCollision
	EndBoardFull // every cell is snake: the player won
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndOutOfBounds:
		return "out_of_bounds"
	case EndSelfCollision:
		return "self_collision"
	case EndBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Event is a notification produced by a tick for the renderer.
type Event int

const (
	EventMoved Event = iota
	EventFoodEaten
	EventPaused
	EventResumed
	EventGameOver
	EventRestarted
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventFoodEaten:
		return "food_eaten"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session after a tick.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Body      []Cell // head first
	Heading   Heading
	Food      Cell
	HasFood   bool
	Score     int
	State     State
	EndReason EndReason
}

// Head returns the head cell of the snapshot body.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// GameState converts the snapshot into the host-facing summary.
func (s Snapshot) GameState() core.GameState {
	return core.GameState{
		Score:    s.Score,
		GameOver: s.State == StateGameOver,
		Paused:   s.State == StatePaused,
	}
}

// StepResult is returned by Session.Tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
