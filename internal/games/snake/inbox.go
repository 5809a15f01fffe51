package snake

import "sync"

// CommandKind identifies an input command.
type CommandKind int

const (
	CommandHeading CommandKind = iota
	CommandTogglePause
	CommandRestart
)

// Command is an input request. Commands never mutate the simulation
// directly; they are queued and read at the next tick boundary.
type Command struct {
	Kind    CommandKind
	Heading Heading // only for CommandHeading
}

// RequestHeading asks for a new heading on the next tick.
func RequestHeading(h Heading) Command {
	return Command{Kind: CommandHeading, Heading: h}
}

// TogglePause flips between Running and Paused.
func TogglePause() Command {
	return Command{Kind: CommandTogglePause}
}

// Restart reinitializes the session regardless of its state.
func Restart() Command {
	return Command{Kind: CommandRestart}
}

// inbox collects commands between ticks. It is the only piece of a session
// that may be written from outside the tick goroutine.
type inbox struct {
	mu      sync.Mutex
	heading *Heading
	toggles int
	restart bool
}

type pendingBatch struct {
	heading     *Heading
	togglePause bool
	restart     bool
}

func (in *inbox) submit(cmd Command) {
	in.mu.Lock()
	defer in.mu.Unlock()

	switch cmd.Kind {
	case CommandHeading:
		h := cmd.Heading
		in.heading = &h
	case CommandTogglePause:
		in.toggles++
	case CommandRestart:
		// Anything queued before the restart belongs to the old game.
		in.restart = true
		in.heading = nil
		in.toggles = 0
	}
}

func (in *inbox) drain() pendingBatch {
	in.mu.Lock()
	defer in.mu.Unlock()

	b := pendingBatch{
		heading:     in.heading,
		togglePause: in.toggles%2 == 1,
		restart:     in.restart,
	}
	in.heading = nil
	in.toggles = 0
	in.restart = false
	return b
}
