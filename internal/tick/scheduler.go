// Package tick drives a snake session at a fixed period. Interactive hosts
// use Cmd inside a Bubble Tea program; headless hosts use Run.
package tick

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultPeriod is the reference tick period.
const DefaultPeriod = 100 * time.Millisecond

// ErrInvalidPeriod is returned for non-positive periods.
var ErrInvalidPeriod = errors.New("tick: invalid period")

// Msg is delivered to a Bubble Tea model each time the scheduler fires.
type Msg struct {
	Seq uint64
	At  time.Time

	from *Scheduler
}

// Scheduler fires at a fixed period.
type Scheduler struct {
	period time.Duration
	seq    atomic.Uint64
}

// New returns a scheduler with the given period.
func New(period time.Duration) (*Scheduler, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPeriod, period)
	}
	return &Scheduler{period: period}, nil
}

// Period returns the tick period.
func (s *Scheduler) Period() time.Duration {
	return s.period
}

// Cmd schedules the next tick. The model must call Cmd again after handling
// each Msg to keep the loop going.
func (s *Scheduler) Cmd() tea.Cmd {
	return tea.Tick(s.period, func(t time.Time) tea.Msg {
		return Msg{Seq: s.seq.Add(1), At: t, from: s}
	})
}

// Owns reports whether msg was produced by this scheduler. A model that
// outlives its game uses it to drop ticks meant for the previous one.
func (s *Scheduler) Owns(msg Msg) bool {
	return msg.from == s
}

// Run calls fire once per period until ctx is done or fire returns false.
// Calls to fire never overlap.
func (s *Scheduler) Run(ctx context.Context, fire func(seq uint64) bool) error {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !fire(s.seq.Add(1)) {
				return nil
			}
		}
	}
}
