package snake

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(Options{Width: 20, Height: 20, Seed: 42})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	// Park the food far from the starting snake so it is only eaten on purpose.
	s.food = Cell{X: 19, Y: 19}
	s.hasFood = true
	return s
}

func TestNewSessionRejectsBadGrids(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero area", 0, 0},
		{"too short for start body", 10, 4},
		{"start body fills the board", 1, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession(Options{Width: tc.w, Height: tc.h})
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("NewSession(%dx%d) error = %v, expected ErrInvalidGrid", tc.w, tc.h, err)
			}
		})
	}
}

func TestInitialState(t *testing.T) {
	s, err := NewSession(Options{Width: 20, Height: 20, Seed: 7})
	if err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()

	assertBody(t, snap.Body, startBody)
	if snap.Heading != HeadingRight {
		t.Errorf("initial heading = %s, expected right", snap.Heading)
	}
	if snap.State != StateRunning {
		t.Errorf("initial state = %s, expected running", snap.State)
	}
	if snap.Score != 0 {
		t.Errorf("initial score = %d, expected 0", snap.Score)
	}
	if !snap.HasFood || s.snake.Occupies(snap.Food) {
		t.Errorf("initial food %v must exist and be off the snake", snap.Food)
	}
}

// Scenario 1: one tick with no input.
func TestTickWithoutInput(t *testing.T) {
	s := newTestSession(t)

	res := s.Tick()

	assertBody(t, res.Snapshot.Body, []Cell{{1, 0}, {0, 0}, {0, 1}, {0, 2}, {0, 3}})
	if res.Snapshot.Score != 0 {
		t.Errorf("score = %d, expected 0", res.Snapshot.Score)
	}
	if !res.Has(EventMoved) {
		t.Errorf("events = %v, expected moved", res.Events)
	}
}

// Scenario 2: a reversal request is ignored.
func TestReversalRequestIgnored(t *testing.T) {
	s := newTestSession(t)

	s.Submit(RequestHeading(HeadingLeft))
	res := s.Tick()

	if res.Snapshot.Heading != HeadingRight {
		t.Errorf("heading = %s, expected right", res.Snapshot.Heading)
	}
	assertBody(t, res.Snapshot.Body, []Cell{{1, 0}, {0, 0}, {0, 1}, {0, 2}, {0, 3}})
}

// Scenario 3: eating grows the body and scores.
func TestEatingGrowsAndScores(t *testing.T) {
	s := newTestSession(t)
	s.food = Cell{X: 1, Y: 0}

	res := s.Tick()

	assertBody(t, res.Snapshot.Body, []Cell{{1, 0}, {0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}})
	if res.Snapshot.Score != 1 {
		t.Errorf("score = %d, expected 1", res.Snapshot.Score)
	}
	if !res.Has(EventFoodEaten) {
		t.Errorf("events = %v, expected food_eaten", res.Events)
	}
	if !res.Snapshot.HasFood {
		t.Fatal("a new food cell should have been placed")
	}
	for _, c := range res.Snapshot.Body {
		if c == res.Snapshot.Food {
			t.Fatalf("new food %v placed on the snake", res.Snapshot.Food)
		}
	}
}

// Scenario 4: leaving the grid ends the game without moving the body.
func TestOutOfBoundsEndsGame(t *testing.T) {
	s := newTestSession(t)
	s.snake = &Snake{
		body:    []Cell{{19, 0}, {18, 0}, {17, 0}, {16, 0}, {15, 0}},
		heading: HeadingRight,
	}
	before := s.snake.Body()

	res := s.Tick()

	if res.Snapshot.State != StateGameOver {
		t.Fatalf("state = %s, expected game_over", res.Snapshot.State)
	}
	if res.Snapshot.EndReason != EndOutOfBounds {
		t.Errorf("end reason = %s, expected out_of_bounds", res.Snapshot.EndReason)
	}
	if !res.Has(EventGameOver) {
		t.Errorf("events = %v, expected game_over", res.Events)
	}
	assertBody(t, res.Snapshot.Body, before)

	// Further ticks neither move nor re-announce.
	for range 5 {
		res = s.Tick()
		if len(res.Events) != 0 {
			t.Errorf("events after game over = %v, expected none", res.Events)
		}
		assertBody(t, res.Snapshot.Body, before)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	s := newTestSession(t)
	s.snake = &Snake{
		body:    []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {6, 4}},
		heading: HeadingUp,
	}
	s.Submit(RequestHeading(HeadingRight))

	res := s.Tick()

	if res.Snapshot.State != StateGameOver || res.Snapshot.EndReason != EndSelfCollision {
		t.Errorf("state = %s (%s), expected game_over (self_collision)",
			res.Snapshot.State, res.Snapshot.EndReason)
	}
}

func TestMovingIntoVacatingTailCollides(t *testing.T) {
	s := newTestSession(t)
	// A 2x2 loop: the head's next cell is the tail, which would be vacated.
	s.snake = &Snake{
		body:    []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}},
		heading: HeadingRight,
	}

	res := s.Tick()

	if res.Snapshot.EndReason != EndSelfCollision {
		t.Errorf("end reason = %s, expected self_collision", res.Snapshot.EndReason)
	}
}

// Scenario 5: filling the board is a terminal win, not a hang.
func TestBoardFullIsTerminal(t *testing.T) {
	s := newTestSession(t)

	// Serpentine through all 400 cells; the snake covers the first 399 and
	// the last one holds the food.
	var path []Cell
	for y := range 20 {
		for i := range 20 {
			x := i
			if y%2 == 1 {
				x = 19 - i
			}
			path = append(path, Cell{X: x, Y: y})
		}
	}
	body := make([]Cell, 0, 399)
	for i := 398; i >= 0; i-- {
		body = append(body, path[i])
	}
	s.snake = &Snake{body: body, heading: HeadingLeft}
	s.food = path[399]
	s.hasFood = true

	res := s.Tick()

	if len(res.Snapshot.Body) != 400 {
		t.Errorf("body length = %d, expected 400", len(res.Snapshot.Body))
	}
	if res.Snapshot.State != StateGameOver || res.Snapshot.EndReason != EndBoardFull {
		t.Fatalf("state = %s (%s), expected game_over (board_full)",
			res.Snapshot.State, res.Snapshot.EndReason)
	}
	if res.Snapshot.HasFood {
		t.Error("a full board has no food")
	}
	if res.Snapshot.Score != 1 {
		t.Errorf("score = %d, expected 1", res.Snapshot.Score)
	}
}

func TestPauseInvariance(t *testing.T) {
	s := newTestSession(t)
	s.Tick()

	s.Submit(TogglePause())
	res := s.Tick()
	if res.Snapshot.State != StatePaused || !res.Has(EventPaused) {
		t.Fatalf("state = %s events = %v, expected paused", res.Snapshot.State, res.Events)
	}
	frozen := res.Snapshot

	for range 10 {
		res = s.Tick()
		assertBody(t, res.Snapshot.Body, frozen.Body)
		if res.Snapshot.Food != frozen.Food || res.Snapshot.Score != frozen.Score {
			t.Fatalf("food/score changed while paused: %+v vs %+v", res.Snapshot, frozen)
		}
	}

	s.Submit(TogglePause())
	res = s.Tick()
	if res.Snapshot.State != StateRunning || !res.Has(EventResumed) {
		t.Fatalf("state = %s events = %v, expected resumed", res.Snapshot.State, res.Events)
	}
	if !res.Has(EventMoved) || res.Snapshot.Head() != (Cell{2, 0}) {
		t.Errorf("resume tick: head = %v events = %v, expected a move to (2,0)", res.Snapshot.Head(), res.Events)
	}
}

func TestDoubleToggleBetweenTicksCancels(t *testing.T) {
	s := newTestSession(t)
	s.Submit(TogglePause())
	s.Submit(TogglePause())

	res := s.Tick()

	if res.Snapshot.State != StateRunning || !res.Has(EventMoved) {
		t.Errorf("state = %s events = %v, expected a normal move", res.Snapshot.State, res.Events)
	}
}

func TestHeadingRequestedWhilePausedAppliesAfterResume(t *testing.T) {
	s := newTestSession(t)
	s.snake = &Snake{
		body:    []Cell{{5, 5}, {4, 5}, {3, 5}, {2, 5}, {1, 5}},
		heading: HeadingRight,
	}

	s.Submit(TogglePause())
	s.Tick()
	s.Submit(RequestHeading(HeadingDown))
	s.Tick()
	if got := s.Snapshot().Head(); got != (Cell{5, 5}) {
		t.Fatalf("head moved while paused: %v", got)
	}

	s.Submit(TogglePause())
	res := s.Tick()

	if res.Snapshot.Head() != (Cell{5, 6}) || res.Snapshot.Heading != HeadingDown {
		t.Errorf("head = %v heading = %s, expected (5,6) down", res.Snapshot.Head(), res.Snapshot.Heading)
	}
}

func TestCommandsIgnoredWhileGameOver(t *testing.T) {
	s := newTestSession(t)
	s.snake = &Snake{
		body:    []Cell{{19, 0}, {18, 0}, {17, 0}, {16, 0}, {15, 0}},
		heading: HeadingRight,
	}
	s.Tick()

	s.Submit(TogglePause())
	s.Submit(RequestHeading(HeadingDown))
	res := s.Tick()

	if res.Snapshot.State != StateGameOver {
		t.Errorf("state = %s, expected game_over", res.Snapshot.State)
	}
	if len(res.Events) != 0 {
		t.Errorf("events = %v, expected none", res.Events)
	}
	if s.pending != nil {
		t.Error("heading requests must not be recorded while game over")
	}
}

func TestRestartDeterminism(t *testing.T) {
	s := newTestSession(t)
	s.food = Cell{X: 1, Y: 0}
	s.Tick() // eat once
	s.Submit(RequestHeading(HeadingDown))
	s.Tick()
	s.Submit(TogglePause())
	s.Tick()

	for _, name := range []string{"paused", "game over"} {
		if name == "game over" {
			s.Submit(TogglePause())
			s.Tick()
			s.snake = &Snake{body: []Cell{{19, 3}, {18, 3}, {17, 3}, {16, 3}, {15, 3}}, heading: HeadingRight}
			s.Tick()
			if s.State() != StateGameOver {
				t.Fatalf("setup: state = %s, expected game_over", s.State())
			}
		}

		s.Submit(RequestHeading(HeadingUp)) // dropped by the restart below
		s.Submit(Restart())
		res := s.Tick()

		if !res.Has(EventRestarted) {
			t.Errorf("%s: events = %v, expected restarted", name, res.Events)
		}
		assertBody(t, res.Snapshot.Body, startBody)
		if res.Snapshot.Heading != HeadingRight {
			t.Errorf("%s: heading = %s, expected right", name, res.Snapshot.Heading)
		}
		if res.Snapshot.Score != 0 || res.Snapshot.State != StateRunning || res.Snapshot.EndReason != EndNone {
			t.Errorf("%s: snapshot = %+v, expected fresh running game", name, res.Snapshot)
		}
		if !res.Snapshot.HasFood || s.snake.Occupies(res.Snapshot.Food) {
			t.Errorf("%s: food %v must be placed off the snake", name, res.Snapshot.Food)
		}
		if s.pending != nil {
			t.Errorf("%s: pending heading should be cleared by restart", name)
		}

		s.Submit(TogglePause())
		s.Tick()
	}
}

// Two requests between ticks: only the last one is checked against the
// committed heading, so Down -> (Up, Left) turns left.
func TestOnlyLastRequestIsGuarded(t *testing.T) {
	s := newTestSession(t)
	for range 3 {
		s.Tick()
	}
	s.Submit(RequestHeading(HeadingDown))
	s.Tick()
	s.Tick()
	if s.snake.Heading() != HeadingDown || s.snake.Head() != (Cell{3, 2}) {
		t.Fatalf("setup: head = %v heading = %s", s.snake.Head(), s.snake.Heading())
	}

	s.Submit(RequestHeading(HeadingUp))
	s.Submit(RequestHeading(HeadingLeft))
	res := s.Tick()

	if res.Snapshot.Heading != HeadingLeft || res.Snapshot.Head() != (Cell{2, 2}) {
		t.Errorf("head = %v heading = %s, expected (2,2) left", res.Snapshot.Head(), res.Snapshot.Heading)
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	s, err := NewSession(Options{Width: 8, Height: 8, Seed: 2024})
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(5))
	headings := []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

	for i := 0; i < 5000; i++ {
		switch r := rng.Intn(10); {
		case r < 4:
			s.Submit(RequestHeading(headings[rng.Intn(len(headings))]))
		case r == 4 && s.State() == StateGameOver:
			s.Submit(Restart())
		}

		before := s.Snapshot()
		res := s.Tick()
		snap := res.Snapshot

		if snap.State == StateGameOver {
			continue
		}
		if !snap.HasFood {
			t.Fatalf("tick %d: no food while %s", i, snap.State)
		}
		seen := make(map[Cell]bool, len(snap.Body))
		for _, c := range snap.Body {
			if c == snap.Food {
				t.Fatalf("tick %d: food %v on snake", i, snap.Food)
			}
			if seen[c] {
				t.Fatalf("tick %d: duplicate body cell %v", i, c)
			}
			seen[c] = true
		}
		if snap.Score < before.Score && !res.Has(EventRestarted) {
			t.Fatalf("tick %d: score went down from %d to %d", i, before.Score, snap.Score)
		}
		if res.Has(EventMoved) && !res.Has(EventFoodEaten) && len(snap.Body) != len(before.Body) {
			t.Fatalf("tick %d: plain move changed length %d -> %d", i, len(before.Body), len(snap.Body))
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		s, err := NewSession(Options{Width: 20, Height: 20, Seed: 12345})
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 200; i++ {
			switch i {
			case 20:
				s.Submit(RequestHeading(HeadingDown))
			case 40:
				s.Submit(RequestHeading(HeadingLeft))
			case 60:
				s.Submit(Restart())
			}
			s.Tick()
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Food != b.Food || a.Score != b.Score || a.State != b.State || a.Tick != b.Tick {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}
	assertBody(t, a.Body, b.Body)
}

func TestSubmitIsSafeFromOtherGoroutines(t *testing.T) {
	s := newTestSession(t)
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.Submit(RequestHeading(Heading(i % 4)))
			}
		}()
	}
	for range 20 {
		s.Tick()
	}
	wg.Wait()
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession(t)
	snap := s.Snapshot()
	snap.Body[0] = Cell{X: 9, Y: 9}

	if s.snake.Head() != (Cell{0, 0}) {
		t.Error("mutating a snapshot must not change the session")
	}
}

type fixedPlacer struct{ c Cell }

func (p fixedPlacer) Place(Grid, *Snake, *rand.Rand) (Cell, error) {
	return p.c, nil
}

func TestMisbehavingPlacerCannotPutFoodOnSnake(t *testing.T) {
	s, err := NewSession(Options{Width: 20, Height: 20, Placer: fixedPlacer{c: Cell{0, 2}}})
	if err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if !snap.HasFood || s.snake.Occupies(snap.Food) {
		t.Errorf("food %v must be off the snake", snap.Food)
	}
}
