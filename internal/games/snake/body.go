package snake

// startBody is the fixed starting layout, head first.
var startBody = []Cell{
	{X: 0, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: 2},
	{X: 0, Y: 3},
	{X: 0, Y: 4},
}

// startHeading is the heading every session starts and restarts with.
const startHeading = HeadingRight

// Snake is the ordered body of occupied cells (head at index 0) and the
// committed heading.
type Snake struct {
	body    []Cell
	heading Heading
}

// newSnake returns a snake in the fixed starting configuration.
func newSnake() *Snake {
	body := make([]Cell, len(startBody))
	copy(body, startBody)
	return &Snake{body: body, heading: startHeading}
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the committed heading.
func (s *Snake) Heading() Heading {
	return s.heading
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether c is part of the body.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// PendingHead returns the cell the head would enter moving in h.
func (s *Snake) PendingHead(h Heading) Cell {
	return s.Head().Step(h)
}

// commitMove pushes head to the front of the body and drops the tail unless
// the snake ate. Only Session.Tick calls this, and only while Running.
func (s *Snake) commitMove(head Cell, heading Heading, ateFood bool) {
	s.heading = heading
	if ateFood {
		s.body = append(s.body, Cell{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}
