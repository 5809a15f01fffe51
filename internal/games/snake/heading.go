package snake

import "fmt"

// Heading is the direction the head moves on the next committed step.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

// Delta returns the unit offset for the heading. Y grows downward.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseHeading converts "up", "down", "left" or "right" into a Heading.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "up":
		return HeadingUp, nil
	case "down":
		return HeadingDown, nil
	case "left":
		return HeadingLeft, nil
	case "right":
		return HeadingRight, nil
	}
	return 0, fmt.Errorf("snake: unknown heading %q", s)
}

// ApplyReversalGuard returns current when requested points straight back
// into the neck, and requested otherwise.
func ApplyReversalGuard(requested, current Heading) Heading {
	if requested == current.Opposite() {
		return current
	}
	return requested
}
