package snake

// Outcome is the result of checking a candidate head.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeOutOfBounds
	OutcomeSelfCollision
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeOutOfBounds:
		return "out_of_bounds"
	case OutcomeSelfCollision:
		return "self_collision"
	default:
		return "unknown"
	}
}

// CheckCollision evaluates a candidate head against the grid bounds and the
// pre-move body. The tail still counts as occupied even though a plain move
// would vacate it.
func CheckCollision(head Cell, grid Grid, body *Snake) Outcome {
	if !grid.Contains(head) {
		return OutcomeOutOfBounds
	}
	if body.Occupies(head) {
		return OutcomeSelfCollision
	}
	return OutcomeOK
}
