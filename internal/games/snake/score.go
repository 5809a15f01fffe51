package snake

// ScoreTracker counts food eaten in the current session. It only goes up,
// one point per food, and is reset by a restart.
type ScoreTracker struct {
	value int
}

// OnFoodConsumed adds exactly one point.
func (t *ScoreTracker) OnFoodConsumed() {
	t.value++
}

// Value returns the current score.
func (t *ScoreTracker) Value() int {
	return t.value
}

func (t *ScoreTracker) reset() {
	t.value = 0
}
