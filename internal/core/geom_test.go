package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if r.Right() != 30 {
		t.Errorf("Right() = %d, expected 30", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)
	inner := outer.Centered(6, 4)

	if inner.X != 7 || inner.Y != 3 {
		t.Errorf("Centered() origin = (%d, %d), expected (7, 3)", inner.X, inner.Y)
	}
	if inner.Right() != 13 || inner.Bottom() != 7 {
		t.Errorf("Centered() edges = (%d, %d), expected (13, 7)", inner.Right(), inner.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestActionIsMove(t *testing.T) {
	moves := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range moves {
		if !a.IsMove() {
			t.Errorf("%s should be a move action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionPause, ActionRestart, ActionBack, ActionQuit} {
		if a.IsMove() {
			t.Errorf("%s should not be a move action", a)
		}
	}
}
