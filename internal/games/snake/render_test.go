package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func renderSnapshot(t *testing.T, snap Snapshot, w, h int) *core.Screen {
	t.Helper()
	scr := core.NewScreen(w, h)
	Render(scr, snap, "Snake")
	return scr
}

func TestRenderHUDAndBoard(t *testing.T) {
	s := newTestSession(t)
	scr := renderSnapshot(t, s.Snapshot(), 40, 30)

	if hud := scr.Row(0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Length: 5") {
		t.Errorf("HUD = %q, expected score and length", hud)
	}

	// 20x20 board in a 22 wide box centered on 40 columns, below the HUD.
	originX, originY := 10, 3
	head := scr.GetGlyph(originX, originY)
	if head.Rune != 'O' || head.Color != core.ColorBrightGreen {
		t.Errorf("head glyph = %+v, expected bright green 'O'", head)
	}
	if got := scr.Get(originX, originY+4); got != 'o' {
		t.Errorf("tail glyph = %q, expected 'o'", got)
	}
	food := scr.GetGlyph(originX+19, originY+19)
	if food.Rune != '*' || food.Color != core.ColorRed {
		t.Errorf("food glyph = %+v, expected red '*'", food)
	}
	if strings.Contains(scr.String(), "Paused") || strings.Contains(scr.String(), "Game Over") {
		t.Error("running game should have no banner")
	}
}

func TestRenderBanners(t *testing.T) {
	tests := []struct {
		name   string
		state  State
		reason EndReason
		want   string
	}{
		{"paused", StatePaused, EndNone, "Paused"},
		{"game over", StateGameOver, EndSelfCollision, "Game Over"},
		{"board full", StateGameOver, EndBoardFull, "You Win"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := newTestSession(t).Snapshot()
			snap.State = tc.state
			snap.EndReason = tc.reason

			out := renderSnapshot(t, snap, 40, 30).String()
			if !strings.Contains(out, tc.want) {
				t.Errorf("render missing %q:\n%s", tc.want, out)
			}
		})
	}
}

func TestRenderWindowTooSmall(t *testing.T) {
	snap := newTestSession(t).Snapshot()
	out := renderSnapshot(t, snap, 30, 12).String()

	if !strings.Contains(out, "Window too small") {
		t.Errorf("expected too-small notice:\n%s", out)
	}
	if strings.ContainsRune(out, 'O') {
		t.Error("board should not be drawn on a small screen")
	}
}
