package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	const session = "0b6f7c1a-3d2e-4f5a-8b9c-0d1e2f3a4b5c"
	for _, rec := range []storage.ScoreRecord{
		{Variant: "classic", SessionID: session, Score: 7, Length: 12, EndReason: "out_of_bounds"},
		{Variant: "classic", Score: 30, Length: 35, EndReason: "self_collision"},
		{Variant: "small", SessionID: session, Score: 3, Length: 8, EndReason: "quit"},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatal(err)
		}
	}

	// registry.List is sorted: classic, small, wide.
	m := NewScoreboardModel(store, session, 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 30 {
		t.Fatalf("top view scores = %+v, expected both classic games best first", m.scores)
	}
	if !strings.Contains(m.sidebar(), "20x20") {
		t.Errorf("sidebar should show board sizes:\n%s", m.sidebar())
	}

	updated, _ := m.Update(runeKey('s'))
	m = updated.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Score != 7 {
		t.Fatalf("session view scores = %+v, expected only this session's classic game", m.scores)
	}
	if !strings.Contains(m.View(), "THIS SESSION") {
		t.Error("view title should name the session view")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(ScoreboardModel)
	if v, _ := m.current(); v.ID != "small" || len(m.scores) != 1 || m.scores[0].Score != 3 {
		t.Errorf("after next board: board = %s scores = %+v", v.ID, m.scores)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(ScoreboardModel)
	if v, _ := m.current(); v.ID != "wide" {
		t.Errorf("prev board should wrap to wide, got %s", v.ID)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Errorf("empty scoreboard view:\n%s", m.View())
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !updated.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
