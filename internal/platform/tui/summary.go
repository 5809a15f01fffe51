package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SessionSummary totals the games saved under one session ID.
type SessionSummary struct {
	Games  int
	Best   int
	Total  int
	Boards []string // variant IDs in the order first played
}

// SummarizeSession reads every game recorded for sessionID.
func SummarizeSession(store *storage.Store, sessionID string) (SessionSummary, error) {
	var sum SessionSummary
	if store == nil || sessionID == "" {
		return sum, nil
	}

	records, err := store.SessionScores(sessionID)
	if err != nil {
		return sum, err
	}

	seen := make(map[string]bool)
	for _, r := range records {
		sum.Games++
		sum.Total += r.Score
		sum.Best = max(sum.Best, r.Score)
		if !seen[r.Variant] {
			seen[r.Variant] = true
			sum.Boards = append(sum.Boards, r.Variant)
		}
	}
	return sum, nil
}

func (s SessionSummary) String() string {
	if s.Games == 0 {
		return "No scored games this session."
	}
	return fmt.Sprintf("This session: %d games on %s, best %d, total %d",
		s.Games, strings.Join(s.Boards, ", "), s.Best, s.Total)
}
