package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2

// Render draws a snapshot into dst: HUD, bordered board, snake, food and a
// banner for Paused / GameOver.
func Render(dst *core.Screen, snap Snapshot, title string) {
	dst.Clear()
	renderHUD(dst, snap, title)

	boardW := snap.Width + 2
	boardH := snap.Height + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	box := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, boardH)
	dst.DrawBox(box, core.ColorGray)
	originX, originY := box.X+1, box.Y+1

	if snap.HasFood {
		dst.SetColor(originX+snap.Food.X, originY+snap.Food.Y, '*', core.ColorRed)
	}
	for i, seg := range snap.Body {
		if i == 0 {
			dst.SetColor(originX+seg.X, originY+seg.Y, 'O', core.ColorBrightGreen)
			continue
		}
		dst.SetColor(originX+seg.X, originY+seg.Y, 'o', core.ColorGreen)
	}

	switch snap.State {
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case StateGameOver:
		if snap.EndReason == EndBoardFull {
			renderOverlay(dst, "Board Full - You Win!", fmt.Sprintf("Final Score: %d  R to restart", snap.Score))
		} else {
			renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  R to restart", snap.Score))
		}
	}
}

func renderHUD(dst *core.Screen, snap Snapshot, title string) {
	dst.DrawTextColor(1, 0, title, core.ColorCyan)
	stats := fmt.Sprintf(" — Score: %d  Length: %d", snap.Score, len(snap.Body))
	dst.DrawTextColor(1+len([]rune(title)), 0, stats, core.ColorWhite)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line banner.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
