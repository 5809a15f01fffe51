package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
	"github.com/vovakirdan/tui-snake/internal/tick"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for one snake session. Keys are queued
// on the session; the scheduler's tick messages advance it.
type GameModel struct {
	variant   registry.Variant
	session   *snake.Session
	scheduler *tick.Scheduler
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	sessionID string
	keyMapper *KeyMapper
	help      help.Model
	snap      snake.Snapshot
	gameState core.GameState

	standalone bool // Back quits the program instead of handing control to a parent
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current game
}

// NewGameModel creates a game model for the given variant. sessionID groups
// the scores of one player session; an empty id gets a fresh UUID.
func NewGameModel(variant registry.Variant, store *storage.Store, cfg core.RuntimeConfig, sessionID string, logger *log.Logger) (GameModel, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if logger == nil {
		logger = log.Default()
	}

	session, err := snake.NewVariantSession(variant.ID, cfg.Seed, cfg.FoodBudget)
	if err != nil {
		return GameModel{}, fmt.Errorf("cannot start %s: %w", variant.ID, err)
	}
	scheduler, err := tick.New(cfg.TickPeriod)
	if err != nil {
		return GameModel{}, err
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		variant:   variant,
		session:   session,
		scheduler: scheduler,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:     store,
		logger:    logger,
		config:    cfg,
		sessionID: sessionID,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
	m.observe(session.Snapshot())
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return m.scheduler.Cmd()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board has a fixed size; only the viewport changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case tick.Msg:
		if !m.scheduler.Owns(msg) {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the command for a key. Nothing here touches the
// simulation directly.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only from a stopped game
	if action == core.ActionBack {
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.finish()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if cmd, ok := CommandFor(action); ok {
		m.session.Submit(cmd)
	}
	return m, nil
}

// handleTick advances the session by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	res := m.session.Tick()
	if res.Has(snake.EventRestarted) {
		// m.snap still holds the game being thrown away.
		if m.snap.State != snake.StateGameOver {
			m.saveScore("restart")
		}
		m.scoreSaved = false
	}
	m.observe(res.Snapshot)

	if res.Has(snake.EventGameOver) {
		m.logger.Debug("game over",
			"variant", m.variant.ID,
			"score", res.Snapshot.Score,
			"reason", res.Snapshot.EndReason,
			"ticks", res.Snapshot.Tick,
		)
		m.saveScore(res.Snapshot.EndReason.String())
	}

	return m, m.scheduler.Cmd()
}

func (m *GameModel) observe(snap snake.Snapshot) {
	m.snap = snap
	m.gameState = snap.GameState()
}

// finish records an unfinished game that is being abandoned.
func (m *GameModel) finish() {
	if !m.gameState.GameOver {
		m.saveScore("quit")
	}
}

// saveScore stores the current game once, if it scored anything.
func (m *GameModel) saveScore(reason string) {
	if m.scoreSaved || m.snap.Score == 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreRecord{
		Variant:   m.variant.ID,
		SessionID: m.sessionID,
		Score:     m.snap.Score,
		Length:    len(m.snap.Body),
		EndReason: reason,
		Ticks:     m.snap.Tick,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save score", "variant", m.variant.ID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	snake.Render(m.screen, m.snap, m.variant.Title)

	dir := config.ExpandHome("~/.snake/screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.variant.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.screen, m.snap, m.variant.Title)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Snapshot returns the last observed session state.
func (m GameModel) Snapshot() snake.Snapshot {
	return m.snap
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one variant. It returns
// true when the player asked to go back to a menu rather than quit.
func Run(variant registry.Variant, store *storage.Store, cfg core.RuntimeConfig, sessionID string, logger *log.Logger) (backToMenu bool, err error) {
	model, err := NewGameModel(variant, store, cfg, sessionID, logger)
	if err != nil {
		return false, err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
