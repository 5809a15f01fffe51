package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxScores          = 100
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeBoardStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// scoreView selects which games the table lists.
type scoreView int

const (
	viewTop     scoreView = iota // best games on the board
	viewSession                  // games from this session on the board
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll     key.Binding
	NextBoard  key.Binding
	PrevBoard  key.Binding
	ToggleView key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.NextBoard, k.PrevBoard, k.ToggleView, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.NextBoard, k.PrevBoard},
		{k.ToggleView, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "k", "down", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev board"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "top/session"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists recorded games per board variant.
type ScoreboardModel struct {
	variants  []registry.Variant
	board     int // index into variants, rebuilt from registry on every open
	view      scoreView
	store     *storage.Store
	sessionID string
	scores    []storage.ScoreRecord
	stats     *storage.VariantStats
	best      map[string]int // best score per variant ID, for the sidebar
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard. sessionID selects the games the
// session view shows; it may be empty.
func NewScoreboardModel(store *storage.Store, sessionID string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants:  registry.List(),
		store:     store,
		sessionID: sessionID,
		best:      make(map[string]int),
		help:      help.New(),
		keys:      DefaultScoreboardKeyMap(),
		width:     width,
		height:    height,
	}

	if store != nil {
		if all, err := store.AllStats(); err == nil {
			for id, st := range all {
				m.best[id] = st.HighScore
			}
		}
	}

	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	avail := m.width - 4
	if m.showSidebar() {
		avail -= sidebarWidth + 4
	}
	if avail > 50 {
		dateWidth = min(avail-36, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "Score", Width: 6},
			{Title: "Length", Width: 7},
			{Title: "End", Width: 14},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m ScoreboardModel) current() (registry.Variant, bool) {
	if len(m.variants) == 0 {
		return registry.Variant{}, false
	}
	return m.variants[m.board], true
}

// reload fetches the rows and stats for the selected board and view.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	v, ok := m.current()
	if ok && m.store != nil {
		m.scores = m.fetch(v.ID)
		if st, err := m.store.Stats(v.ID); err == nil {
			m.stats = st
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		label := fmt.Sprintf("#%d", i+1)
		if m.view == viewSession {
			label = fmt.Sprintf("G%d", i+1)
		}
		rows[i] = table.Row{
			label,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Length),
			strings.ReplaceAll(s.EndReason, "_", " "),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) fetch(variantID string) []storage.ScoreRecord {
	if m.view == viewTop {
		scores, err := m.store.TopScores(variantID, maxScores)
		if err != nil {
			return nil
		}
		return scores
	}

	if m.sessionID == "" {
		return nil
	}
	played, err := m.store.SessionScores(m.sessionID)
	if err != nil {
		return nil
	}
	var onBoard []storage.ScoreRecord
	for _, r := range played {
		if r.Variant == variantID {
			onBoard = append(onBoard, r)
		}
	}
	return onBoard
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextBoard):
			m.selectBoard(m.board + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevBoard):
			m.selectBoard(m.board - 1)
			return m, nil
		case key.Matches(msg, m.keys.ToggleView):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectBoard moves to board i, wrapping around.
func (m *ScoreboardModel) selectBoard(i int) {
	n := len(m.variants)
	if n == 0 {
		return
	}
	m.board = ((i % n) + n) % n
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.view == viewSession {
		title = "THIS SESSION"
	}
	if v, ok := m.current(); ok {
		title += " - " + v.Title
	}

	var b strings.Builder
	b.WriteString(activeBoardStyle.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	body := panelStyle.Render(m.tableContent())
	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.boardTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(body, m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists every board with its size and best score.
func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Boards\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, v := range m.variants {
		line := fmt.Sprintf("%-8s %dx%d", v.ID, v.Width, v.Height)
		if best, ok := m.best[v.ID]; ok {
			line += fmt.Sprintf(" %d", best)
		}
		if i == m.board {
			sb.WriteString(activeBoardStyle.Render("> " + line))
		} else {
			sb.WriteString(helpStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	return panelStyle.Width(sidebarWidth).Render(sb.String())
}

// boardTabs is the narrow-screen replacement for the sidebar.
func (m ScoreboardModel) boardTabs() string {
	v, ok := m.current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("< %s %dx%d (%d/%d) >", v.Title, v.Width, v.Height, m.board+1, len(m.variants))
}

func (m ScoreboardModel) tableContent() string {
	if len(m.scores) > 0 {
		return m.table.View()
	}
	msg := "No scores recorded yet.\nPlay this board to set a high score!"
	if m.view == viewSession {
		msg = "No games on this board this session."
	}
	return helpStyle.Italic(true).Padding(2, 4).Render(msg)
}

// statsLine summarizes the selected variant.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("%d games  |  best %d  |  avg %.1f  |  longest %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LongestSnake)
	if m.stats.Wins > 0 {
		line += fmt.Sprintf("  |  %d full boards", m.stats.Wins)
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, sessionID string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, sessionID, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
