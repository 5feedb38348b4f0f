package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/scorekeeper/internal/registry"
	"github.com/vovakirdan/scorekeeper/internal/storage"
)

const maxResults = 100

// Fixed column widths; the detail column takes up the rest of the screen.
const (
	rankWidth   = 5
	scoreWidth  = 7
	playerWidth = 10
	dateWidth   = 12
	detailMin   = 16
)

var (
	switcherStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Order    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.Order, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGame, k.PrevGame, k.Order},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Order:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "best/recent")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the result history screen.
// It lists either the best or the most recent results of one game at a time.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	results   []storage.ResultEntry
	stats     *storage.GameStats
	loadErr   error
	recent    bool // Recent results instead of top scores
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model opened on gameID, or on
// the first registered game when gameID is empty or unknown.
func NewScoreboardModel(store *storage.Store, cfg RuntimeConfig, gameID string) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW

	for i, g := range m.games {
		if g.ID == gameID {
			m.current = i
		}
	}

	m.table = table.New(table.WithFocused(true), table.WithStyles(resultTableStyles()))
	m.resize()
	m.reload()

	return m
}

func resultTableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Bold(false).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	return s
}

// resize fits the table columns and height to the screen.
func (m *ScoreboardModel) resize() {
	// Card border and padding take four columns, cell padding two per column.
	detail := max(detailMin, m.width-4-2*5-rankWidth-scoreWidth-playerWidth-dateWidth)

	m.table.SetColumns([]table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Score", Width: scoreWidth},
		{Title: "Player", Width: playerWidth},
		{Title: "Detail", Width: detail},
		{Title: "Date", Width: dateWidth},
	})
	// Title, switcher, stats, card border and help.
	m.table.SetHeight(max(3, m.height-11))
}

// reload loads results and stats for the selected game.
func (m *ScoreboardModel) reload() {
	m.results, m.stats, m.loadErr = nil, nil, nil

	if m.store != nil && len(m.games) > 0 {
		gameID := m.games[m.current].ID

		var err error
		if m.recent {
			m.results, err = m.store.RecentResults(gameID, maxResults)
		} else {
			m.results, err = m.store.TopScores(gameID, maxResults)
		}
		if err == nil {
			m.stats, err = m.store.Stats(gameID)
		}
		m.loadErr = err
	}

	rows := make([]table.Row, 0, len(m.results))
	for i, r := range m.results {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(r.Headline),
			r.Player,
			r.Detail,
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchGame moves the selection by step, wrapping at either end.
func (m *ScoreboardModel) switchGame(step int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + step + len(m.games)) % len(m.games)
	m.reload()
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
		case key.Matches(msg, m.keys.Order):
			m.recent = !m.recent
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			m.switchGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.switchGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	heading := "BEST RESULTS"
	if m.recent {
		heading = "RECENT RESULTS"
	}
	if len(m.games) > 0 {
		heading += " - " + m.games[m.current].Title
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(heading, m.width)))
	b.WriteString("\n\n")
	if sw := m.switcher(); sw != "" {
		b.WriteString(sw)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n")
	b.WriteString(cardStyle.Render(m.body()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// switcher shows the selected game between arrows with its position,
// e.g. "◀ Tennis ▶ 2/2".
func (m ScoreboardModel) switcher() string {
	if len(m.games) < 2 {
		return ""
	}
	title := switcherStyle.Render(m.games[m.current].Title)
	line := fmt.Sprintf("◀ %s ▶ %d/%d", title, m.current+1, len(m.games))
	if pad := (m.width - lipgloss.Width(line)) / 2; pad > 0 {
		line = strings.Repeat(" ", pad) + line
	}
	return line
}

// statsLine summarizes the aggregate stats of the selected game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	line := fmt.Sprintf("Matches: %d  Best: %d  Average: %.1f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
	if w := m.stats.Wins; w[0]+w[1] > 0 {
		line += fmt.Sprintf("  Wins: %d-%d", w[0], w[1])
	}
	return line
}

// body is the results table, or a note when there is nothing to list.
func (m ScoreboardModel) body() string {
	switch {
	case m.store == nil:
		return emptyStyle.Render("Results are not being stored.")
	case m.loadErr != nil:
		return errorStyle.Padding(1, 2).Render(m.loadErr.Error())
	case len(m.results) == 0:
		return emptyStyle.Render("No results recorded yet.\nFinish a match to see it here!")
	}
	return m.table.View()
}

// Results returns the rows currently listed.
func (m ScoreboardModel) Results() []storage.ResultEntry {
	return m.results
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen opened on gameID.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, cfg RuntimeConfig, gameID string) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, cfg, gameID), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
