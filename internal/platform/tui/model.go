// Package tui provides the Bubble Tea integration for the scorekeeper.
// It handles the play entry screen, the game picker, result history and
// serving all of them over SSH.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/scorekeeper/internal/registry"
	"github.com/vovakirdan/scorekeeper/internal/scoring"
	"github.com/vovakirdan/scorekeeper/internal/storage"
)

// RuntimeConfig holds the per-session settings shared by every screen.
type RuntimeConfig struct {
	ScreenW int
	ScreenH int
	Player  string           // Name stored with saved results
	Options registry.Options // Rule selection for new matches
	CardDir string           // Where ctrl+s writes scorecards; empty means ~/.scorekeeper/cards
	Logger  *log.Logger      // nil discards log output
}

func (c RuntimeConfig) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

// caller is implemented by games that can announce the score of the round
// in progress, such as tennis.
type caller interface {
	GameCall() string
}

// PlayModel is the Bubble Tea model for entering the plays of one match.
type PlayModel struct {
	game       registry.Game
	store      *storage.Store
	config     RuntimeConfig
	logger     *log.Logger
	input      textinput.Model
	help       help.Model
	keys       PlayKeyMap
	message    string
	failed     bool // message reports an error
	showTree   bool
	matchID    string
	saved      bool // Whether the result has been stored for the finished match
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewPlayModel creates a play screen for game. A nil store skips saving.
func NewPlayModel(game registry.Game, store *storage.Store, cfg RuntimeConfig) PlayModel {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 4
	ti.Width = 8
	ti.Focus()

	h := help.New()
	h.Width = cfg.ScreenW

	m := PlayModel{
		game:   game,
		store:  store,
		config: cfg,
		logger: cfg.logger(),
		input:  ti,
		help:   h,
		keys:   DefaultPlayKeyMap(),
	}
	if game.IsComplete() {
		m.finish()
	}
	return m
}

// Init starts the cursor blinking.
func (m PlayModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Tree):
		m.showTree = !m.showTree
		return m, nil

	case key.Matches(msg, m.keys.Save):
		m.saveScorecard()
		return m, nil

	case key.Matches(msg, m.keys.Restart) && m.game.IsComplete():
		return m.restart()

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	if m.game.IsComplete() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records the typed value as the next play.
func (m PlayModel) submit() (tea.Model, tea.Cmd) {
	if m.game.IsComplete() {
		return m, nil
	}

	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	value, err := strconv.Atoi(line)
	if err != nil {
		m.setError(fmt.Errorf("not a number: %q", line))
		return m, nil
	}

	if err := m.game.Play(value); err != nil {
		m.logger.Warn("play rejected", "game", m.game.ID(), "value", value, "err", err)
		m.setError(err)
		return m, nil
	}
	m.logger.Debug("play", "game", m.game.ID(), "value", value, "complete", m.game.IsComplete())

	m.message, m.failed = "", false
	if m.game.IsComplete() {
		m.finish()
	}
	return m, nil
}

// finish stops input and stores the result once.
func (m *PlayModel) finish() {
	m.input.Blur()
	m.message, m.failed = resultLine(m.game.Result()), false

	if m.store == nil || m.saved {
		return
	}
	m.saved = true

	// Solo games compete against the stored best.
	if r := m.game.Result(); r.Winner < 0 {
		if best, err := m.store.HighScore(m.game.ID()); err == nil && r.Headline > best {
			m.message += " - new best!"
		}
	}

	id, err := m.store.SaveGame(m.game, m.config.Player)
	if err != nil {
		m.logger.Error("could not save result", "game", m.game.ID(), "error", err)
		m.message += " (not saved)"
		return
	}
	m.matchID = id
	m.logger.Info("result saved", "game", m.game.ID(), "match", id, "player", m.config.Player)
}

// restart replaces the finished match with a fresh one of the same game.
func (m PlayModel) restart() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.game.ID(), m.config.Options)
	if err != nil {
		m.setError(err)
		return m, nil
	}

	m.game = game
	m.saved = false
	m.matchID = ""
	m.message, m.failed = "", false
	m.input.Reset()
	cmd := m.input.Focus()
	m.logger.Debug("new match", "game", game.ID())
	return m, cmd
}

func (m *PlayModel) setError(err error) {
	m.message = err.Error()
	m.failed = true
}

// saveScorecard writes the current scorecard to a timestamped text file.
func (m *PlayModel) saveScorecard() {
	dir := m.config.CardDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.setError(fmt.Errorf("cannot get home directory: %w", err))
			return
		}
		dir = filepath.Join(home, ".scorekeeper", "cards")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setError(fmt.Errorf("cannot create %s: %w", dir, err))
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.game.Scorecard()+"\n"), 0o600); err != nil {
		m.setError(fmt.Errorf("cannot save scorecard: %w", err))
		return
	}

	m.message, m.failed = "Saved "+path, false
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting || (m.backToMenu && m.standalone) {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(strings.ToUpper(m.game.Title()), m.config.ScreenW)))
	b.WriteString("\n\n")
	b.WriteString(cardStyle.Render(m.game.Scorecard()))
	b.WriteString("\n")

	if c, ok := m.game.(caller); ok && !m.game.IsComplete() {
		if call := c.GameCall(); call != "" {
			b.WriteString(callStyle.Render(call))
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		style := infoStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.game.IsComplete() {
		b.WriteString("Game over. Press r for a new match or esc to go back.\n")
	} else {
		b.WriteString(m.game.Prompt())
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	if m.showTree {
		b.WriteString("\n")
		b.WriteString(treeStyle.Render(strings.TrimRight(scoring.DescribeString(m.game.Root()), "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Game returns the match being played.
func (m PlayModel) Game() registry.Game {
	return m.game
}

// MatchID returns the stored match ID, or "" if the result was not saved.
func (m PlayModel) MatchID() string {
	return m.matchID
}

// Message returns the status line shown under the scorecard.
func (m PlayModel) Message() string {
	return m.message
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// RunPlay starts a Bubble Tea program for one game and returns when the
// player quits or leaves the screen.
func RunPlay(game registry.Game, store *storage.Store, cfg RuntimeConfig) error {
	model := NewPlayModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
