package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/scorekeeper/internal/config"
	"github.com/vovakirdan/scorekeeper/internal/registry"
)

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("k"), MenuActionUp},
		{downKey, MenuActionDown},
		{runes("j"), MenuActionDown},
		{enterKey, MenuActionSelect},
		{tabKey, MenuActionHistory},
		{escKey, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(testConfig(t))

	view := m.View()
	for _, g := range registry.List() {
		if !strings.Contains(view, g.Title) {
			t.Errorf("menu is missing %q:\n%s", g.Title, view)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testConfig(t))

	// Games are sorted by ID: bowling, tennis.
	m = send(t, m, downKey, downKey)
	next, cmd := m.Update(enterKey)
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
	if m.Selected() == nil || m.Selected().ID != "tennis" {
		t.Errorf("Selected() = %+v, want tennis", m.Selected())
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(testConfig(t))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, enterKey)

	if m.Selected() == nil || m.Selected().ID != "bowling" {
		t.Errorf("Selected() = %+v, want bowling", m.Selected())
	}
}

func TestMenuHistoryAndQuit(t *testing.T) {
	m := send(t, NewMenuModel(testConfig(t)), tabKey)
	if !m.WantsHistory() {
		t.Error("tab should open the history")
	}

	m = send(t, NewMenuModel(testConfig(t)), runes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuShowsPreset(t *testing.T) {
	cfg := testConfig(t)
	cfg.Options.Preset = config.PresetFast4

	if view := NewMenuModel(cfg).View(); !strings.Contains(view, "Rules: fast4") {
		t.Errorf("menu should name the preset:\n%s", view)
	}
}
