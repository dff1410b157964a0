package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestMenuListsGames(t *testing.T) {
	m := NewMenuModel(testRuntime(), "")

	players := map[string]int{}
	for _, item := range m.items {
		players[item.GameID] = item.Players
	}
	if players[puyo.IDSolo] != 1 || players[puyo.IDDuel] != 2 {
		t.Errorf("menu items = %+v", m.items)
	}

	view := m.View()
	if !strings.Contains(view, "Puyo Duel (2P)") {
		t.Errorf("view should show player counts:\n%s", view)
	}
}

func TestMenuSpeedSelection(t *testing.T) {
	m := NewMenuModel(testRuntime(), "")
	if m.Speed() != config.SpeedNormal {
		t.Fatalf("default speed = %s, want normal", m.Speed())
	}

	steps := []struct {
		msg      tea.KeyMsg
		expected config.SpeedPreset
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, config.SpeedHard},
		{tea.KeyMsg{Type: tea.KeyRight}, config.SpeedHard},
		{tea.KeyMsg{Type: tea.KeyLeft}, config.SpeedNormal},
		{tea.KeyMsg{Type: tea.KeyLeft}, config.SpeedEasy},
		{tea.KeyMsg{Type: tea.KeyLeft}, config.SpeedEasy},
	}
	for i, st := range steps {
		m, _ = updateMenu(t, m, st.msg)
		if m.Speed() != st.expected {
			t.Errorf("step %d: speed = %s, want %s", i, m.Speed(), st.expected)
		}
	}
	if !strings.Contains(m.View(), "Speed: < easy > (1000ms)") {
		t.Error("view should show the chosen speed")
	}

	if NewMenuModel(testRuntime(), config.SpeedHard).Speed() != config.SpeedHard {
		t.Error("preselected speed should be kept")
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testRuntime(), "")

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown}) // stays on the last item
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().GameID != m.items[len(m.items)-1].GameID {
		t.Fatalf("selected = %+v", m.Selected())
	}
	if cmd == nil {
		t.Error("standalone menu should exit after a selection")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(testRuntime(), "")
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel(testRuntime(), "")
	m, cmd := updateMenu(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(testRuntime(), "")
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text     string
		width    int
		expected string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}

	for _, tc := range tests {
		if got := centerText(tc.text, tc.width); got != tc.expected {
			t.Errorf("centerText(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.expected)
		}
	}
}
