package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), config.SpeedEasy, quietLogger())

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("enter should start a game, view = %d", m.view)
	}
	if cmd == nil {
		t.Fatal("starting a game should start the tick loop")
	}
	if m.game.game.ID() != puyo.IDSolo {
		t.Errorf("started %q, want the first menu item", m.game.game.ID())
	}

	m, _ = updateSession(t, m, TickMsg{})
	if !strings.Contains(m.View(), "Fall: 1000ms") {
		t.Error("game should use the menu speed")
	}

	m, _ = updateSession(t, m, runeKey('p'))
	m, _ = updateSession(t, m, TickMsg{})
	m, cmd = updateSession(t, m, runeKey('b'))
	if m.view != viewMenu {
		t.Fatalf("back should return to the menu, view = %d", m.view)
	}
	if m.quitting {
		t.Error("going back should keep the session open")
	}
	if cmd != nil {
		if _, isQuit := cmd().(tea.QuitMsg); isQuit {
			t.Error("going back should not end the program")
		}
	}
}

func TestSessionScoreboard(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveDuel(storage.DuelResult{GameID: puyo.IDDuel, Winner: storage.DuelPlayer2}); err != nil {
		t.Fatal(err)
	}
	m := NewSessionModel(store, testRuntime(), "", quietLogger())

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("tab should open scores, view = %d", m.view)
	}

	// Solo scores first, then the duel board with its tally
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scores.tally == nil || m.scores.tally.Player2Wins != 1 {
		t.Errorf("duel tally = %+v", m.scores.tally)
	}
	if !strings.Contains(m.View(), "P2 wins: 1") {
		t.Errorf("scores view should show the tally:\n%s", m.View())
	}

	m, _ = updateSession(t, m, runeKey('b'))
	if m.view != viewMenu || m.quitting {
		t.Errorf("back should return to the menu, view = %d quitting = %v", m.view, m.quitting)
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "", quietLogger())

	m, cmd := updateSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "", quietLogger())
	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.game.screen.Width() != 120 {
		t.Errorf("resize not applied: session %d, game %d", m.config.ScreenW, m.game.screen.Width())
	}
}
