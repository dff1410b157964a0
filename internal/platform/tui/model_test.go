package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func startModel(t *testing.T, m GameModel) GameModel {
	t.Helper()
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should start the tick loop")
	}
	return m
}

func TestRecordResultSolo(t *testing.T) {
	store := openTestStore(t)

	st := core.GameState{Score: 120, Scores: []int{120}, MaxChain: 2, Winner: -1, GameOver: true}
	if err := RecordResult(store, puyo.IDSolo, st); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}

	scores, err := store.TopScores(puyo.IDSolo, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 120 || scores[0].MaxChain != 2 {
		t.Errorf("scores = %+v", scores)
	}
	duels, err := store.RecentDuels(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(duels) != 0 {
		t.Errorf("solo game recorded %d duels", len(duels))
	}
}

func TestRecordResultDuel(t *testing.T) {
	store := openTestStore(t)

	st := core.GameState{
		Score:    300,
		Scores:   []int{300, 80},
		MaxChain: 3,
		Winner:   0,
		PlayMs:   5500,
		GameOver: true,
	}
	if err := RecordResult(store, puyo.IDDuel, st); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}

	duels, err := store.RecentDuels(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(duels) != 1 {
		t.Fatalf("expected 1 duel, got %d", len(duels))
	}
	d := duels[0]
	if d.Score1 != 300 || d.Score2 != 80 || d.Winner != storage.DuelPlayer1 {
		t.Errorf("duel = %+v", d)
	}
	if d.Duration != 5*time.Second {
		t.Errorf("duration = %v, want whole seconds", d.Duration)
	}

	high, err := store.HighScore(puyo.IDDuel)
	if err != nil {
		t.Fatal(err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestRecordResultSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)

	if err := RecordResult(store, puyo.IDSolo, core.GameState{Scores: []int{0}, GameOver: true}); err != nil {
		t.Fatal(err)
	}
	scores, err := store.TopScores(puyo.IDSolo, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score should not be recorded, got %+v", scores)
	}

	if err := RecordResult(nil, puyo.IDSolo, core.GameState{Score: 10}); err != nil {
		t.Errorf("nil store should be a no-op, got %v", err)
	}
}

func TestDuelWinner(t *testing.T) {
	tests := []struct {
		board    int
		expected int
	}{
		{0, storage.DuelPlayer1},
		{1, storage.DuelPlayer2},
		{-1, storage.DuelDraw},
	}

	for _, tc := range tests {
		if got := duelWinner(tc.board); got != tc.expected {
			t.Errorf("duelWinner(%d) = %d, want %d", tc.board, got, tc.expected)
		}
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m := startModel(t, NewGameModel(puyo.New(), nil, testRuntime(), GameOptions{Logger: quietLogger()}))

	for range 15 {
		m, _ = update(t, m, TickMsg{})
	}
	before := m.State().PlayMs
	if before == 0 {
		t.Fatal("game clock should be running")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, TickMsg{})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if m.State().PlayMs <= before {
		t.Errorf("resize restarted the game: play time %d -> %d", before, m.State().PlayMs)
	}
}

func TestGameModelBackNeedsPause(t *testing.T) {
	m := startModel(t, NewGameModel(puyo.New(), nil, testRuntime(), GameOptions{Logger: quietLogger()}))
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while the game is running")
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}

	m, cmd := update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Fatal("back should work while paused")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program on back")
	}
}

func TestGameModelEmbeddedBackKeepsProgram(t *testing.T) {
	m := startModel(t, NewGameModel(puyo.New(), nil, testRuntime(), GameOptions{Logger: quietLogger(), Embedded: true}))
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})

	m, cmd := update(t, m, runeKey('b'))
	if !m.BackToMenu() || cmd != nil {
		t.Errorf("embedded back: BackToMenu=%v cmd=%v", m.BackToMenu(), cmd != nil)
	}
}

func TestGameModelQuit(t *testing.T) {
	m := startModel(t, NewGameModel(puyo.New(), nil, testRuntime(), GameOptions{Logger: quietLogger()}))

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelSpeedOption(t *testing.T) {
	g := puyo.NewDuel()
	m := startModel(t, NewGameModel(g, nil, testRuntime(), GameOptions{Speed: config.SpeedHard, Logger: quietLogger()}))

	m, _ = update(t, m, TickMsg{})
	if !strings.Contains(m.View(), "Fall: 400ms") {
		t.Error("speed preset should set the fall interval")
	}
}

func TestGameModelRecordsDuelOnce(t *testing.T) {
	store := openTestStore(t)
	m := startModel(t, NewGameModel(puyo.NewDuel(), store, testRuntime(), GameOptions{Speed: config.SpeedHard, Logger: quietLogger()}))

	for i := 0; !m.State().GameOver && i < 100000; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(t, m, runeKey('s'))
		m, _ = update(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("both boards should top out when every pair is dropped")
	}
	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	duels, err := store.RecentDuels(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(duels) != 1 {
		t.Fatalf("expected one recorded duel, got %d", len(duels))
	}
	if duels[0].GameID != puyo.IDDuel {
		t.Errorf("duel game = %q", duels[0].GameID)
	}

	// A restart arms recording for the next game over
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if m.State().GameOver || m.resultSaved {
		t.Error("restart should start a fresh game")
	}
}

func TestGameModelView(t *testing.T) {
	m := startModel(t, NewGameModel(puyo.New(), nil, testRuntime(), GameOptions{Logger: quietLogger()}))
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "Puyo") || !strings.Contains(view, "Next") {
		t.Errorf("view should show the board:\n%s", view)
	}
}

func TestWriteScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := puyo.New()
	m := startModel(t, NewGameModel(g, nil, testRuntime(), GameOptions{Logger: quietLogger()}))
	m, _ = update(t, m, TickMsg{})

	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	path, err := writeScreenshot(dir, g, m.screen, at)
	if err != nil {
		t.Fatalf("writeScreenshot() failed: %v", err)
	}
	if want := filepath.Join(dir, "puyo_20240301_123000.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	text, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(text), "Next") {
		t.Errorf("screenshot should contain the board:\n%s", text)
	}

	dump, err := os.ReadFile(strings.TrimSuffix(path, ".txt") + ".yaml")
	if err != nil {
		t.Fatalf("state dump missing: %v", err)
	}
	if !strings.Contains(string(dump), "boards:") || !strings.Contains(string(dump), "clock_ms: 100") {
		t.Errorf("unexpected state dump:\n%s", dump)
	}
}
