package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/registry"
	"github.com/vovakirdan/tui-puyo/internal/storage"
)

// GameOptions tunes a GameModel.
type GameOptions struct {
	// Speed overrides the configured fall interval when set.
	Speed config.SpeedPreset

	// Logger receives save failures and game events. Defaults to log.Default().
	Logger *log.Logger

	// Embedded models leave the program running when the player goes back
	// to the menu, so a parent model can take over.
	Embedded bool
}

// speedSetter is implemented by games whose fall speed can change mid-game.
type speedSetter interface {
	SetSpeed(intervalMs int64)
}

// stateDumper is implemented by games that can serialize their full state.
type stateDumper interface {
	DumpState() ([]byte, error)
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game        registry.Game
	multi       registry.MultiPlayerGame // Nil for single-input games
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	opts        GameOptions
	keyMapper   *KeyMapper
	inputFrame  core.MultiInputFrame
	gameState   core.GameState
	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current game over has been recorded
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	players := 1
	multi, ok := game.(registry.MultiPlayerGame)
	if ok {
		players = multi.Players()
	}

	return GameModel{
		game:       game,
		multi:      multi,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(players),
		inputFrame: core.NewMultiInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ss, ok := m.game.(speedSetter); ok && m.opts.Speed != "" {
		ss.SetSpeed(m.opts.Speed.FallInterval())
	}
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// exit ends a standalone program. Embedded models hand control back to their parent.
func (m GameModel) exit() tea.Cmd {
	if m.opts.Embedded {
		return nil
	}
	return tea.Quit
}

// handleKey queues the key's action for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	player, action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		// Leaving mid-game needs a pause first
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, m.exit()
		}

	case action != core.ActionNone:
		m.inputFrame.Set(player, action)
	}

	return m, nil
}

// handleResize resizes the screen buffer. The game keeps running; boards are
// laid out again on the next render.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	var result core.StepResult
	if m.multi != nil {
		result = m.multi.StepMulti(m.inputFrame)
	} else {
		result = m.game.Step(m.inputFrame.Player(core.Player1))
	}
	m.gameState = result.State

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventRestart:
			m.resultSaved = false
			m.logger.Debug("restart", "game", m.game.ID())
		case core.EventChain, core.EventGameOver:
			m.logger.Debug(ev.Kind.String(), "game", m.game.ID(), "player", ev.Player, "value", ev.Value)
		}
	}

	// Record the result once per game over
	if m.gameState.GameOver && !m.resultSaved {
		m.resultSaved = true
		if err := RecordResult(m.store, m.game.ID(), m.gameState); err != nil {
			m.logger.Warn("could not save result", "game", m.game.ID(), "error", err)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// RecordResult stores a finished game. Every game with a positive score
// enters the high score table; two-board games are also recorded as duels.
// A nil store records nothing.
func RecordResult(store *storage.Store, gameID string, st core.GameState) error {
	if store == nil {
		return nil
	}

	var errs []error
	if st.Score > 0 {
		if _, err := store.SaveScore(gameID, st.Score, st.MaxChain); err != nil {
			errs = append(errs, err)
		}
	}

	if len(st.Scores) == 2 {
		duel := storage.DuelResult{
			GameID:   gameID,
			Score1:   st.Scores[0],
			Score2:   st.Scores[1],
			Winner:   duelWinner(st.Winner),
			Duration: time.Duration(st.PlayMs) * time.Millisecond,
		}
		if _, err := store.SaveDuel(duel); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// duelWinner converts a board index to the stored duel outcome.
func duelWinner(board int) int {
	switch board {
	case 0:
		return storage.DuelPlayer1
	case 1:
		return storage.DuelPlayer2
	default:
		return storage.DuelDraw
	}
}

// saveScreenshot saves the current screen to ~/.puyo/screenshots, with a
// state dump beside it when the game provides one.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	path, err := writeScreenshot(filepath.Join(home, ".puyo", "screenshots"), m.game, m.screen, time.Now())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// writeScreenshot renders game into screen and writes it to dir as
// <id>_<timestamp>.txt. Returns the path of the text file.
func writeScreenshot(dir string, game registry.Game, screen *core.Screen, at time.Time) (string, error) {
	game.Render(screen)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", game.ID(), at.Format("20060102_150405")))
	if err := os.WriteFile(base+".txt", []byte(screen.String()), 0o600); err != nil {
		return "", err
	}

	if d, ok := game.(stateDumper); ok {
		data, err := d.DumpState()
		if err != nil {
			return "", fmt.Errorf("dump state: %w", err)
		}
		if err := os.WriteFile(base+".yaml", data, 0o600); err != nil {
			return "", err
		}
	}
	return base + ".txt", nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the player quits or goes
// back to the menu. It reports which of the two happened.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	opts.Embedded = false
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
