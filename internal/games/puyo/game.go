// Package puyo adapts the board simulation in package sim to the platform
// Game interface: fixed-rate steps become millisecond timestamps, input
// actions become board commands, and boards are drawn into a core.Screen.
package puyo

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-puyo/internal/config"
	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/sim"
	"github.com/vovakirdan/tui-puyo/internal/registry"
)

// Game IDs.
const (
	IDSolo = "puyo"
	IDDuel = "puyo_duel"
)

// Shared settings applied by the CLI before a game starts.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultPuyoConfig()
)

// SetConfig replaces the configuration used by games created afterwards
// and by the next Reset of existing games.
func SetConfig(cfg config.PuyoConfig) {
	cfg.Normalize()
	settingsMu.Lock()
	settings = cfg
	settingsMu.Unlock()
}

// CurrentConfig returns the configuration set with SetConfig.
func CurrentConfig() config.PuyoConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Game runs a sim.Session under the platform's fixed tick.
type Game struct {
	id      string
	players int // Forced board count, 0 means use config
	cfg     config.PuyoConfig

	session *sim.Session
	seeds   *rand.Rand // Seeds for restarts

	tickRate int
	tick     uint64 // Steps since Reset, including paused ones
	simTicks uint64 // Steps that advanced the simulation clock
	playFrom uint64 // simTicks at the last restart
	paused   bool
	survivor int // Board that outlasted the others, or -1
}

// New creates the solo game. The board count comes from config.
func New() *Game {
	return &Game{id: IDSolo}
}

// NewDuel creates a two-board game for two players on one keyboard.
func NewDuel() *Game {
	return &Game{id: IDDuel, players: 2}
}

func init() {
	registry.Register(IDSolo, func() registry.Game {
		return New()
	})
	registry.Register(IDDuel, func() registry.Game {
		return NewDuel()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDDuel {
		return "Puyo Duel"
	}
	return "Puyo"
}

// Players returns the number of boards this game runs.
func (g *Game) Players() int {
	if g.session != nil {
		return g.session.Players()
	}
	if g.players > 0 {
		return g.players
	}
	return CurrentConfig().Gameplay.Players
}

// Reset starts a new game with the current configuration.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.seeds = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.simTicks = 0
	g.playFrom = 0
	g.paused = false
	g.survivor = -1

	pc := CurrentConfig()
	if g.players > 0 {
		pc.Gameplay.Players = g.players
	}

	if g.session != nil && pc == g.cfg {
		g.session.RestartAll()
		g.session.Reseed(cfg.Seed)
		return
	}
	g.cfg = pc
	g.session = sim.NewSession(pc.SessionConfig(cfg.Seed))
}

// SetSpeed changes the fall interval of the running session.
func (g *Game) SetSpeed(intervalMs int64) {
	if g.session == nil || intervalMs < config.MinFallInterval {
		return
	}
	g.session.SetFallInterval(intervalMs)
	g.cfg.Gameplay.FallIntervalMs = g.session.FallInterval()
}

// clockMs converts simulated steps to milliseconds without accumulating rounding error.
func (g *Game) clockMs() int64 {
	return int64(g.simTicks) * 1000 / int64(g.tickRate)
}

// Step advances the game by one tick with Player 1's input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	multi := core.NewMultiInputFrame()
	multi.SetPlayer(core.Player1, in)
	return g.StepMulti(multi)
}

// StepMulti advances the game by one tick with every player's input.
func (g *Game) StepMulti(in core.MultiInputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	g.tick++

	// Restart works at any time, not only after game over
	if in.Any(core.ActionRestart) {
		g.restart()
		return core.StepResult{
			State:  g.State(),
			Events: []core.Event{{Kind: core.EventRestart}},
		}
	}

	if in.Any(core.ActionPause) && !g.session.IsSessionOver() {
		g.paused = !g.paused
	}
	if g.paused || g.session.IsSessionOver() {
		return core.StepResult{State: g.State()}
	}

	for i := range g.session.Players() {
		applyInput(g.session.Player(i), in.Player(core.PlayerForIndex(i)))
	}

	g.simTicks++
	results := g.session.Tick(g.clockMs())
	if w := g.session.Winner(); w >= 0 {
		g.survivor = w
	}

	return core.StepResult{
		State:  g.State(),
		Events: eventsFor(results),
	}
}

// restart resets every board with a fresh piece sequence.
func (g *Game) restart() {
	g.session.RestartAll()
	g.session.Reseed(g.seeds.Int63())
	g.paused = false
	g.survivor = -1
	g.playFrom = g.simTicks
}

// applyInput turns one player's actions into board commands.
// Rotation is applied before shifting so a rotate+move in one frame
// matches pressing them in that order.
func applyInput(e *sim.Engine, in core.InputFrame) {
	if e == nil || in.Empty() {
		return
	}
	if in.Has(core.ActionRotate) {
		e.Rotate()
	}
	if in.Has(core.ActionLeft) {
		e.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		e.MoveRight()
	}
	if in.Has(core.ActionDown) {
		e.SoftDrop()
	}
}

func eventsFor(results []sim.TickResult) []core.Event {
	var events []core.Event
	for _, r := range results {
		player := core.PlayerForIndex(r.Player)
		if r.Locked {
			events = append(events, core.Event{Player: player, Kind: core.EventLock})
		}
		if r.Removed > 0 {
			events = append(events, core.Event{Player: player, Kind: core.EventClear, Value: r.Removed})
		}
		if r.Chains > 1 {
			events = append(events, core.Event{Player: player, Kind: core.EventChain, Value: r.Chains})
		}
		if r.GameOver {
			events = append(events, core.Event{Player: player, Kind: core.EventGameOver})
		}
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Winner: -1}
	}
	st := core.GameState{
		Scores:   make([]int, g.session.Players()),
		Winner:   g.survivor,
		PlayMs:   int64(g.simTicks-g.playFrom) * 1000 / int64(g.tickRate),
		GameOver: g.session.IsSessionOver(),
		Paused:   g.paused,
	}
	for i := range st.Scores {
		e := g.session.Player(i)
		st.Scores[i] = e.Score()
		st.Score = max(st.Score, e.Score())
		st.MaxChain = max(st.MaxChain, e.Stats().MaxChain)
	}
	return st
}
