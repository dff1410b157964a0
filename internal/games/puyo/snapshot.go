package puyo

import (
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo/sim"
)

// Snapshot captures the complete game state for determinism testing
// and state dumps.
type Snapshot struct {
	Tick     uint64               `yaml:"tick"`
	ClockMs  int64                `yaml:"clock_ms"`
	Paused   bool                 `yaml:"paused"`
	Over     bool                 `yaml:"over"`
	Survivor int                  `yaml:"survivor"`
	Boards   []sim.EngineSnapshot `yaml:"boards"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Survivor: -1}
	}
	return Snapshot{
		Tick:     g.tick,
		ClockMs:  g.clockMs(),
		Paused:   g.paused,
		Over:     g.session.IsSessionOver(),
		Survivor: g.survivor,
		Boards:   g.session.Snapshots(),
	}
}

// DumpState encodes the current snapshot as YAML.
func (g *Game) DumpState() ([]byte, error) {
	return yaml.Marshal(g.Snapshot())
}
