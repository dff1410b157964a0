package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo/sim"
)

//go:embed defaults/puyo.yaml
var defaultPuyoYAML []byte

// DefaultPuyoConfig returns the built-in configuration.
func DefaultPuyoConfig() PuyoConfig {
	return PuyoConfig{
		Gameplay: PuyoGameplay{
			FallIntervalMs: sim.DefaultFallInterval,
			GameOverRule:   string(sim.RuleSpawn),
			SharedSequence: true,
			Players:        1,
		},
		Scoring: PuyoScoring{
			PointsPerCell: sim.PointsPerCell,
		},
	}
}

// DefaultPuyoYAML returns the embedded default config file, for `puyo config`.
func DefaultPuyoYAML() []byte {
	out := make([]byte, len(defaultPuyoYAML))
	copy(out, defaultPuyoYAML)
	return out
}
