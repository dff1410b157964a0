// Package config provides YAML-based game configuration loading and
// speed presets for the puyo boards.
package config

import (
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/sim"
)

// PuyoConfig contains all configuration for the puyo boards.
type PuyoConfig struct {
	Gameplay PuyoGameplay `yaml:"gameplay"`
	Scoring  PuyoScoring  `yaml:"scoring"`
}

// PuyoGameplay defines timing and rules.
type PuyoGameplay struct {
	FallIntervalMs int64  `yaml:"fall_interval_ms"`
	GameOverRule   string `yaml:"game_over_rule"` // "spawn" or "top_row"
	SharedSequence bool   `yaml:"shared_sequence"`
	Players        int    `yaml:"players"`
}

// PuyoScoring defines how cleared cells are scored.
type PuyoScoring struct {
	PointsPerCell int `yaml:"points_per_cell"`
}

// MinFallInterval is the fastest gravity the host accepts, in milliseconds.
const MinFallInterval = 50

// Normalize clamps out-of-range values so any loaded config is playable.
// Zero values fall back to defaults.
func (c *PuyoConfig) Normalize() {
	if c.Gameplay.FallIntervalMs <= 0 {
		c.Gameplay.FallIntervalMs = sim.DefaultFallInterval
	}
	if c.Gameplay.FallIntervalMs < MinFallInterval {
		c.Gameplay.FallIntervalMs = MinFallInterval
	}
	c.Gameplay.GameOverRule = string(sim.ParseGameOverRule(c.Gameplay.GameOverRule))
	if c.Gameplay.Players < 1 {
		c.Gameplay.Players = 1
	}
	if c.Gameplay.Players > sim.MaxPlayers {
		c.Gameplay.Players = sim.MaxPlayers
	}
	if c.Scoring.PointsPerCell <= 0 {
		c.Scoring.PointsPerCell = sim.PointsPerCell
	}
}

// SessionConfig converts the config into session parameters.
func (c PuyoConfig) SessionConfig(seed int64) sim.SessionConfig {
	return sim.SessionConfig{
		Players:        c.Gameplay.Players,
		FallInterval:   c.Gameplay.FallIntervalMs,
		Seed:           seed,
		SharedSequence: c.Gameplay.SharedSequence,
		Rule:           sim.ParseGameOverRule(c.Gameplay.GameOverRule),
		PointsPerCell:  c.Scoring.PointsPerCell,
	}
}
