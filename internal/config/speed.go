package config

import "fmt"

// SpeedPreset names a fall interval. Speed is the only difficulty knob.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
)

var speedIntervals = map[SpeedPreset]int64{
	SpeedEasy:   1000,
	SpeedNormal: 700,
	SpeedHard:   400,
}

// SpeedPresets lists the presets from slowest to fastest.
func SpeedPresets() []SpeedPreset {
	return []SpeedPreset{SpeedEasy, SpeedNormal, SpeedHard}
}

// ParseSpeedPreset validates a preset name. The empty string means "keep config".
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	if s == "" {
		return "", nil
	}
	p := SpeedPreset(s)
	if _, ok := speedIntervals[p]; !ok {
		return "", fmt.Errorf("config: unknown speed %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// FallInterval returns the preset's interval in milliseconds, or 0 if unknown.
func (p SpeedPreset) FallInterval() int64 {
	return speedIntervals[p]
}

// ApplySpeedPreset overrides the fall interval. Unknown or empty presets leave cfg unchanged.
func ApplySpeedPreset(cfg *PuyoConfig, preset SpeedPreset) {
	if ms := preset.FallInterval(); ms > 0 {
		cfg.Gameplay.FallIntervalMs = ms
	}
}

// ClosestSpeedPreset returns the preset whose interval is nearest to ms.
// Ties go to the slower preset.
func ClosestSpeedPreset(ms int64) SpeedPreset {
	best := SpeedNormal
	bestDiff := int64(-1)
	for _, p := range SpeedPresets() {
		diff := p.FallInterval() - ms
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = p, diff
		}
	}
	return best
}
