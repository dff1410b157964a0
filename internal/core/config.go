package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Best score across players
	Scores   []int // Per-player scores, index = board
	MaxChain int   // Longest chain on any board
	Winner   int   // Board index of the last player standing, or -1
	PlayMs   int64 // Simulated time since the last restart, pauses excluded
	GameOver bool  // Every board has ended
	Paused   bool
}

// Event is something notable that happened during a step.
type Event struct {
	Player PlayerID
	Kind   EventKind
	Value  int // Cells popped for EventClear, chain length for EventChain
}

// EventKind classifies an Event.
type EventKind int

const (
	EventLock EventKind = iota
	EventClear
	EventChain
	EventGameOver
	EventRestart
)

// String returns a short name for logging.
func (k EventKind) String() string {
	switch k {
	case EventLock:
		return "lock"
	case EventClear:
		return "clear"
	case EventChain:
		return "chain"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
