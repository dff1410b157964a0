package sim

// DefaultFallInterval is the time between gravity steps in milliseconds.
const DefaultFallInterval = 1000

// MaxPlayers is the number of boards a session can hold.
const MaxPlayers = 2

// SessionConfig configures a Session.
type SessionConfig struct {
	Players        int   // 1 or 2
	FallInterval   int64 // Milliseconds between gravity steps
	Seed           int64
	SharedSequence bool // All players receive the same pair sequence
	Rule           GameOverRule
	PointsPerCell  int
}

// Session runs one engine per player on a shared fall interval.
type Session struct {
	cfg     SessionConfig
	engines []*Engine
	last    []int64 // Recorded gravity timestamp per engine
	started bool
}

// NewSession creates a session and its engines. Player count is clamped to [1, MaxPlayers].
func NewSession(cfg SessionConfig) *Session {
	if cfg.Players < 1 {
		cfg.Players = 1
	}
	if cfg.Players > MaxPlayers {
		cfg.Players = MaxPlayers
	}
	if cfg.FallInterval <= 0 {
		cfg.FallInterval = DefaultFallInterval
	}

	s := &Session{
		cfg:     cfg,
		engines: make([]*Engine, cfg.Players),
		last:    make([]int64, cfg.Players),
	}
	for i := range s.engines {
		s.engines[i] = NewEngine(EngineConfig{
			Seed:          s.playerSeed(i),
			Rule:          cfg.Rule,
			PointsPerCell: cfg.PointsPerCell,
		})
	}
	return s
}

func (s *Session) playerSeed(i int) int64 {
	if s.cfg.SharedSequence {
		return s.cfg.Seed
	}
	return s.cfg.Seed + int64(i)
}

// Players returns the number of engines.
func (s *Session) Players() int {
	return len(s.engines)
}

// Player returns the engine for player index i, or nil if out of range.
func (s *Session) Player(i int) *Engine {
	if i < 0 || i >= len(s.engines) {
		return nil
	}
	return s.engines[i]
}

// FallInterval returns the gravity interval in milliseconds.
func (s *Session) FallInterval() int64 {
	return s.cfg.FallInterval
}

// SetFallInterval changes the gravity interval. Non-positive values are ignored.
func (s *Session) SetFallInterval(ms int64) {
	if ms > 0 {
		s.cfg.FallInterval = ms
	}
}

// Tick advances every engine that is not over.
//
// The first call after creation or RestartAll only records the timestamp.
// After that an engine gets exactly one gravity step per call once a full
// interval has elapsed, and its recorded timestamp moves forward by one
// interval rather than to timestampMs. Spawning and settling run on every call.
func (s *Session) Tick(timestampMs int64) []TickResult {
	results := make([]TickResult, len(s.engines))

	if !s.started {
		for i := range s.last {
			s.last[i] = timestampMs
		}
		s.started = true
	}

	for i, e := range s.engines {
		res := TickResult{Player: i}
		if e.IsOver() {
			results[i] = res
			continue
		}

		res.Spawned = e.Spawn()
		e.Refresh()

		if timestampMs-s.last[i] >= s.cfg.FallInterval {
			g := e.GravityTick()
			res.Fell = g.Fell
			res.Locked = g.Locked
			res.Removed = g.Removed
			res.Chains = g.Chains
			res.Points = g.Points
			res.GameOver = g.GameOver
			res.Spawned = res.Spawned || g.Spawned
			s.last[i] += s.cfg.FallInterval
		}
		results[i] = res
	}
	return results
}

// RestartAll resets every engine and the session timing.
func (s *Session) RestartAll() {
	for _, e := range s.engines {
		e.Reset()
	}
	for i := range s.last {
		s.last[i] = 0
	}
	s.started = false
}

// Reseed gives every engine a fresh random source derived from seed.
func (s *Session) Reseed(seed int64) {
	s.cfg.Seed = seed
	for i, e := range s.engines {
		e.Reseed(s.playerSeed(i))
	}
}

// IsSessionOver reports whether every engine is over.
func (s *Session) IsSessionOver() bool {
	for _, e := range s.engines {
		if !e.IsOver() {
			return false
		}
	}
	return true
}

// Winner returns the index of the last engine standing in a multi-player
// session, or -1 while more than one is alive, when all are over, or for a
// single player.
func (s *Session) Winner() int {
	if len(s.engines) < 2 {
		return -1
	}
	alive := -1
	for i, e := range s.engines {
		if e.IsOver() {
			continue
		}
		if alive >= 0 {
			return -1
		}
		alive = i
	}
	return alive
}

// Snapshots returns a read-only view of every engine.
func (s *Session) Snapshots() []EngineSnapshot {
	snaps := make([]EngineSnapshot, len(s.engines))
	for i, e := range s.engines {
		snaps[i] = e.Snapshot()
	}
	return snaps
}
