package sim

import "math/rand"

// GameOverRule selects which occupied cells end the game after a lock.
type GameOverRule string

const (
	// RuleSpawn ends the game when either spawn cell (SpawnCol, rows 0-1) is occupied.
	RuleSpawn GameOverRule = "spawn"
	// RuleTopRow additionally ends the game when anything settles in row 0.
	RuleTopRow GameOverRule = "top_row"
)

// ParseGameOverRule maps a config value to a rule. Unknown values yield RuleSpawn.
func ParseGameOverRule(s string) GameOverRule {
	if GameOverRule(s) == RuleTopRow {
		return RuleTopRow
	}
	return RuleSpawn
}

// EngineConfig configures a single player's engine.
type EngineConfig struct {
	Seed          int64
	Rule          GameOverRule
	PointsPerCell int // 0 means PointsPerCell
}

// Stats are running counters for one game.
type Stats struct {
	PiecesLocked int
	CellsPopped  int
	LastChain    int
	MaxChain     int
}

// TickResult reports what one engine did during a session tick.
type TickResult struct {
	Player   int
	Spawned  bool
	Fell     bool
	Locked   bool
	Removed  int
	Chains   int
	Points   int
	GameOver bool // The engine became over during this tick
}

// Engine owns one player's grid, falling pair, preview pair and score.
type Engine struct {
	grid   Grid
	active *PieceSet
	next   *PieceSet
	score  int
	over   bool
	stats  Stats

	rng           *rand.Rand
	rule          GameOverRule
	pointsPerCell int
}

// NewEngine creates an engine with its own seeded random source.
func NewEngine(cfg EngineConfig) *Engine {
	e := &Engine{
		rng:           rand.New(rand.NewSource(cfg.Seed)),
		rule:          cfg.Rule,
		pointsPerCell: cfg.PointsPerCell,
	}
	if e.rule == "" {
		e.rule = RuleSpawn
	}
	if e.pointsPerCell <= 0 {
		e.pointsPerCell = PointsPerCell
	}
	return e
}

// Reset clears the grid, score, over flag and both pairs.
// The random source keeps its position.
func (e *Engine) Reset() {
	e.grid.Clear()
	e.active = nil
	e.next = nil
	e.score = 0
	e.over = false
	e.stats = Stats{}
}

// Reseed replaces the random source. Used when a session restarts with a new seed.
func (e *Engine) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// Spawn promotes the preview pair to active when nothing is falling.
// Returns true if a new pair became active.
func (e *Engine) Spawn() bool {
	if e.over || e.active != nil {
		return false
	}
	if e.next == nil {
		e.next = e.newPair()
	}
	e.active = e.next
	e.next = e.newPair()
	return true
}

func (e *Engine) newPair() *PieceSet {
	ps := RandomPieceSet(e.rng)
	return &ps
}

// fits reports whether every piece of ps is on the board over an empty cell.
func (e *Engine) fits(ps PieceSet) bool {
	for _, p := range ps.Pieces {
		if !e.grid.IsEmpty(p.Col, p.Row) {
			return false
		}
	}
	return true
}

// try replaces the active pair with candidate if it fits.
func (e *Engine) try(candidate PieceSet) bool {
	if !e.fits(candidate) {
		return false
	}
	*e.active = candidate
	return true
}

func (e *Engine) controllable() bool {
	return !e.over && e.active != nil
}

// MoveLeft shifts the falling pair one column left if the destination is free.
func (e *Engine) MoveLeft() bool {
	if !e.controllable() {
		return false
	}
	return e.try(e.active.Translated(-1, 0))
}

// MoveRight shifts the falling pair one column right if the destination is free.
func (e *Engine) MoveRight() bool {
	if !e.controllable() {
		return false
	}
	return e.try(e.active.Translated(1, 0))
}

// SoftDrop moves the falling pair down one row unless it would collide.
func (e *Engine) SoftDrop() bool {
	if !e.controllable() {
		return false
	}
	return e.try(e.active.Translated(0, 1))
}

// Rotate turns the second piece around the pivot. Blocked rotations do nothing.
func (e *Engine) Rotate() bool {
	if !e.controllable() {
		return false
	}
	return e.try(e.active.Rotated())
}

// Collides reports whether the falling pair cannot fall one more row.
// Returns false when nothing is falling.
func (e *Engine) Collides() bool {
	if e.active == nil {
		return false
	}
	for _, p := range e.active.Pieces {
		below := p.Row + 1
		if below >= Height || e.grid.Get(p.Col, below) != Empty {
			return true
		}
	}
	return false
}

// Solidify writes the falling pair into the grid and clears the active slot.
func (e *Engine) Solidify() {
	if e.active == nil {
		return
	}
	for _, p := range e.active.Pieces {
		if InBounds(p.Col, p.Row) {
			e.grid.Set(p.Col, p.Row, p.Color)
		}
	}
	e.active = nil
	e.stats.PiecesLocked++
}

// SettleAndClear compacts and pops until stable, adding the points to the score.
func (e *Engine) SettleAndClear() SettleResult {
	res := Settle(&e.grid, e.pointsPerCell)
	if res.Removed == 0 {
		return res
	}
	e.score += res.Points
	e.stats.CellsPopped += res.Removed
	e.stats.LastChain = res.Chains
	if res.Chains > e.stats.MaxChain {
		e.stats.MaxChain = res.Chains
	}
	return res
}

// CheckGameOver applies the game-over rule and latches the over flag.
func (e *Engine) CheckGameOver() bool {
	if e.over {
		return true
	}
	blocked := e.grid.Get(SpawnCol, 0) != Empty || e.grid.Get(SpawnCol, 1) != Empty
	if !blocked && e.rule == RuleTopRow {
		for col := range Width {
			if e.grid.Get(col, 0) != Empty {
				blocked = true
				break
			}
		}
	}
	if blocked {
		e.over = true
		e.active = nil
	}
	return e.over
}

// GravityTick advances the falling pair by one row, or locks it if it has landed.
func (e *Engine) GravityTick() TickResult {
	var res TickResult
	if !e.controllable() {
		return res
	}

	if !e.Collides() {
		e.active.Translate(0, 1)
		res.Fell = true
		return res
	}

	e.Solidify()
	settled := e.SettleAndClear()
	res.Locked = true
	res.Removed = settled.Removed
	res.Chains = settled.Chains
	res.Points = settled.Points

	if e.CheckGameOver() {
		res.GameOver = true
		return res
	}
	res.Spawned = e.Spawn()
	return res
}

// Refresh settles the grid outside of a lock. On a stable board it does nothing.
func (e *Engine) Refresh() SettleResult {
	if e.over {
		return SettleResult{}
	}
	return e.SettleAndClear()
}

// Score returns the cumulative score.
func (e *Engine) Score() int {
	return e.score
}

// IsOver reports whether the engine has reached game over.
func (e *Engine) IsOver() bool {
	return e.over
}

// Stats returns the running counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Grid returns a copy of the settled cells.
func (e *Engine) Grid() Cells {
	return e.grid.Cells()
}

// Active returns the falling pair, if any.
func (e *Engine) Active() (PieceSet, bool) {
	if e.active == nil {
		return PieceSet{}, false
	}
	return *e.active, true
}

// Next returns the preview pair, if any.
func (e *Engine) Next() (PieceSet, bool) {
	if e.next == nil {
		return PieceSet{}, false
	}
	return *e.next, true
}

// EngineSnapshot is a read-only view of an engine for rendering.
type EngineSnapshot struct {
	Cells     Cells
	Active    PieceSet
	HasActive bool
	Next      PieceSet
	HasNext   bool
	Score     int
	Over      bool
	Stats     Stats
}

// Snapshot copies the engine state.
func (e *Engine) Snapshot() EngineSnapshot {
	snap := EngineSnapshot{
		Cells: e.grid.Cells(),
		Score: e.score,
		Over:  e.over,
		Stats: e.stats,
	}
	snap.Active, snap.HasActive = e.Active()
	snap.Next, snap.HasNext = e.Next()
	return snap
}
