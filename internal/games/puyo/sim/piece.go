package sim

import "math/rand"

// Piece is a single colored cell that is not yet part of the grid.
type Piece struct {
	Col   int
	Row   int
	Color Color
}

// PieceSet is the falling pair under player control.
// Pieces[0] is the pivot for rotation.
type PieceSet struct {
	Pieces [2]Piece
}

// NewPieceSet creates a vertical pair with the pivot at (col, row)
// and the second piece one row below it.
func NewPieceSet(col, row int, pivot, second Color) PieceSet {
	return PieceSet{Pieces: [2]Piece{
		{Col: col, Row: row, Color: pivot},
		{Col: col, Row: row + 1, Color: second},
	}}
}

// RandomPieceSet creates a pair at the spawn position with independently
// drawn palette colors.
func RandomPieceSet(rng *rand.Rand) PieceSet {
	pivot := Palette[rng.Intn(len(Palette))]
	second := Palette[rng.Intn(len(Palette))]
	return NewPieceSet(SpawnCol, 0, pivot, second)
}

// Translate moves both pieces by the same delta. Legality is the caller's concern.
func (ps *PieceSet) Translate(dCol, dRow int) {
	for i := range ps.Pieces {
		ps.Pieces[i].Col += dCol
		ps.Pieces[i].Row += dRow
	}
}

// Translated returns a moved copy of the set.
func (ps PieceSet) Translated(dCol, dRow int) PieceSet {
	ps.Translate(dCol, dRow)
	return ps
}

// Rotated returns a copy with the second piece turned 90 degrees around the pivot.
// The offset (rx, ry) from the pivot becomes (ry, -rx).
func (ps PieceSet) Rotated() PieceSet {
	pivot := ps.Pieces[0]
	rx := ps.Pieces[1].Col - pivot.Col
	ry := ps.Pieces[1].Row - pivot.Row
	ps.Pieces[1].Col = pivot.Col + ry
	ps.Pieces[1].Row = pivot.Row - rx
	return ps
}

// Offset returns the position of the second piece relative to the pivot.
func (ps PieceSet) Offset() (dCol, dRow int) {
	return ps.Pieces[1].Col - ps.Pieces[0].Col, ps.Pieces[1].Row - ps.Pieces[0].Row
}
