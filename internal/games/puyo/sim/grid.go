// Package sim implements the board simulation for the puyo game: the settled
// grid, the falling pair, gravity settling, group popping, scoring and the
// game-over state machine. It is UI-agnostic and deterministic for a given seed.
package sim

// Board dimensions. Row 0 is the top (spawn) row, row Height-1 is the floor.
const (
	Width  = 6
	Height = 12
)

// SpawnCol is the column new pairs appear in.
const SpawnCol = Width/2 - 1

// Color is the content of a grid cell. The zero value is an empty cell.
type Color uint8

const (
	Empty Color = iota
	Red
	Green
	Blue
	Yellow
)

// Palette is the fixed set of colors a piece can have.
var Palette = [...]Color{Red, Green, Blue, Yellow}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseColor converts a color name back to a Color.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "red", "r":
		return Red, true
	case "green", "g":
		return Green, true
	case "blue", "b":
		return Blue, true
	case "yellow", "y":
		return Yellow, true
	case "empty", ".", "":
		return Empty, true
	}
	return Empty, false
}

// Cells is a row-major copy of the grid contents, indexed [row][col].
type Cells [Height][Width]Color

// Grid holds the settled pieces of one player.
type Grid struct {
	cells Cells
}

// InBounds reports whether (col, row) lies on the board.
func InBounds(col, row int) bool {
	return col >= 0 && col < Width && row >= 0 && row < Height
}

// Get returns the color at (col, row).
// Coordinates must be in bounds; out-of-bounds access panics.
func (g *Grid) Get(col, row int) Color {
	return g.cells[row][col]
}

// Set stores a color at (col, row).
func (g *Grid) Set(col, row int, c Color) {
	g.cells[row][col] = c
}

// IsEmpty reports whether (col, row) is on the board and unoccupied.
func (g *Grid) IsEmpty(col, row int) bool {
	return InBounds(col, row) && g.cells[row][col] == Empty
}

// Clear resets every cell to empty.
func (g *Grid) Clear() {
	g.cells = Cells{}
}

// Cells returns a copy of the grid contents.
func (g *Grid) Cells() Cells {
	return g.cells
}

// FilledCount returns the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for row := range Height {
		for col := range Width {
			if g.cells[row][col] != Empty {
				n++
			}
		}
	}
	return n
}

// GridFromRows builds a grid from a picture, one string per row from the top.
// Each rune is a cell: '.' empty, 'r' red, 'g' green, 'b' blue, 'y' yellow.
// Missing rows at the top are left empty, so short pictures sit on the floor.
// Unknown runes are treated as empty.
func GridFromRows(rows ...string) *Grid {
	g := &Grid{}
	offset := Height - len(rows)
	for i, line := range rows {
		row := offset + i
		if row < 0 {
			continue
		}
		for col, r := range []rune(line) {
			if col >= Width {
				break
			}
			c, _ := ParseColor(string(r))
			g.cells[row][col] = c
		}
	}
	return g
}
