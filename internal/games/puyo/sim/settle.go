package sim

// PopThreshold is the minimum group size that gets cleared.
const PopThreshold = 4

// PointsPerCell is the default score for each cleared cell.
const PointsPerCell = 10

// Pos is a grid coordinate.
type Pos struct {
	Col int
	Row int
}

// SettleResult summarizes a settle-and-clear run.
type SettleResult struct {
	Removed int // Cells cleared over all passes
	Chains  int // Passes that cleared at least one group
	Points  int // Score gained
}

// Compact drops every occupied cell in each column down onto the floor or the
// next occupied cell below it. The vertical order within a column is kept and
// columns never interact. Returns true if any cell moved.
func Compact(g *Grid) bool {
	moved := false
	for col := range Width {
		write := Height - 1
		for row := Height - 1; row >= 0; row-- {
			c := g.cells[row][col]
			if c == Empty {
				continue
			}
			if row != write {
				g.cells[write][col] = c
				g.cells[row][col] = Empty
				moved = true
			}
			write--
		}
	}
	return moved
}

// FindGroups returns every maximal 4-connected group of same-colored cells
// with at least minSize members. Groups are discovered in row-major order of
// their first cell.
func FindGroups(g *Grid, minSize int) [][]Pos {
	var visited [Width * Height]bool
	var groups [][]Pos
	stack := make([]Pos, 0, Width*Height)

	for row := range Height {
		for col := range Width {
			color := g.cells[row][col]
			if color == Empty || visited[row*Width+col] {
				continue
			}

			var group []Pos
			visited[row*Width+col] = true
			stack = append(stack[:0], Pos{Col: col, Row: row})

			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				group = append(group, p)

				for _, n := range [4]Pos{
					{p.Col, p.Row + 1},
					{p.Col, p.Row - 1},
					{p.Col + 1, p.Row},
					{p.Col - 1, p.Row},
				} {
					if !InBounds(n.Col, n.Row) {
						continue
					}
					idx := n.Row*Width + n.Col
					if visited[idx] || g.cells[n.Row][n.Col] != color {
						continue
					}
					visited[idx] = true
					stack = append(stack, n)
				}
			}

			if len(group) >= minSize {
				groups = append(groups, group)
			}
		}
	}
	return groups
}

// Pop clears every group of PopThreshold or more cells and returns the
// number of cells removed.
func Pop(g *Grid) int {
	removed := 0
	for _, group := range FindGroups(g, PopThreshold) {
		for _, p := range group {
			g.cells[p.Row][p.Col] = Empty
		}
		removed += len(group)
	}
	return removed
}

// Settle runs compaction and popping until a full pass changes nothing.
func Settle(g *Grid, pointsPerCell int) SettleResult {
	var res SettleResult
	for {
		moved := Compact(g)
		removed := Pop(g)
		if removed > 0 {
			res.Chains++
			res.Removed += removed
			res.Points += removed * pointsPerCell
		}
		if !moved && removed == 0 {
			return res
		}
	}
}
