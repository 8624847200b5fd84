package maze

import (
	"fmt"
	"strings"
)

// neighborOffsets lists (dRow, dCol) in the enumeration order up, down, left, right.
// Changing this order changes which of several equal-length shortest paths is returned.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is an immutable R×C maze. Build it with NewGrid, Parse, ReadGrid or LoadFile.
type Grid struct {
	rows, cols int
	kinds      [][]CellKind
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of kinds.
// It deep-copies the input so later changes to kinds do not leak into the Grid.
// Returns ErrEmptyGrid if kinds has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(R×C) time and memory.
func NewGrid(kinds [][]CellKind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(kinds), len(kinds[0])
	cells := make([][]CellKind, rows)
	for r, row := range kinds {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrNonRectangular, r, len(row), cols)
		}
		cells[r] = make([]CellKind, cols)
		copy(cells[r], row)
	}

	return &Grid{rows: rows, cols: cols, kinds: cells}, nil
}

// Parse builds a Grid from text lines, one rune per cell.
// Any rune other than ' ', '#', 'O', 'X' yields ErrUnknownMarker
// annotated with its position.
func Parse(lines []string) (*Grid, error) {
	kinds := make([][]CellKind, len(lines))
	for r, line := range lines {
		row := make([]CellKind, 0, len(line))
		col := 0
		for _, ch := range line {
			k, err := KindOf(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, r, col)
			}
			row = append(row, k)
			col++
		}
		kinds[r] = row
	}

	return NewGrid(kinds)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// CellKind returns the kind stored at c, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) CellKind(c Cell) (CellKind, error) {
	if !g.InBounds(c) {
		return Open, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.kinds[c.Row][c.Col], nil
}

// Find returns the first cell of kind k in row-major order, or ErrNotFound.
// If several cells carry k, the first one is returned silently; use
// Endpoints to reject duplicate Start/End markers.
// Complexity: O(R×C).
func (g *Grid) Find(k CellKind) (Cell, error) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.kinds[r][c] == k {
				return Cell{Row: r, Col: c}, nil
			}
		}
	}
	return Cell{}, fmt.Errorf("%w: %s", ErrNotFound, k)
}

// Count returns how many cells carry kind k.
func (g *Grid) Count(k CellKind) int {
	n := 0
	for _, row := range g.kinds {
		for _, v := range row {
			if v == k {
				n++
			}
		}
	}
	return n
}

// Neighbors returns the in-bounds cells adjacent to c, in the order
// up, down, left, right. Kinds are not inspected: walls are included.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Endpoints locates the unique Start and End cells.
// Returns ErrMissingStart / ErrMissingEnd when a marker is absent and
// ErrDuplicateStart / ErrDuplicateEnd when it appears more than once.
func (g *Grid) Endpoints() (start, end Cell, err error) {
	switch n := g.Count(Start); {
	case n == 0:
		return Cell{}, Cell{}, ErrMissingStart
	case n > 1:
		return Cell{}, Cell{}, fmt.Errorf("%w (%d found)", ErrDuplicateStart, n)
	}
	switch n := g.Count(End); {
	case n == 0:
		return Cell{}, Cell{}, ErrMissingEnd
	case n > 1:
		return Cell{}, Cell{}, fmt.Errorf("%w (%d found)", ErrDuplicateEnd, n)
	}
	// Both counts are exactly one, so Find cannot fail.
	start, _ = g.Find(Start)
	end, _ = g.Find(End)

	return start, end, nil
}

// String renders the grid as marker text, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r, row := range g.kinds {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, k := range row {
			sb.WriteRune(k.Marker())
		}
	}
	return sb.String()
}
