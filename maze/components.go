package maze

// Components finds all 4-connected regions of passable cells (every kind
// except Wall). Regions are listed in the row-major order of their first
// cell; cells inside a region are in flood order.
//
// Time:   O(R×C).
// Memory: O(R×C) for the seen flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([][]bool, g.rows)
	for r := range seen {
		seen[r] = make([]bool, g.cols)
	}
	var comps [][]Cell

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !g.kinds[r][c].Passable() || seen[r][c] {
				continue
			}
			queue := []Cell{{Row: r, Col: c}}
			seen[r][c] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi]) {
					if !g.kinds[n.Row][n.Col].Passable() || seen[n.Row][n.Col] {
						continue
					}
					seen[n.Row][n.Col] = true
					queue = append(queue, n)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether a and b are passable cells of the same region.
func (g *Grid) Connected(a, b Cell) bool {
	for _, comp := range g.Components() {
		var hasA, hasB bool
		for _, c := range comp {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
