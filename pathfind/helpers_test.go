package pathfind_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

// mustParse builds a grid or fails the test.
func mustParse(t testing.TB, lines ...string) *maze.Grid {
	t.Helper()
	g, err := maze.Parse(lines)
	require.NoError(t, err)
	return g
}

// cells is shorthand for a path literal: cells(r0,c0, r1,c1, ...).
func cells(rc ...int) []maze.Cell {
	out := make([]maze.Cell, 0, len(rc)/2)
	for i := 0; i+1 < len(rc); i += 2 {
		out = append(out, maze.Cell{Row: rc[i], Col: rc[i+1]})
	}
	return out
}

// relaxDistance computes the move distance from start to end by repeated
// edge relaxation until a fixpoint, independent of any queue order.
// Returns -1 if end is unreachable.
func relaxDistance(g *maze.Grid, start, end maze.Cell) int {
	const inf = math.MaxInt32
	dist := make(map[maze.Cell]int, g.Rows()*g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			dist[maze.Cell{Row: r, Col: c}] = inf
		}
	}
	dist[start] = 0
	for changed := true; changed; {
		changed = false
		for cell, d := range dist {
			if k, _ := g.CellKind(cell); !k.Passable() {
				continue
			}
			for _, n := range g.Neighbors(cell) {
				if k, _ := g.CellKind(n); !k.Passable() || dist[n] == inf {
					continue
				}
				if dist[n]+1 < d {
					d = dist[n] + 1
					dist[cell] = d
					changed = true
				}
			}
		}
	}
	if dist[end] == inf {
		return -1
	}
	return dist[end]
}

// randomGrid builds a rows×cols maze with ~35% walls and distinct Start/End.
func randomGrid(t testing.TB, rng *rand.Rand, rows, cols int) *maze.Grid {
	t.Helper()
	kinds := make([][]maze.CellKind, rows)
	for r := range kinds {
		kinds[r] = make([]maze.CellKind, cols)
		for c := range kinds[r] {
			if rng.Intn(100) < 35 {
				kinds[r][c] = maze.Wall
			}
		}
	}
	s := rng.Intn(rows * cols)
	e := rng.Intn(rows*cols - 1)
	if e >= s {
		e++
	}
	kinds[s/cols][s%cols] = maze.Start
	kinds[e/cols][e%cols] = maze.End

	g, err := maze.NewGrid(kinds)
	require.NoError(t, err)
	return g
}

// requireValidPath checks that path is simple, runs start→end, and that
// every consecutive pair is grid-adjacent and passable.
func requireValidPath(t testing.TB, g *maze.Grid, path []maze.Cell, start, end maze.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])
	seen := make(map[maze.Cell]bool, len(path))
	for i, c := range path {
		require.False(t, seen[c], "cell %v repeated", c)
		seen[c] = true
		k, err := g.CellKind(c)
		require.NoError(t, err)
		require.True(t, k.Passable(), "cell %v is a wall", c)
		if i > 0 {
			require.True(t, path[i-1].Adjacent(c), "%v and %v not adjacent", path[i-1], c)
		}
	}
}
