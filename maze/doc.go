// Package maze models a rectangular maze as an immutable 2D grid of cell kinds,
// the input of every shortest-path search in mazepath.
//
// What:
//
//   - Grid wraps an R×C array of CellKind (Open, Wall, Start, End).
//   - Text markers: ' ' open, '#' wall, 'O' start, 'X' end.
//   - Cell lookup with bounds checking, row-major Find, and 4-neighbor
//     enumeration in the fixed order up, down, left, right.
//   - Endpoints validates that exactly one Start and one End exist.
//   - Components labels 4-connected regions of passable cells.
//
// Why:
//
//   - The search engine needs a read-only, bounds-aware view of the maze.
//   - A fixed neighbor order makes tie-breaking between equal-length paths
//     deterministic, so tests can pin exact paths.
//
// Complexity:
//
//   - CellKind, InBounds, Neighbors: O(1).
//   - Find, Count, Endpoints:        O(R×C).
//   - Components:                    O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every shape or marker problem below.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownMarker.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateStart, ErrDuplicateEnd.
//   - ErrOutOfBounds: a position outside the grid was queried.
//   - ErrNotFound: Find found no cell of the requested kind.
package maze
