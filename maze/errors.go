package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid is wrapped by every grid shape or marker error.
	ErrMalformedGrid = errors.New("maze: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrUnknownMarker indicates a character that is not one of ' ', '#', 'O', 'X'.
	ErrUnknownMarker = fmt.Errorf("%w: unknown cell marker", ErrMalformedGrid)
	// ErrMissingStart indicates the grid has no Start cell.
	ErrMissingStart = fmt.Errorf("%w: no start cell", ErrMalformedGrid)
	// ErrMissingEnd indicates the grid has no End cell.
	ErrMissingEnd = fmt.Errorf("%w: no end cell", ErrMalformedGrid)
	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = fmt.Errorf("%w: more than one start cell", ErrMalformedGrid)
	// ErrDuplicateEnd indicates more than one End cell.
	ErrDuplicateEnd = fmt.Errorf("%w: more than one end cell", ErrMalformedGrid)

	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrNotFound indicates no cell carries the requested kind.
	ErrNotFound = errors.New("maze: cell kind not found")
)
