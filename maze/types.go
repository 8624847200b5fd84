package maze

import (
	"fmt"
	"strconv"
)

// CellKind is the semantic role of a grid cell.
type CellKind uint8

const (
	// Open is free space the search may walk through.
	Open CellKind = iota
	// Wall is an impassable obstacle.
	Wall
	// Start is where the search begins.
	Start
	// End is the search target.
	End
)

// Text markers for each CellKind.
const (
	MarkerOpen  = ' '
	MarkerWall  = '#'
	MarkerStart = 'O'
	MarkerEnd   = 'X'
)

// KindOf maps a text marker to its CellKind.
// Returns ErrUnknownMarker for any other rune.
func KindOf(r rune) (CellKind, error) {
	switch r {
	case MarkerOpen:
		return Open, nil
	case MarkerWall:
		return Wall, nil
	case MarkerStart:
		return Start, nil
	case MarkerEnd:
		return End, nil
	}
	return Open, fmt.Errorf("%w %q", ErrUnknownMarker, r)
}

// Marker returns the text marker of k.
func (k CellKind) Marker() rune {
	switch k {
	case Wall:
		return MarkerWall
	case Start:
		return MarkerStart
	case End:
		return MarkerEnd
	default:
		return MarkerOpen
	}
}

// Passable reports whether a search may enter a cell of kind k.
func (k CellKind) Passable() bool {
	return k != Wall
}

func (k CellKind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	}
	return "CellKind(" + strconv.Itoa(int(k)) + ")"
}

// Cell is a grid coordinate. It is a plain value and may be used as a map key.
type Cell struct {
	Row, Col int
}

// Adjacent reports whether c and o differ by exactly one unit on exactly one axis.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
