package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/mazepath/maze"
)

// DefaultPathRune marks highlighted cells in Text frames.
const DefaultPathRune = '*'

// Text writes each frame as marker text followed by a blank line.
// Highlighted cells are drawn with PathRune.
type Text struct {
	w        io.Writer
	PathRune rune
	frames   int
}

// NewText returns a Text sink writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w, PathRune: DefaultPathRune}
}

// Frames reports how many frames have been written.
func (t *Text) Frames() int { return t.frames }

// Draw writes one frame.
func (t *Text) Draw(g *maze.Grid, highlighted []maze.Cell) error {
	onPath := pathSet(highlighted)
	bw := bufio.NewWriter(t.w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := maze.Cell{Row: r, Col: c}
			if _, ok := onPath[cell]; ok {
				bw.WriteRune(t.PathRune)
				continue
			}
			k, err := g.CellKind(cell)
			if err != nil {
				return err
			}
			bw.WriteRune(k.Marker())
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	t.frames++
	return nil
}
