package render

import (
	"errors"

	"github.com/katalvlaran/mazepath/maze"
)

var (
	// ErrScreenTooSmall is returned when the maze does not fit the display.
	ErrScreenTooSmall = errors.New("render: screen too small for maze")
	// ErrScreenClosed is returned by WaitForKey once the terminal is closed.
	ErrScreenClosed = errors.New("render: screen closed")
)

// Sink presents a grid with one path highlighted.
type Sink interface {
	Draw(g *maze.Grid, highlighted []maze.Cell) error
}

// SinkFunc adapts an ordinary function to Sink.
type SinkFunc func(g *maze.Grid, highlighted []maze.Cell) error

// Draw calls f(g, highlighted).
func (f SinkFunc) Draw(g *maze.Grid, highlighted []maze.Cell) error {
	return f(g, highlighted)
}

// Discard is a Sink that draws nothing.
var Discard Sink = SinkFunc(func(*maze.Grid, []maze.Cell) error { return nil })

// StepFunc binds sink to g, producing a hook for pathfind.WithOnStep.
func StepFunc(sink Sink, g *maze.Grid) func(path []maze.Cell) error {
	return func(path []maze.Cell) error {
		return sink.Draw(g, path)
	}
}

// pathSet indexes path cells for O(1) membership tests while drawing.
func pathSet(path []maze.Cell) map[maze.Cell]struct{} {
	set := make(map[maze.Cell]struct{}, len(path))
	for _, c := range path {
		set[c] = struct{}{}
	}
	return set
}
