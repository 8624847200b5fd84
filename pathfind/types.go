// Package pathfind provides tunable options, error definitions and result
// types for breadth-first shortest-path search over a maze.Grid.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazepath/maze"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathfind: grid is nil")

	// ErrNoPathFound is returned when the frontier empties without reaching End.
	ErrNoPathFound = errors.New("pathfind: no path from start to end")

	// ErrStepLimit is returned when the search exceeds its MaxSteps bound.
	ErrStepLimit = errors.New("pathfind: step limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative delay), it is recorded
// internally and surfaced as ErrOptionViolation by NewSearch.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnStep is called after every dequeue with a copy of the path from
	// Start to the dequeued cell. Returning an error aborts the search.
	OnStep func(path []maze.Cell) error

	// Delay pauses the search after each OnStep call. Zero disables pacing.
	Delay time.Duration

	// MaxSteps, if > 0, bounds the number of dequeues. A value of 0
	// disables the bound.
	MaxSteps int

	// Start and End, when set by WithEndpoints, replace the grid's markers.
	Start, End *maze.Cell

	// observed is set when a real OnStep hook is installed, so unobserved
	// searches skip path materialization on every step.
	observed bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no-op OnStep hook
//   - no pacing delay
//   - no step bound.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func([]maze.Cell) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the step observer, typically a render sink.
func WithOnStep(fn func(path []maze.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
			o.observed = true
		}
	}
}

// WithDelay pauses for d after each step.
//
//	d > 0: pace the search for human viewing
//	d == 0: no pause (headless runs and tests)
//	d < 0: invalid option → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithMaxSteps stops the search with ErrStepLimit once n cells have been
// dequeued without reaching End. n == 0 means no bound; n < 0 is invalid.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithEndpoints searches from start to end instead of the grid's Start and
// End markers. Both cells must be in bounds and passable; they may be equal.
func WithEndpoints(start, end maze.Cell) Option {
	return func(o *Options) {
		o.Start, o.End = &start, &end
	}
}

// endpoints resolves the search endpoints: explicit ones from WithEndpoints,
// otherwise the grid's unique Start and End markers.
func (o *Options) endpoints(g *maze.Grid) (start, end maze.Cell, err error) {
	if o.Start == nil || o.End == nil {
		return g.Endpoints()
	}
	for _, c := range []maze.Cell{*o.Start, *o.End} {
		kind, err := g.CellKind(c)
		if err != nil {
			return start, end, err
		}
		if !kind.Passable() {
			return start, end, fmt.Errorf("%w: endpoint %v is a wall", ErrOptionViolation, c)
		}
	}
	return *o.Start, *o.End, nil
}

// State is the lifecycle of a Search: Idle → Running → {Found, Exhausted}.
type State int

const (
	// Idle means no step has run yet.
	Idle State = iota
	// Running means the frontier still holds cells to expand.
	Running
	// Found means End was dequeued.
	Found
	// Exhausted means the frontier emptied without reaching End.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result holds the outcome of a successful search:
//   - Path: cells from Start to End inclusive, a shortest route.
//   - Steps: number of cells dequeued, End included.
//   - Visited: number of distinct cells ever enqueued.
type Result struct {
	Path    []maze.Cell
	Steps   int
	Visited int
}

// Moves returns the number of moves along Path (len(Path)-1).
func (r *Result) Moves() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
