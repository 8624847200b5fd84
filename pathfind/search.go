// Package pathfind runs breadth-first search over a maze.Grid and returns
// a shortest path from Start to End, reporting every step to an observer.
package pathfind

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/mazepath/maze"
)

// node is one frontier entry. Paths share their prefix through parent
// links and are never mutated after creation.
type node struct {
	cell   maze.Cell
	parent *node
	depth  int // moves from start
}

// path materializes the route from start to n as a fresh slice.
func (n *node) path() []maze.Cell {
	out := make([]maze.Cell, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		out[cur.depth] = cur.cell
	}
	return out
}

// Search encapsulates the mutable state of one BFS run. Its frontier and
// visited set live only as long as the Search value; the Grid is read-only.
type Search struct {
	grid       *maze.Grid
	opts       Options
	ctx        context.Context
	start, end maze.Cell
	queue      []*node
	visited    map[maze.Cell]struct{}
	state      State
	steps      int
	found      *node
}

// FindPath runs a complete search on g, applying any number of Options.
// Returns the maze endpoint errors for a malformed grid, ErrGridNil,
// ErrOptionViolation for bad options, ErrNoPathFound when End is
// unreachable, ErrStepLimit, a context error, or a wrapped OnStep error.
func FindPath(g *maze.Grid, opts ...Option) (*Result, error) {
	s, err := NewSearch(g, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run()
}

// NewSearch validates its input and returns an Idle search whose frontier
// holds only Start, already marked visited.
func NewSearch(g *maze.Grid, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Apply options over the defaults
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, end, err := o.endpoints(g)
	if err != nil {
		return nil, err
	}

	total := g.Rows() * g.Cols()
	s := &Search{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		start:   start,
		end:     end,
		queue:   make([]*node, 0, min(total, 1024)),
		visited: make(map[maze.Cell]struct{}, total),
	}
	// Seed frontier with start (no parent)
	s.enqueue(&node{cell: start})

	return s, nil
}

// Run steps the search until it is Found or Exhausted.
func (s *Search) Run() (*Result, error) {
	for {
		st, err := s.Step()
		if err != nil {
			return nil, err
		}
		switch st {
		case Found:
			return s.Result(), nil
		case Exhausted:
			return nil, fmt.Errorf("%w: frontier exhausted after %d steps", ErrNoPathFound, s.steps)
		}
	}
}

// Step processes one frontier entry: report the head to OnStep, pause,
// then dequeue it and either finish on End or enqueue unvisited passable
// neighbors. The head is only dequeued once OnStep and the pause succeed,
// so a failed Step leaves the search intact and may be retried.
// Calling Step after Found or Exhausted is a no-op.
func (s *Search) Step() (State, error) {
	if s.state == Found || s.state == Exhausted {
		return s.state, nil
	}
	// cancellation check (once per step)
	select {
	case <-s.ctx.Done():
		return s.state, s.ctx.Err()
	default:
	}
	if len(s.queue) == 0 {
		s.state = Exhausted
		return s.state, nil
	}
	if s.opts.MaxSteps > 0 && s.steps >= s.opts.MaxSteps {
		return s.state, fmt.Errorf("%w: %d steps without reaching %v", ErrStepLimit, s.steps, s.end)
	}

	s.state = Running
	// Observe the head before committing the dequeue
	item := s.queue[0]
	if err := s.observe(item); err != nil {
		return s.state, err
	}
	s.dequeue()

	// Goal test on the dequeued cell
	if item.cell == s.end {
		s.state = Found
		s.found = item
		return s.state, nil
	}
	if err := s.enqueueNeighbors(item); err != nil {
		return s.state, err
	}
	if len(s.queue) == 0 {
		s.state = Exhausted
	}
	return s.state, nil
}

// State reports where the search is in its lifecycle.
func (s *Search) State() State { return s.state }

// Steps reports how many cells have been dequeued so far.
func (s *Search) Steps() int { return s.steps }

// Frontier reports how many cells are waiting for expansion.
func (s *Search) Frontier() int { return len(s.queue) }

// Visited reports how many distinct cells have been enqueued.
func (s *Search) Visited() int { return len(s.visited) }

// Result returns the outcome once the search is Found, nil otherwise.
func (s *Search) Result() *Result {
	if s.found == nil {
		return nil
	}
	return &Result{
		Path:    s.found.path(),
		Steps:   s.steps,
		Visited: len(s.visited),
	}
}

// enqueue marks n's cell visited and appends n to the frontier.
func (s *Search) enqueue(n *node) {
	s.visited[n.cell] = struct{}{}
	s.queue = append(s.queue, n)
}

// dequeue pops the head of the frontier.
func (s *Search) dequeue() *node {
	item := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	s.steps++
	return item
}

// observe hands a copy of the current path to OnStep, then pauses.
func (s *Search) observe(n *node) error {
	if s.opts.observed {
		if err := s.opts.OnStep(n.path()); err != nil {
			return fmt.Errorf("pathfind: OnStep error at %v: %w", n.cell, err)
		}
	}
	return s.pause()
}

// pause sleeps for the configured delay, returning early on cancellation.
func (s *Search) pause() error {
	if s.opts.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.opts.Delay)
	defer t.Stop()
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	case <-t.C:
		return nil
	}
}

// enqueueNeighbors adds every unvisited, passable neighbor of item.
// Cells are marked visited here, at enqueue time, so no cell is ever
// queued twice.
func (s *Search) enqueueNeighbors(item *node) error {
	// Neighbors arrive up, down, left, right
	for _, nbr := range s.grid.Neighbors(item.cell) {
		if _, seen := s.visited[nbr]; seen {
			continue
		}
		kind, err := s.grid.CellKind(nbr)
		if err != nil {
			return err
		}
		if !kind.Passable() {
			continue // wall
		}
		s.enqueue(&node{cell: nbr, parent: item, depth: item.depth + 1})
	}
	return nil
}
