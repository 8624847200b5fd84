// Package pathfind provides breadth-first shortest-path search over a
// maze.Grid, reporting each step to an observer so the search can be
// animated.
//
// What
//
//   - Explores cells in non-decreasing distance (moves) from Start.
//   - Returns a Result containing:
//   - Path: a shortest route Start→End, both inclusive
//   - Steps: how many cells were dequeued
//   - Visited: how many distinct cells were enqueued
//   - Reports every dequeued cell's path through OnStep, then pauses for
//     Delay (zero for headless runs).
//   - Exposes the state machine Idle → Running → {Found, Exhausted} through
//     Search.Step for callers that want to drive the search themselves.
//
// Why
//
//   - BFS over an unweighted grid finds a shortest path in O(R×C).
//   - The observer hook keeps rendering out of the search loop, so the
//     engine is testable without a terminal.
//
// Determinism
//
//	maze.Grid.Neighbors enumerates up, down, left, right and the frontier
//	is strictly FIFO, so among several shortest paths the same one is
//	always returned. A cell is marked visited when it is enqueued, so it
//	is never queued twice.
//
// Complexity (R×C = cells)
//
//   - Time:   O(R×C) steps; each OnStep call copies a path of length ≤ R×C.
//   - Memory: O(R×C) for the frontier, visited set and shared path links.
//
// Usage
//
//		// Headless search:
//		res, err := pathfind.FindPath(g)
//		if errors.Is(err, pathfind.ErrNoPathFound) {
//			// report "no solution"
//		}
//
//		// Animated search:
//		res, err := pathfind.FindPath(
//		    g,
//		    pathfind.WithContext(ctx),
//		    pathfind.WithDelay(200*time.Millisecond),
//		    pathfind.WithMaxSteps(10_000),
//		    pathfind.WithOnStep(func(path []maze.Cell) error { return sink.Draw(g, path) }),
//		)
//
// Options
//
//   - DefaultOptions(): background Context, no-op OnStep, no delay, no step bound.
//   - WithContext(ctx):        cancellation and deadlines.
//   - WithOnStep(fn):          observer; returning an error aborts Run. The head cell
//                              stays queued, so Step may be retried.
//   - WithDelay(d):            pause after every step (d ≥ 0).
//   - WithMaxSteps(n):         fail with ErrStepLimit after n dequeues (n ≥ 0, 0 = unbounded).
//   - WithEndpoints(s, e):     search between explicit cells instead of the markers.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - maze.ErrMalformedGrid (wrapped) if Start/End are missing or duplicated.
//   - ErrOptionViolation  for invalid options.
//   - ErrNoPathFound      when End is unreachable.
//   - ErrStepLimit        when MaxSteps is exceeded.
//   - context errors and wrapped OnStep errors.
package pathfind
