// Package mazepath finds and animates the shortest path through a grid maze.
//
// What is mazepath?
//
//	A small, dependency-light toolkit built around one algorithm:
//		• maze/    : immutable Grid model: cell kinds, bounds-checked lookup,
//		              fixed-order neighbors, Start/End validation, regions
//		• pathfind/: breadth-first search with a step observer, pacing delay,
//		              step bound and context cancellation
//		• render/  : sinks that draw search progress: tcell terminal, plain text
//		• config/  : MAZE_* environment and .env settings
//		• cmd/mazepath: the command that wires them together
//
// Quick ASCII example (O start, X end, # wall):
//
//	####O####
//	#       #
//	# ## ## #
//	# #   # #
//	# # # # #
//	# # # # #
//	# # # ###
//	#       #
//	#######X#
//
// BFS finds the 12-cell route down the middle corridor.
//
//	go run github.com/katalvlaran/mazepath/cmd/mazepath -delay 100ms
package mazepath
