// Package matchthree implements the match-3 tile game engine: board
// generation under an adjacency constraint, swaps, run-length match
// detection, clearing, gravity refill and deadlock detection.
//
// The engine only provides primitives. The gameplay loop (swap, check,
// clear, refill, repeat for cascades, revert when nothing matched) belongs to
// the caller; see package matchsession.
//
// Boards are indexed [y][x] with (0,0) in the top-left corner. Tiles fall
// towards larger y.
package matchthree
