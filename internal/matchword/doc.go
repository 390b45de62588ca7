// Package matchword implements the Match Word Puzzle board: a grid of closed
// tiles where every keyword appears exactly twice and the player opens tiles
// two at a time looking for pairs.
package matchword
