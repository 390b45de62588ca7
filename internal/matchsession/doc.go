// Package matchsession runs the match-3 gameplay loop on top of a
// matchthree.Engine: validate and apply a swap, resolve cascades, revert
// swaps that match nothing, and reshuffle a deadlocked board. It also keeps
// the score and move count for one player.
package matchsession
