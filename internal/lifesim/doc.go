// Package lifesim holds the persisted state of a Life Simulation player: the
// minigames on offer, whether each was played, and the match-3 board in
// progress.
package lifesim
