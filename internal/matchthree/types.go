package matchthree

import (
	"errors"
	"math/rand/v2"
)

// Tile is the symbolic content of one board cell.
type Tile string

// Empty marks a cell cleared by ClearMatches and not yet refilled.
const Empty Tile = "NONE"

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// minKeywords is the smallest alphabet for which every re-roll loop can
// terminate: a refilled top cell must avoid up to three neighbours.
const minKeywords = 4

// DefaultKeywords is the alphabet used when Options.Keywords is empty.
func DefaultKeywords() []Tile {
	return []Tile{
		"AND", "AS", "ASSERT", "BREAK", "CLASS", "CONTINUE", "DEF", "DEL",
		"ELIF", "ELSE", "EXCEPT", "FALSE", "FINALLY", "FOR", "FROM", "GLOBAL",
	}
}

// ErrInvalidOptions is returned when an engine cannot be built from the
// given options or layout.
var ErrInvalidOptions = errors.New("matchthree: invalid options")

// Coord addresses a cell; X is the column, Y the row.
type Coord struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Match is a run of three or more equal tiles in one row or one column, in
// scan order.
type Match []Coord

// Options configures a new Engine.
type Options struct {
	Width    int
	Height   int
	Keywords []Tile
	// Rand drives tile generation. A time-seeded source is used when nil.
	Rand *rand.Rand
}

// Snapshot is the serialisable state of an engine.
type Snapshot struct {
	Width    int      `msgpack:"width"`
	Height   int      `msgpack:"height"`
	Keywords []Tile   `msgpack:"keywords"`
	Rows     [][]Tile `msgpack:"rows"`
}
