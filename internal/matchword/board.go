package matchword

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/specialistvlad/lifesim/internal/render"
	"github.com/zyedidia/generic/mapset"
)

// Board size used when Options leaves it zero.
const (
	DefaultWidth  = 6
	DefaultHeight = 4
)

// closedLabel is how a closed tile is shown.
const closedLabel = "CLOSED"

var (
	// ErrInvalidOptions is returned by New when the board cannot be dealt.
	ErrInvalidOptions = errors.New("invalid match word options")
	// ErrInvalidFlip is returned by Flip for coordinates that cannot be opened.
	ErrInvalidFlip = errors.New("invalid flip")
)

// DefaultKeywords returns the keyword pool tiles are drawn from.
func DefaultKeywords() []string {
	return []string{
		"AND", "AS", "ASSERT", "BREAK", "CLASS", "CONTINUE", "DEF", "DEL", "ELIF", "ELSE",
		"EXCEPT", "FALSE", "FINALLY", "FOR", "FROM", "GLOBAL", "IF", "IMPORT", "IN", "IS",
		"LAMBDA", "NONE", "NONLOCAL", "NOT", "OR", "PASS", "RAISE", "RETURN", "TRUE",
		"TRY", "WHILE", "WITH", "YIELD",
	}
}

// Coord addresses a tile; X is the column and Y the row.
type Coord struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Options configures a board. Zero sizes and a nil keyword list select the
// defaults; a nil Rand is seeded from the clock.
type Options struct {
	Width    int
	Height   int
	Keywords []string
	Rand     *rand.Rand
}

// Tile is one cell of the board.
type Tile struct {
	Contents string `msgpack:"contents"`
	Closed   bool   `msgpack:"closed"`
}

// Open opens a closed tile. It reports false if the tile was already open.
func (t *Tile) Open() bool {
	if !t.Closed {
		return false
	}
	t.Closed = false
	return true
}

// String shows the contents of an open tile and CLOSED otherwise.
func (t *Tile) String() string {
	if t.Closed {
		return closedLabel
	}
	return t.Contents
}

// Board is a Match Word Puzzle grid indexed [y][x].
type Board struct {
	width  int
	height int
	tiles  [][]*Tile
}

// New deals a board. Width*Height/2 distinct keywords are picked at random
// and each is placed on exactly two tiles.
func New(opts Options) (*Board, error) {
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	if opts.Keywords == nil {
		opts.Keywords = DefaultKeywords()
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, opts.Width, opts.Height)
	}

	cells := opts.Width * opts.Height
	if cells%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d board has an odd number of tiles", ErrInvalidOptions, opts.Width, opts.Height)
	}

	pool := mapset.New[string]()
	for _, kw := range opts.Keywords {
		if kw == "" {
			return nil, fmt.Errorf("%w: empty keyword", ErrInvalidOptions)
		}
		if pool.Has(kw) {
			return nil, fmt.Errorf("%w: duplicate keyword %q", ErrInvalidOptions, kw)
		}
		pool.Put(kw)
	}
	if cells/2 > len(opts.Keywords) {
		return nil, fmt.Errorf("%w: %d pairs need more than %d keywords", ErrInvalidOptions, cells/2, len(opts.Keywords))
	}

	r := opts.Rand
	if r == nil {
		now := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(now, now>>1))
	}

	chosen := pickDistinct(r, opts.Keywords, cells/2)
	deck := make([]string, 0, cells)
	for _, kw := range chosen {
		deck = append(deck, kw, kw)
	}
	r.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	b := &Board{width: opts.Width, height: opts.Height, tiles: make([][]*Tile, opts.Height)}
	for y := range b.tiles {
		b.tiles[y] = make([]*Tile, opts.Width)
		for x := range b.tiles[y] {
			b.tiles[y][x] = &Tile{Contents: deck[y*opts.Width+x], Closed: true}
		}
	}
	return b, nil
}

// pickDistinct draws n different keywords, re-rolling any already taken.
func pickDistinct(r *rand.Rand, keywords []string, n int) []string {
	taken := mapset.New[string]()
	out := make([]string, 0, n)
	for len(out) < n {
		kw := keywords[r.IntN(len(keywords))]
		if taken.Has(kw) {
			continue
		}
		taken.Put(kw)
		out = append(out, kw)
	}
	return out
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// TileAt returns the tile at (x, y), or false outside the board.
func (b *Board) TileAt(x, y int) (*Tile, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil, false
	}
	return b.tiles[y][x], true
}

// AllOpened reports whether every tile has been opened.
func (b *Board) AllOpened() bool {
	for _, row := range b.tiles {
		for _, t := range row {
			if t.Closed {
				return false
			}
		}
	}
	return true
}

// FlipResult reports what two flipped tiles held.
type FlipResult struct {
	Matched bool
	First   string
	Second  string
}

// Flip opens the tiles at a and c. Matching pairs stay open; otherwise both
// tiles are closed again and their contents are only revealed in the result.
func (b *Board) Flip(a, c Coord) (FlipResult, error) {
	if a == c {
		return FlipResult{}, fmt.Errorf("%w: (%d,%d) named twice", ErrInvalidFlip, a.X, a.Y)
	}
	first, ok := b.TileAt(a.X, a.Y)
	if !ok {
		return FlipResult{}, fmt.Errorf("%w: (%d,%d) is outside the board", ErrInvalidFlip, a.X, a.Y)
	}
	second, ok := b.TileAt(c.X, c.Y)
	if !ok {
		return FlipResult{}, fmt.Errorf("%w: (%d,%d) is outside the board", ErrInvalidFlip, c.X, c.Y)
	}
	if !first.Closed || !second.Closed {
		return FlipResult{}, fmt.Errorf("%w: tile already open", ErrInvalidFlip)
	}

	res := FlipResult{
		Matched: first.Contents == second.Contents,
		First:   first.Contents,
		Second:  second.Contents,
	}
	if res.Matched {
		first.Open()
		second.Open()
	}
	return res, nil
}

// String renders the board with closed tiles hidden.
func (b *Board) String() string {
	rows := make([][]string, len(b.tiles))
	for y, row := range b.tiles {
		rows[y] = make([]string, len(row))
		for x, t := range row {
			rows[y][x] = t.String()
		}
	}
	return render.Grid(rows, false)
}
