package matchthree

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/specialistvlad/lifesim/internal/render"
)

// Engine owns a match-3 grid and the matches found by the latest
// CheckMatches call. It is not safe for concurrent use; the caller owns it.
type Engine struct {
	width    int
	height   int
	keywords []Tile
	cells    [][]Tile // [y][x]
	matches  []Match
	rng      *rand.Rand
}

// New validates opts and returns an engine with a freshly initialized board.
func New(opts Options) (*Engine, error) {
	e, err := newEngine(opts)
	if err != nil {
		return nil, err
	}
	e.Initialize()
	return e, nil
}

// NewFromRows builds an engine around a hand-constructed layout. rows is
// indexed [y][x]; every tile must belong to the alphabet or be Empty. The
// layout is taken as is, without the adjacency re-roll.
func NewFromRows(rows [][]Tile, opts Options) (*Engine, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: layout has no cells", ErrInvalidOptions)
	}
	opts.Height = len(rows)
	opts.Width = len(rows[0])

	e, err := newEngine(opts)
	if err != nil {
		return nil, err
	}

	allowed := make(map[Tile]struct{}, len(e.keywords))
	for _, k := range e.keywords {
		allowed[k] = struct{}{}
	}
	for y, row := range rows {
		if len(row) != e.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidOptions, y, len(row), e.width)
		}
		for x, t := range row {
			if _, ok := allowed[t]; !ok && t != Empty {
				return nil, fmt.Errorf("%w: tile %q at (%d,%d) is not in the alphabet", ErrInvalidOptions, t, x, y)
			}
			e.cells[y][x] = t
		}
	}
	return e, nil
}

// Restore rebuilds an engine from a snapshot. Only opts.Rand is used; the
// dimensions and alphabet come from the snapshot.
func Restore(s Snapshot, opts Options) (*Engine, error) {
	opts.Keywords = s.Keywords
	e, err := NewFromRows(s.Rows, opts)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot: %w", err)
	}
	if e.width != s.Width || e.height != s.Height {
		return nil, fmt.Errorf("%w: snapshot declares %dx%d but holds %dx%d", ErrInvalidOptions, s.Width, s.Height, e.width, e.height)
	}
	return e, nil
}

func newEngine(opts Options) (*Engine, error) {
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidOptions, opts.Width, opts.Height)
	}

	keywords := opts.Keywords
	if len(keywords) == 0 {
		keywords = DefaultKeywords()
	}
	seen := make(map[Tile]struct{}, len(keywords))
	for _, k := range keywords {
		if k == Empty || k == "" {
			return nil, fmt.Errorf("%w: %q cannot be used as a keyword", ErrInvalidOptions, k)
		}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: duplicate keyword %q", ErrInvalidOptions, k)
		}
		seen[k] = struct{}{}
	}
	if len(keywords) < minKeywords {
		return nil, fmt.Errorf("%w: need at least %d keywords, got %d", ErrInvalidOptions, minKeywords, len(keywords))
	}

	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	cells := make([][]Tile, opts.Height)
	for y := range cells {
		cells[y] = make([]Tile, opts.Width)
		for x := range cells[y] {
			cells[y][x] = Empty
		}
	}

	return &Engine{
		width:    opts.Width,
		height:   opts.Height,
		keywords: append([]Tile(nil), keywords...),
		cells:    cells,
		rng:      rng,
	}, nil
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.width }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.height }

// Keywords returns a copy of the alphabet.
func (e *Engine) Keywords() []Tile { return append([]Tile(nil), e.keywords...) }

// Initialize fills every cell with a random keyword that differs from the
// tile directly above and the tile directly to the left. Pending matches are
// dropped.
func (e *Engine) Initialize() {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			t := e.roll()
			for (y > 0 && t == e.cells[y-1][x]) || (x > 0 && t == e.cells[y][x-1]) {
				t = e.roll()
			}
			e.cells[y][x] = t
		}
	}
	e.matches = nil
}

// SwapTiles exchanges two cells. It reports false and leaves the board alone
// when either coordinate is out of bounds. Whether the swap produces a match
// is for the caller to check.
func (e *Engine) SwapTiles(x1, y1, x2, y2 int) bool {
	if !e.inBounds(x1, y1) || !e.inBounds(x2, y2) {
		return false
	}
	e.cells[y1][x1], e.cells[y2][x2] = e.cells[y2][x2], e.cells[y1][x1]
	return true
}

// CheckMatches scans every column top to bottom, then every row left to
// right, and returns each maximal run of three or more equal tiles. The
// result also becomes the pending set cleared by the next ClearMatches.
func (e *Engine) CheckMatches() []Match {
	e.matches = e.findMatches(false)
	return e.Pending()
}

// Pending returns a copy of the matches recorded by the latest CheckMatches.
func (e *Engine) Pending() []Match {
	if len(e.matches) == 0 {
		return nil
	}
	out := make([]Match, len(e.matches))
	for i, m := range e.matches {
		out[i] = append(Match(nil), m...)
	}
	return out
}

// ClearMatches empties every cell of every pending match and resets the
// pending set.
func (e *Engine) ClearMatches() {
	for _, m := range e.matches {
		for _, c := range m {
			e.cells[c.Y][c.X] = Empty
		}
	}
	e.matches = nil
}

// FillBoard lets tiles fall into empty cells column by column and tops each
// column up with new keywords. A new top tile differs from the tile below it
// and from its left and right neighbours in the top row.
func (e *Engine) FillBoard() {
	for x := 0; x < e.width; x++ {
		for y := 0; y < e.height; y++ {
			if e.cells[y][x] != Empty {
				continue
			}
			for row := y; row > 0; row-- {
				e.cells[row][x] = e.cells[row-1][x]
			}
			e.cells[0][x] = e.rollTop(x)
		}
	}
}

// NoPossibleMoves reports whether no adjacent swap anywhere on the board
// would produce a match. Each candidate swap is applied to the live grid,
// scanned and undone, so the board and the pending matches are unchanged on
// return.
func (e *Engine) NoPossibleMoves() bool {
	for x := 0; x < e.width; x++ {
		for y := 0; y < e.height-1; y++ {
			if e.swapYieldsMatch(x, y, x, y+1) {
				return false
			}
		}
	}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width-1; x++ {
			if e.swapYieldsMatch(x, y, x+1, y) {
				return false
			}
		}
	}
	return true
}

// TileAt returns the tile at (x, y), or false when out of bounds.
func (e *Engine) TileAt(x, y int) (Tile, bool) {
	if !e.inBounds(x, y) {
		return "", false
	}
	return e.cells[y][x], true
}

// Rows returns a deep copy of the grid, indexed [y][x].
func (e *Engine) Rows() [][]Tile {
	out := make([][]Tile, e.height)
	for y, row := range e.cells {
		out[y] = append([]Tile(nil), row...)
	}
	return out
}

// Snapshot captures the board for persistence. Pending matches are not part
// of the snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Width:    e.width,
		Height:   e.height,
		Keywords: e.Keywords(),
		Rows:     e.Rows(),
	}
}

// String renders the board as a table, one cell per position.
func (e *Engine) String() string {
	rows := make([][]string, e.height)
	for y, row := range e.cells {
		rows[y] = make([]string, e.width)
		for x, t := range row {
			rows[y][x] = string(t)
		}
	}
	return render.Grid(rows, false)
}

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.width && y >= 0 && y < e.height
}

func (e *Engine) roll() Tile {
	return e.keywords[e.rng.IntN(len(e.keywords))]
}

func (e *Engine) rollTop(x int) Tile {
	for {
		t := e.roll()
		if e.height > 1 && t == e.cells[1][x] {
			continue
		}
		if x > 0 && t == e.cells[0][x-1] {
			continue
		}
		if x < e.width-1 && t == e.cells[0][x+1] {
			continue
		}
		return t
	}
}

func (e *Engine) swapYieldsMatch(x1, y1, x2, y2 int) bool {
	e.cells[y1][x1], e.cells[y2][x2] = e.cells[y2][x2], e.cells[y1][x1]
	found := len(e.findMatches(true)) > 0
	e.cells[y1][x1], e.cells[y2][x2] = e.cells[y2][x2], e.cells[y1][x1]
	return found
}

// findMatches collects runs of three or more equal non-empty tiles, columns
// first. With first set it returns as soon as one run is found.
func (e *Engine) findMatches(first bool) []Match {
	var matches []Match

	for x := 0; x < e.width; x++ {
		start := 0
		for y := 1; y <= e.height; y++ {
			if y < e.height && e.cells[y][x] == e.cells[start][x] {
				continue
			}
			if y-start >= 3 && e.cells[start][x] != Empty {
				m := make(Match, 0, y-start)
				for i := start; i < y; i++ {
					m = append(m, Coord{X: x, Y: i})
				}
				matches = append(matches, m)
				if first {
					return matches
				}
			}
			start = y
		}
	}

	for y := 0; y < e.height; y++ {
		start := 0
		for x := 1; x <= e.width; x++ {
			if x < e.width && e.cells[y][x] == e.cells[y][start] {
				continue
			}
			if x-start >= 3 && e.cells[y][start] != Empty {
				m := make(Match, 0, x-start)
				for i := start; i < x; i++ {
					m = append(m, Coord{X: i, Y: y})
				}
				matches = append(matches, m)
				if first {
					return matches
				}
			}
			start = x
		}
	}

	return matches
}
