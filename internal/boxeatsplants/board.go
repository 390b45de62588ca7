package boxeatsplants

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/specialistvlad/lifesim/internal/render"
)

// Board size used when Options leaves it zero.
const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// Kind is the type of a piece.
type Kind string

const (
	KindBox   Kind = "BOX"
	KindPlant Kind = "PLANT"
	KindRock  Kind = "ROCK"
)

// Direction is a one-tile step.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Piece is a box, plant or rock placed on the board.
type Piece struct {
	Kind Kind
	X    int
	Y    int
}

// String returns the kind of the piece.
func (p *Piece) String() string { return string(p.Kind) }

// Tile holds up to one piece of each kind.
type Tile struct {
	Box   *Piece
	Plant *Piece
	Rock  *Piece
}

func (t *Tile) slot(k Kind) **Piece {
	switch k {
	case KindBox:
		return &t.Box
	case KindPlant:
		return &t.Plant
	default:
		return &t.Rock
	}
}

// String lists the pieces on the tile one per line, or NONE.
func (t *Tile) String() string {
	var names []string
	for _, p := range []*Piece{t.Box, t.Plant, t.Rock} {
		if p != nil {
			names = append(names, p.String())
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, "\n")
}

// Options configures a board. Zero sizes select the defaults and a nil Rand
// is seeded from the clock.
type Options struct {
	Width  int
	Height int
	Rand   *rand.Rand
}

// Board is a Box Eats Plants grid indexed [y][x].
type Board struct {
	width  int
	height int
	tiles  [][]*Tile
	rng    *rand.Rand
}

// New returns an empty board.
func New(opts Options) (*Board, error) {
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	if opts.Width < 0 || opts.Height < 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", opts.Width, opts.Height)
	}
	r := opts.Rand
	if r == nil {
		now := uint64(time.Now().UnixNano())
		r = rand.New(rand.NewPCG(now, now>>1))
	}

	b := &Board{width: opts.Width, height: opts.Height, rng: r, tiles: make([][]*Tile, opts.Height)}
	for y := range b.tiles {
		b.tiles[y] = make([]*Tile, opts.Width)
		for x := range b.tiles[y] {
			b.tiles[y][x] = &Tile{}
		}
	}
	return b, nil
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

// NumPlants returns the number of plants on the board.
func (b *Board) NumPlants() int { return b.count(KindPlant) }

// NumRocks returns the number of rocks on the board.
func (b *Board) NumRocks() int { return b.count(KindRock) }

// NumBoxes returns the number of boxes on the board.
func (b *Board) NumBoxes() int { return b.count(KindBox) }

func (b *Board) count(k Kind) int {
	n := 0
	for _, row := range b.tiles {
		for _, t := range row {
			if *t.slot(k) != nil {
				n++
			}
		}
	}
	return n
}

// SpawnPlant places a plant on a random tile without one.
func (b *Board) SpawnPlant() (*Piece, bool) {
	return b.spawn(KindPlant, func(t *Tile) bool { return t.Plant == nil })
}

// SpawnRock places a rock on a random tile without one.
func (b *Board) SpawnRock() (*Piece, bool) {
	return b.spawn(KindRock, func(t *Tile) bool { return t.Rock == nil })
}

// SpawnBox places a box on a random tile holding no piece at all.
func (b *Board) SpawnBox() (*Piece, bool) {
	return b.spawn(KindBox, func(t *Tile) bool { return t.Box == nil && t.Plant == nil && t.Rock == nil })
}

// spawn re-rolls random tiles until free accepts one. It reports false
// without rolling when no tile qualifies.
func (b *Board) spawn(k Kind, free func(*Tile) bool) (*Piece, bool) {
	if !b.any(free) {
		return nil, false
	}
	for {
		x, y := b.rng.IntN(b.width), b.rng.IntN(b.height)
		t := b.tiles[y][x]
		if !free(t) {
			continue
		}
		p := &Piece{Kind: k, X: x, Y: y}
		*t.slot(k) = p
		return p, true
	}
}

func (b *Board) any(pred func(*Tile) bool) bool {
	for _, row := range b.tiles {
		for _, t := range row {
			if pred(t) {
				return true
			}
		}
	}
	return false
}

// Move steps p one tile in dir. It reports false, leaving p in place, when
// the step would leave the board or the destination already holds a piece of
// the same kind.
func (b *Board) Move(p *Piece, dir Direction) bool {
	from, ok := b.TileAt(p.X, p.Y)
	if !ok || *from.slot(p.Kind) != p {
		return false
	}

	x, y := p.X, p.Y
	switch dir {
	case Up:
		y--
	case Down:
		y++
	case Left:
		x--
	case Right:
		x++
	default:
		return false
	}

	to, ok := b.TileAt(x, y)
	if !ok || *to.slot(p.Kind) != nil {
		return false
	}

	*from.slot(p.Kind) = nil
	*to.slot(p.Kind) = p
	p.X, p.Y = x, y
	return true
}

// String renders the board, one cell per tile.
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
