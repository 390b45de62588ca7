package matchsession

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/specialistvlad/lifesim/internal/matchthree"
)

var (
	// ErrOutOfBounds is returned when a swap names a cell outside the board.
	ErrOutOfBounds = errors.New("coordinate outside the board")
	// ErrNotAdjacent is returned when the two cells of a swap do not share an edge.
	ErrNotAdjacent = errors.New("tiles are not adjacent")
)

const (
	// maxCascades bounds the clear/refill loop of a single swap.
	maxCascades = 64
	// maxDeals bounds the re-deals spent looking for a playable board.
	maxDeals = 100
)

// Result describes the outcome of one swap.
type Result struct {
	Accepted   bool `json:"accepted"`
	Cascades   int  `json:"cascades"`
	Cleared    int  `json:"cleared"`
	Reshuffled bool `json:"reshuffled"`
}

// View is a read-only projection of a session for clients.
type View struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Rows   [][]string `json:"rows"`
	Score  int        `json:"score"`
	Moves  int        `json:"moves"`
}

// Session drives match-3 play on top of one engine. It is safe for
// concurrent use; the engine must not be touched by anyone else.
type Session struct {
	mu     sync.Mutex
	engine *matchthree.Engine
	logger *slog.Logger
	score  int
	moves  int
}

// New wraps engine in a session. A nil logger falls back to slog.Default.
// A board without a possible move is dealt again before play starts.
func New(engine *matchthree.Engine, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{engine: engine, logger: logger}
	if engine.NoPossibleMoves() {
		s.deal(context.Background())
	}
	return s
}

// Reset deals a fresh board and zeroes the score.
func (s *Session) Reset(ctx context.Context) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deal(ctx)
	s.score, s.moves = 0, 0
	s.logger.DebugContext(ctx, "Board reset.")
	return s.viewLocked()
}

// Swap plays one move. A swap that produces no match is reverted and
// reported with Accepted=false. An accepted swap is resolved completely:
// matches are cleared and the board refilled until it settles, and a
// deadlocked board is dealt again.
func (s *Session) Swap(ctx context.Context, x1, y1, x2, y2 int) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inBounds(x1, y1) || !s.inBounds(x2, y2) {
		return Result{}, fmt.Errorf("swap (%d,%d)-(%d,%d): %w", x1, y1, x2, y2, ErrOutOfBounds)
	}
	if abs(x1-x2)+abs(y1-y2) != 1 {
		return Result{}, fmt.Errorf("swap (%d,%d)-(%d,%d): %w", x1, y1, x2, y2, ErrNotAdjacent)
	}

	logger := s.logger.With("from", matchthree.Coord{X: x1, Y: y1}, "to", matchthree.Coord{X: x2, Y: y2})

	s.engine.SwapTiles(x1, y1, x2, y2)
	matches := s.engine.CheckMatches()
	if len(matches) == 0 {
		s.engine.SwapTiles(x1, y1, x2, y2)
		logger.DebugContext(ctx, "Swap produced no match, reverted.")
		return Result{}, nil
	}

	res := Result{Accepted: true}
	for len(matches) > 0 && res.Cascades < maxCascades {
		res.Cascades++
		res.Cleared += countCells(matches)
		s.engine.ClearMatches()
		s.engine.FillBoard()
		matches = s.engine.CheckMatches()
	}
	if len(matches) > 0 {
		logger.WarnContext(ctx, "Cascade limit reached, leaving matches on the board.", "pending", len(matches))
	}

	s.score += res.Cleared
	s.moves++

	if s.engine.NoPossibleMoves() {
		s.deal(ctx)
		res.Reshuffled = true
		logger.InfoContext(ctx, "No moves left, board reshuffled.")
	}

	logger.DebugContext(ctx, "Swap resolved.", "cascades", res.Cascades, "cleared", res.Cleared, "score", s.score)
	return res, nil
}

// View returns the current board, score and move count.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Snapshot captures the board for saving.
func (s *Session) Snapshot() matchthree.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// deal initializes the board until it has a possible move. Some boards,
// such as a single row of four, can never be dealt playable; after maxDeals
// attempts the last deal is kept.
func (s *Session) deal(ctx context.Context) {
	for i := 0; i < maxDeals; i++ {
		s.engine.Initialize()
		if !s.engine.NoPossibleMoves() {
			return
		}
	}
	s.logger.WarnContext(ctx, "No playable board found, keeping a deadlocked one.", "attempts", maxDeals)
}

func (s *Session) viewLocked() View {
	rows := s.engine.Rows()
	out := make([][]string, len(rows))
	for y, row := range rows {
		out[y] = make([]string, len(row))
		for x, t := range row {
			out[y][x] = string(t)
		}
	}
	return View{
		Width:  s.engine.Width(),
		Height: s.engine.Height(),
		Rows:   out,
		Score:  s.score,
		Moves:  s.moves,
	}
}

func (s *Session) inBounds(x, y int) bool {
	_, ok := s.engine.TileAt(x, y)
	return ok
}

// countCells counts distinct cells across matches; a tile in both a row and
// a column run is cleared once.
func countCells(matches []matchthree.Match) int {
	seen := make(map[matchthree.Coord]struct{})
	for _, m := range matches {
		for _, c := range m {
			seen[c] = struct{}{}
		}
	}
	return len(seen)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
