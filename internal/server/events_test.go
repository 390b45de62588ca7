package server

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/specialistvlad/lifesim/internal/config"
	"github.com/specialistvlad/lifesim/internal/matchsession"
	"github.com/specialistvlad/lifesim/internal/matchthree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSession builds a session on a board whose only move is swapping
// (2,0) with (2,1).
func newTestSession(t *testing.T) *matchsession.Session {
	t.Helper()
	kw := matchthree.DefaultKeywords()
	rows := make([][]matchthree.Tile, 10)
	for y := range rows {
		rows[y] = make([]matchthree.Tile, 10)
		for x := range rows[y] {
			rows[y][x] = kw[(x+4*y)%len(kw)]
		}
	}
	rows[0][1] = kw[0]
	rows[1][2] = kw[0]

	e, err := matchthree.NewFromRows(rows, matchthree.Options{Rand: rand.New(rand.NewPCG(1, 2))})
	require.NoError(t, err)
	return matchsession.New(e, nil)
}

func TestHandle_Board(t *testing.T) {
	sess := newTestSession(t)

	event, payload := handle(context.Background(), sess, EventBoard, nil)
	assert.Equal(t, EventBoard, event)
	view, ok := payload.(matchsession.View)
	require.True(t, ok)
	assert.Equal(t, 10, view.Width)
}

func TestHandle_Swap(t *testing.T) {
	testCases := []struct {
		name     string
		args     []any
		expected string
		accepted bool
	}{
		{
			name:     "matching swap",
			args:     []any{map[string]any{"x1": 2.0, "y1": 0.0, "x2": 2.0, "y2": 1.0}},
			expected: EventSwapResult,
			accepted: true,
		},
		{
			name:     "swap without match",
			args:     []any{map[string]any{"x1": 5.0, "y1": 5.0, "x2": 6.0, "y2": 5.0}},
			expected: EventSwapResult,
		},
		{
			name:     "not adjacent",
			args:     []any{map[string]any{"x1": 0.0, "y1": 0.0, "x2": 3.0, "y2": 3.0}},
			expected: EventGameError,
		},
		{
			name:     "missing payload",
			expected: EventGameError,
		},
		{
			name:     "wrong payload type",
			args:     []any{"swap please"},
			expected: EventGameError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sess := newTestSession(t)

			event, payload := handle(context.Background(), sess, EventSwap, tc.args)
			require.Equal(t, tc.expected, event)

			switch p := payload.(type) {
			case SwapResponse:
				assert.Equal(t, tc.accepted, p.Result.Accepted)
				assert.Equal(t, sess.View(), p.Board)
			case ErrorResponse:
				assert.NotEmpty(t, p.Message)
			default:
				t.Fatalf("unexpected payload %T", payload)
			}
		})
	}
}

func TestHandle_NewGameResetsScore(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Swap(context.Background(), 2, 0, 2, 1)
	require.NoError(t, err)
	require.NotZero(t, sess.View().Score)

	event, payload := handle(context.Background(), sess, EventNewGame, nil)
	assert.Equal(t, EventBoard, event)
	assert.Zero(t, payload.(matchsession.View).Score)
}

func TestHandle_UnknownEvent(t *testing.T) {
	event, payload := handle(context.Background(), newTestSession(t), "attack", nil)
	assert.Equal(t, EventGameError, event)
	assert.Contains(t, payload.(ErrorResponse).Message, "attack")
}

func TestHealthHandler(t *testing.T) {
	srv := New(config.Default().MatchThree, 1, nil)
	t.Cleanup(srv.Close)

	rec := httptest.NewRecorder()
	srv.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK 0\n", rec.Body.String())
}
