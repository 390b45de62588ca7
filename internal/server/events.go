package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/specialistvlad/lifesim/internal/matchsession"
)

// Event names.
const (
	EventNewGame    = "new_game"
	EventSwap       = "swap"
	EventBoard      = "board"
	EventSwapResult = "swap_result"
	EventGameError  = "game_error"
)

var errBadPayload = errors.New("malformed payload")

// SwapRequest is the payload of a swap event.
type SwapRequest struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// SwapResponse is the payload of a swap_result event.
type SwapResponse struct {
	Result matchsession.Result `json:"result"`
	Board  matchsession.View   `json:"board"`
}

// ErrorResponse is the payload of a game_error event.
type ErrorResponse struct {
	Message string `json:"message"`
}

// handle runs one inbound event against sess and returns the event and
// payload to send back.
func handle(ctx context.Context, sess *matchsession.Session, event string, args []any) (string, any) {
	switch event {
	case EventNewGame:
		return EventBoard, sess.Reset(ctx)
	case EventBoard:
		return EventBoard, sess.View()
	case EventSwap:
		var req SwapRequest
		if err := decodeFirst(args, &req); err != nil {
			return EventGameError, ErrorResponse{Message: err.Error()}
		}
		res, err := sess.Swap(ctx, req.X1, req.Y1, req.X2, req.Y2)
		if err != nil {
			return EventGameError, ErrorResponse{Message: err.Error()}
		}
		return EventSwapResult, SwapResponse{Result: res, Board: sess.View()}
	default:
		return EventGameError, ErrorResponse{Message: fmt.Sprintf("unknown event %q", event)}
	}
}

// decodeFirst converts the first argument of an event, usually a decoded
// JSON object, into v.
func decodeFirst(args []any, v any) error {
	if len(args) == 0 || args[0] == nil {
		return fmt.Errorf("%w: missing argument", errBadPayload)
	}
	raw, err := json.Marshal(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", errBadPayload, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %w", errBadPayload, err)
	}
	return nil
}
