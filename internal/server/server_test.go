package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/specialistvlad/lifesim/internal/config"
	"github.com/specialistvlad/lifesim/internal/matchsession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const waitTimeout = 10 * time.Second

func receive(t *testing.T, ch <-chan any, v any) {
	t.Helper()
	select {
	case data := <-ch:
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, v))
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for event")
	}
}

func TestServer_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a socket.io server")
	}

	settings := config.Default().MatchThree
	settings.Width, settings.Height = 6, 5
	srv := New(settings, 7, nil)
	t.Cleanup(srv.Close)

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", srv.Handler())
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	opts := socket.DefaultOptions()
	opts.SetTransports(types.NewSet(transports.WebSocket))
	manager := socket.NewManager(ts.URL, opts)
	client := manager.Socket("/", opts)

	boards := make(chan any, 4)
	errs := make(chan any, 4)
	client.On(types.EventName(EventBoard), func(data ...any) {
		if len(data) > 0 {
			boards <- data[0]
		}
	})
	client.On(types.EventName(EventGameError), func(data ...any) {
		if len(data) > 0 {
			errs <- data[0]
		}
	})
	client.Connect()
	t.Cleanup(func() { client.Disconnect() })

	var view matchsession.View
	receive(t, boards, &view)
	assert.Equal(t, 6, view.Width)
	assert.Equal(t, 5, view.Height)
	assert.Len(t, view.Rows, 5)
	assert.Equal(t, 1, srv.Sessions())

	client.Emit(EventSwap, map[string]any{"x1": 0, "y1": 0, "x2": 4, "y2": 4})
	var gameErr ErrorResponse
	receive(t, errs, &gameErr)
	assert.Contains(t, gameErr.Message, "not adjacent")

	client.Emit(EventBoard)
	var again matchsession.View
	receive(t, boards, &again)
	assert.Equal(t, view, again)

	client.Disconnect()
	assert.Eventually(t, func() bool { return srv.Sessions() == 0 }, waitTimeout, 20*time.Millisecond)
}
