package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/specialistvlad/lifesim/internal/config"
	"github.com/specialistvlad/lifesim/internal/ctxlog"
	"github.com/specialistvlad/lifesim/internal/matchsession"
	"github.com/specialistvlad/lifesim/internal/matchthree"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

const shutdownTimeout = 5 * time.Second

// Server hosts match-3 sessions for socket.io clients.
type Server struct {
	io       *socket.Server
	handler  http.Handler
	settings config.MatchThree
	seed     int64
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*matchsession.Session
	dealt    uint64
}

// New creates a server dealing boards from settings. A non-zero seed makes
// the sequence of dealt boards reproducible.
func New(settings config.MatchThree, seed int64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	opts := socket.DefaultServerOptions()
	opts.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	s := &Server{
		io:       socket.NewServer(nil, nil),
		settings: settings,
		seed:     seed,
		logger:   logger.With("component", "match3-server"),
		sessions: make(map[string]*matchsession.Session),
	}
	s.handler = s.io.ServeHandler(opts)
	s.io.On("connection", func(clients ...any) {
		client, ok := clients[0].(*socket.Socket)
		if !ok {
			return
		}
		s.onConnect(client)
	})
	return s
}

// Handler returns the socket.io endpoint, to be mounted at /socket.io/.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Sessions returns the number of connected players.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	logger := ctxlog.FromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.Handler())
	mux.HandleFunc("/health", s.healthHandler)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Match-3 server starting.", "address", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("match-3 server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down match-3 server...")
	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("match-3 server shutdown: %w", err)
	}
	logger.Debug("Match-3 server shut down gracefully.")
	return nil
}

// Close disconnects every client.
func (s *Server) Close() {
	s.io.Close(nil)
}

func (s *Server) onConnect(client *socket.Socket) {
	id := string(client.Id())
	logger := s.logger.With("sid", id)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	sess, err := s.newSession(logger)
	if err != nil {
		logger.Error("Cannot deal a board.", "error", err)
		s.emit(ctx, client, EventGameError, ErrorResponse{Message: err.Error()})
		client.Disconnect(true)
		return
	}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
	logger.Info("Player connected.")

	client.On(EventNewGame, s.listener(ctx, client, sess, EventNewGame))
	client.On(EventSwap, s.listener(ctx, client, sess, EventSwap))
	client.On(EventBoard, s.listener(ctx, client, sess, EventBoard))
	client.On("disconnect", func(reason ...any) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		logger.Info("Player disconnected.", "reason", reason)
	})

	s.emit(ctx, client, EventBoard, sess.View())
}

// listener answers event on behalf of sess.
func (s *Server) listener(ctx context.Context, client *socket.Socket, sess *matchsession.Session, event string) func(...any) {
	return func(args ...any) {
		out, payload := handle(ctx, sess, event, args)
		s.emit(ctx, client, out, payload)
	}
}

func (s *Server) emit(ctx context.Context, client *socket.Socket, event string, payload any) {
	if err := client.Emit(event, payload); err != nil {
		ctxlog.FromContext(ctx).Warn("Emit failed.", "event", event, "error", err)
	}
}

func (s *Server) newSession(logger *slog.Logger) (*matchsession.Session, error) {
	s.mu.Lock()
	s.dealt++
	n := s.dealt
	s.mu.Unlock()

	var r *rand.Rand
	if s.seed != 0 {
		r = rand.New(rand.NewPCG(uint64(s.seed), n))
	}
	engine, err := matchthree.New(matchthree.Options{
		Width:    s.settings.Width,
		Height:   s.settings.Height,
		Keywords: s.settings.Tiles(),
		Rand:     r,
	})
	if err != nil {
		return nil, err
	}
	return matchsession.New(engine, logger), nil
}
