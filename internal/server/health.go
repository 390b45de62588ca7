package server

import (
	"fmt"
	"net/http"
)

// healthHandler answers health checks with the number of players.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK %d\n", s.Sessions())
}
