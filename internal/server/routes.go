package server

import (
	"net/http"

	"github.com/homeflow-labs/fub-bridge/internal/handlers"
)

// setupRoutes configures the two bridge routes, the health check, and the
// catch-all hint.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/sse", s.app.SSEHandler)
	mux.Handle("/messages", s.app.MessagesHandler)
	mux.Handle("/healthz", s.app.HealthHandler)

	// Everything else gets a hint at the two real routes.
	mux.HandleFunc("/", s.handleFallback)

	return mux
}

// handleFallback answers any unrecognized route with a fixed status hint.
func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "FUB bridge is running. Use GET /sse for tool discovery and POST /messages for tool invocation.",
	})
}
