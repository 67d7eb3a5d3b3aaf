package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/homeflow-labs/fub-bridge/internal/catalog"
	"github.com/homeflow-labs/fub-bridge/internal/common"
)

// defaultKeepAliveInterval is how often a comment frame is written on an idle
// discovery connection so intermediaries do not reap it.
const defaultKeepAliveInterval = 30 * time.Second

// SSEHandler serves the discovery route: the full tool catalog as a single
// event-stream frame, after which the connection is held open until the
// client disconnects. No further events are ever sent.
type SSEHandler struct {
	logger    *common.Logger
	catalog   *catalog.Catalog
	keepAlive time.Duration
}

// NewSSEHandler creates a new discovery handler for the given catalog.
func NewSSEHandler(logger *common.Logger, cat *catalog.Catalog) *SSEHandler {
	return &SSEHandler{
		logger:    logger,
		catalog:   cat,
		keepAlive: defaultKeepAliveInterval,
	}
}

// ServeHTTP handles GET /sse.
func (h *SSEHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(h.catalog.Tools())
	if err != nil {
		http.Error(w, fmt.Sprintf("Error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "data: %s\n\n", payload)
	flusher.Flush()

	h.logger.Debug().Int("tools", h.catalog.Len()).Str("remote", r.RemoteAddr).Msg("discovery stream opened")

	// Hold the connection open. Comment frames are not events; they only
	// keep idle-connection reapers between client and bridge at bay.
	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Debug().Str("remote", r.RemoteAddr).Msg("discovery stream closed")
			return
		case <-ticker.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
