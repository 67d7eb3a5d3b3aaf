package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/homeflow-labs/fub-bridge/internal/bridge"
	"github.com/homeflow-labs/fub-bridge/internal/catalog"
	"github.com/homeflow-labs/fub-bridge/internal/common"
)

// listToolsName is the reserved tool name that returns the catalog instead of
// invoking an upstream endpoint.
const listToolsName = "list_tools"

// invokeEnvelope is the accepted request body for POST /messages.
type invokeEnvelope struct {
	ListTools   bool         `json:"list_tools"`
	ToolRequest *toolRequest `json:"tool_request"`
}

// toolRequest names one tool and carries its invocation parameters.
type toolRequest struct {
	Name       string      `json:"name"`
	Parameters *bridge.Bag `json:"parameters"`
}

// toolResponse is the uniform envelope returned for every completed
// invocation. The upstream's status is data here, not this server's status.
type toolResponse struct {
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	Data       any    `json:"data"`
}

// MessagesHandler serves the invocation route: list_tools requests answer
// from the catalog, tool requests are compiled, executed upstream, and
// relayed back inside the tool_response envelope.
type MessagesHandler struct {
	logger   *common.Logger
	catalog  *catalog.Catalog
	compiler *bridge.Compiler
	invoker  *bridge.Invoker
}

// NewMessagesHandler creates a new invocation handler.
func NewMessagesHandler(logger *common.Logger, cat *catalog.Catalog, compiler *bridge.Compiler, invoker *bridge.Invoker) *MessagesHandler {
	return &MessagesHandler{
		logger:   logger,
		catalog:  cat,
		compiler: compiler,
		invoker:  invoker,
	}
}

// ServeHTTP handles POST /messages.
func (h *MessagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var env invokeEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		h.writeMalformed(w)
		return
	}

	if env.ListTools || (env.ToolRequest != nil && env.ToolRequest.Name == listToolsName) {
		WriteJSON(w, http.StatusOK, map[string]any{
			"tools": h.catalog.Tools(),
		})
		return
	}

	if env.ToolRequest == nil || env.ToolRequest.Name == "" {
		h.writeMalformed(w)
		return
	}

	h.invoke(w, r, env.ToolRequest)
}

// invoke runs one tool request through compile, upstream execution and
// normalization. Unknown names are client errors; transport failures are the
// only path to a 500.
func (h *MessagesHandler) invoke(w http.ResponseWriter, r *http.Request, tr *toolRequest) {
	tool, ok := h.catalog.Lookup(tr.Name)
	if !ok {
		h.logger.Warn().Str("tool", tr.Name).Msg("unknown tool requested")
		http.Error(w, fmt.Sprintf("Unknown tool: %s", tr.Name), http.StatusBadRequest)
		return
	}

	params := tr.Parameters
	if params == nil {
		params = bridge.NewBag()
	}

	compiled, err := h.compiler.Compile(tool, params)
	if err != nil {
		h.logger.Error().Str("tool", tr.Name).Str("error", err.Error()).Msg("compile failed")
		http.Error(w, fmt.Sprintf("Error: %v", err), http.StatusInternalServerError)
		return
	}

	result, err := h.invoker.Do(r.Context(), compiled)
	if err != nil {
		h.logger.Error().Str("tool", tr.Name).Str("error", err.Error()).Msg("invocation failed")
		http.Error(w, fmt.Sprintf("Error: %v", err), http.StatusInternalServerError)
		return
	}

	h.logger.Info().
		Str("tool", tr.Name).
		Str("method", compiled.Method).
		Int("upstream_status", result.StatusCode).
		Msg("tool invoked")

	WriteJSON(w, http.StatusOK, map[string]any{
		"tool_response": toolResponse{
			Status:     result.StatusCode,
			StatusText: result.StatusText,
			Data:       bridge.Normalize(result),
		},
	})
}

// writeMalformed reports a request body that matches neither accepted shape.
func (h *MessagesHandler) writeMalformed(w http.ResponseWriter) {
	http.Error(w, "Malformed request: body must contain list_tools or tool_request", http.StatusBadRequest)
}
