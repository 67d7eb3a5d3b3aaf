package mcptools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/homeflow-labs/fub-bridge/internal/bridge"
	"github.com/homeflow-labs/fub-bridge/internal/catalog"
	"github.com/homeflow-labs/fub-bridge/internal/common"
)

func TestBuildTool_CoversEveryCatalogEntry(t *testing.T) {
	for _, ct := range catalog.Builtin().Tools() {
		mcpTool := BuildTool(ct)
		if mcpTool.Name != ct.Name {
			t.Errorf("expected tool name %q, got %q", ct.Name, mcpTool.Name)
		}
		if mcpTool.Description != ct.Description {
			t.Errorf("%s: description mismatch", ct.Name)
		}
		for _, p := range ct.Params {
			if _, ok := mcpTool.InputSchema.Properties[p.Name]; !ok {
				t.Errorf("%s: parameter %q missing from schema", ct.Name, p.Name)
			}
		}
	}
}

func TestBuildTool_RequiredParams(t *testing.T) {
	ct, ok := catalog.Builtin().Lookup("get_person")
	if !ok {
		t.Fatal("get_person not in catalog")
	}

	mcpTool := BuildTool(ct)
	found := false
	for _, name := range mcpTool.InputSchema.Required {
		if name == "id" {
			found = true
		}
	}
	if !found {
		t.Error("expected id to be required in the schema")
	}
}

func TestRegister_CountMatchesCatalog(t *testing.T) {
	s := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(true))
	compiler := bridge.NewCompiler("http://unused", bridge.Credentials{APIKey: "k"})
	invoker := bridge.NewInvoker(common.NewSilentLogger())

	count := Register(s, catalog.Builtin(), compiler, invoker)
	if count != catalog.Builtin().Len() {
		t.Errorf("expected %d registered tools, got %d", catalog.Builtin().Len(), count)
	}
}

func TestToolHandler_InvokesUpstream(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Write([]byte(`{"id":42}`))
	}))
	defer upstream.Close()

	ct, _ := catalog.Builtin().Lookup("get_person")
	compiler := bridge.NewCompiler(upstream.URL, bridge.Credentials{APIKey: "k"})
	invoker := bridge.NewInvoker(common.NewSilentLogger())
	handler := ToolHandler(ct, compiler, invoker)

	var req mcp.CallToolRequest
	req.Params.Name = ct.Name
	req.Params.Arguments = map[string]any{"id": 42}

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success result, got error: %v", result.Content)
	}
	if gotPath != "/people/42" {
		t.Errorf("expected upstream path /people/42, got %s", gotPath)
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	var payload struct {
		Status int `json:"status"`
		Data   map[string]any
	}
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if payload.Status != 200 {
		t.Errorf("expected status 200 in payload, got %d", payload.Status)
	}
}

func TestToolHandler_TransportErrorIsErrorResult(t *testing.T) {
	ct, _ := catalog.Builtin().Lookup("list_people")
	compiler := bridge.NewCompiler("http://127.0.0.1:1", bridge.Credentials{APIKey: "k"})
	invoker := bridge.NewInvoker(common.NewSilentLogger())
	handler := ToolHandler(ct, compiler, invoker)

	var req mcp.CallToolRequest
	req.Params.Name = ct.Name

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler must report failures in the result, got %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for unreachable upstream")
	}
	text, _ := result.Content[0].(mcp.TextContent)
	if !strings.Contains(text.Text, "upstream request failed") {
		t.Errorf("expected transport failure description, got %q", text.Text)
	}
}
