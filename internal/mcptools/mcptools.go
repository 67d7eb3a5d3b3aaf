// Package mcptools exposes the bridge's tool catalog over the Model Context
// Protocol, for MCP-native clients that speak the real protocol instead of
// the bridge's discovery/invocation routes.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/homeflow-labs/fub-bridge/internal/bridge"
	"github.com/homeflow-labs/fub-bridge/internal/catalog"
)

// BuildTool converts a catalog tool into an mcp.Tool with the appropriate schema.
func BuildTool(t catalog.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		if p.In == "path" || p.In == "query" || p.In == "body" {
			opts = append(opts, buildParamOption(p))
		}
	}
	return mcp.NewTool(t.Name, opts...)
}

// buildParamOption maps a catalog.Param to the appropriate mcp-go tool option.
func buildParamOption(p catalog.Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case "number":
		return mcp.WithNumber(p.Name, opts...)
	case "boolean":
		return mcp.WithBoolean(p.Name, opts...)
	case "array":
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(p.Name, opts...)
	case "object":
		return mcp.WithObject(p.Name, opts...)
	default:
		return mcp.WithString(p.Name, opts...)
	}
}

// ToolHandler creates a handler that routes an MCP tool call through the
// request compiler and upstream invoker, returning the normalized envelope
// as text content.
func ToolHandler(t catalog.Tool, compiler *bridge.Compiler, invoker *bridge.Invoker) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bag := bridge.NewBag()
		args := r.GetArguments()
		for _, p := range t.Params {
			if v, ok := args[p.Name]; ok && v != nil {
				bag.Set(p.Name, v)
			}
		}

		compiled, err := compiler.Compile(t, bag)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		result, err := invoker.Do(ctx, compiled)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		payload, err := json.Marshal(map[string]any{
			"status":     result.StatusCode,
			"statusText": result.StatusText,
			"data":       bridge.Normalize(result),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent(string(payload))}}, nil
	}
}

// Register registers every catalog tool on the MCP server.
func Register(s *server.MCPServer, cat *catalog.Catalog, compiler *bridge.Compiler, invoker *bridge.Invoker) int {
	tools := cat.Tools()
	for _, t := range tools {
		s.AddTool(BuildTool(t), ToolHandler(t, compiler, invoker))
	}
	return len(tools)
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
