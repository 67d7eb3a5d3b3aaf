package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/homeflow-labs/fub-bridge/internal/bridge"
	"github.com/homeflow-labs/fub-bridge/internal/catalog"
	"github.com/homeflow-labs/fub-bridge/internal/common"
	"github.com/homeflow-labs/fub-bridge/internal/config"
	"github.com/homeflow-labs/fub-bridge/internal/mcptools"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for MCP desktop clients)")
	configFile := flag.String("config", "fub-bridge.toml", "Path to config file")
	showVersion := flag.Bool("version", false, "Print version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("fub-mcp version %s\n", config.GetVersion())
		os.Exit(0)
	}

	path := *configFile
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = "" // defaults + env only
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if issues := cfg.Validate(); len(issues) > 0 {
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "configuration error: %s\n", issue)
		}
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	compiler := bridge.NewCompiler(cfg.Upstream.BaseURL, bridge.Credentials{
		APIKey:    cfg.Upstream.APIKey,
		System:    cfg.Upstream.System,
		SystemKey: cfg.Upstream.SystemKey,
	})
	invoker := bridge.NewInvoker(logger)

	mcpServer := server.NewMCPServer(
		"fub-mcp",
		config.GetVersion(),
		server.WithToolCapabilities(true),
	)

	count := mcptools.Register(mcpServer, catalog.Builtin(), compiler, invoker)
	logger.Info().Int("tools", count).Str("upstream", cfg.Upstream.BaseURL).Msg("MCP tools registered")

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Streamable HTTP transport — listens on the configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on %s\n", addr)

	if err := httpServer.Start(addr); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
