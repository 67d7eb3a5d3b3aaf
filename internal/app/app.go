// Package app wires configuration, the tool catalog, and the bridge
// components into the HTTP handlers.
package app

import (
	"github.com/homeflow-labs/fub-bridge/internal/bridge"
	"github.com/homeflow-labs/fub-bridge/internal/catalog"
	"github.com/homeflow-labs/fub-bridge/internal/common"
	"github.com/homeflow-labs/fub-bridge/internal/config"
	"github.com/homeflow-labs/fub-bridge/internal/handlers"
)

// App holds all application components and dependencies.
type App struct {
	Config  *config.Config
	Logger  *common.Logger
	Catalog *catalog.Catalog

	// HTTP handlers
	SSEHandler      *handlers.SSEHandler
	MessagesHandler *handlers.MessagesHandler
	HealthHandler   *handlers.HealthHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog.Builtin(),
	}

	a.initHandlers()

	logger.Info().
		Int("tools", a.Catalog.Len()).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	compiler := bridge.NewCompiler(a.Config.Upstream.BaseURL, bridge.Credentials{
		APIKey:    a.Config.Upstream.APIKey,
		System:    a.Config.Upstream.System,
		SystemKey: a.Config.Upstream.SystemKey,
	})
	invoker := bridge.NewInvoker(a.Logger)

	a.SSEHandler = handlers.NewSSEHandler(a.Logger, a.Catalog)
	a.MessagesHandler = handlers.NewMessagesHandler(a.Logger, a.Catalog, compiler, invoker)
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
