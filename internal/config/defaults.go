package config

import "github.com/homeflow-labs/fub-bridge/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8000,
			Host: "0.0.0.0",
		},
		Upstream: UpstreamConfig{
			BaseURL: "https://api.followupboss.com/v1",
		},
		Logging: common.LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
