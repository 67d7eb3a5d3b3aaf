package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/homeflow-labs/fub-bridge/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig         `toml:"server"`
	Upstream UpstreamConfig       `toml:"upstream"`
	Logging  common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// UpstreamConfig contains the Follow Up Boss API connection settings.
// System and SystemKey are optional; when both are set, X-System and
// X-System-Key headers are attached to every outbound request.
type UpstreamConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	System    string `toml:"system"`
	SystemKey string `toml:"system_key"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies FUB_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("FUB_BRIDGE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("FUB_BRIDGE_HOST"); host != "" {
		config.Server.Host = host
	}
	if url := os.Getenv("FUB_BASE_URL"); url != "" {
		config.Upstream.BaseURL = url
	}
	if key := os.Getenv("FUB_API_KEY"); key != "" {
		config.Upstream.APIKey = key
	}
	if system := os.Getenv("FUB_SYSTEM"); system != "" {
		config.Upstream.System = system
	}
	if systemKey := os.Getenv("FUB_SYSTEM_KEY"); systemKey != "" {
		config.Upstream.SystemKey = systemKey
	}
	if level := os.Getenv("FUB_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks mandatory configuration and returns a list of issues.
// An empty list means the config is usable.
func (c *Config) Validate() []string {
	var issues []string
	if c.Upstream.APIKey == "" {
		issues = append(issues, "upstream.api_key is required (or set FUB_API_KEY)")
	}
	if c.Upstream.BaseURL == "" {
		issues = append(issues, "upstream.base_url must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if (c.Upstream.System == "") != (c.Upstream.SystemKey == "") {
		issues = append(issues, "upstream.system and upstream.system_key must be set together or not at all")
	}
	return issues
}
