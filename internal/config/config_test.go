package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Upstream.BaseURL != "https://api.followupboss.com/v1" {
		t.Errorf("unexpected default base URL: %s", cfg.Upstream.BaseURL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fub-bridge.toml")
	content := `
[server]
port = 9090

[upstream]
api_key = "file-key"
system = "Homeflow"
system_key = "sys-key"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected file port 9090, got %d", cfg.Server.Port)
	}
	// Untouched sections keep their defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host preserved, got %s", cfg.Server.Host)
	}
	if cfg.Upstream.BaseURL != "https://api.followupboss.com/v1" {
		t.Errorf("expected default base URL preserved, got %s", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.APIKey != "file-key" {
		t.Errorf("expected api key from file, got %q", cfg.Upstream.APIKey)
	}
	if cfg.Upstream.System != "Homeflow" || cfg.Upstream.SystemKey != "sys-key" {
		t.Errorf("expected system credentials from file, got %q/%q", cfg.Upstream.System, cfg.Upstream.SystemKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "base.toml")
	second := filepath.Join(dir, "local.toml")

	os.WriteFile(first, []byte("[server]\nport = 9001\n[upstream]\napi_key = \"base\"\n"), 0644)
	os.WriteFile(second, []byte("[server]\nport = 9002\n"), 0644)

	cfg, err := LoadFromFiles(first, second)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 9002 {
		t.Errorf("expected later file to win, got port %d", cfg.Server.Port)
	}
	if cfg.Upstream.APIKey != "base" {
		t.Errorf("expected earlier file's key preserved, got %q", cfg.Upstream.APIKey)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FUB_BRIDGE_PORT", "7070")
	t.Setenv("FUB_API_KEY", "env-key")
	t.Setenv("FUB_BASE_URL", "https://example.test/v1")
	t.Setenv("FUB_LOG_LEVEL", "warn")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("expected env port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Upstream.APIKey != "env-key" {
		t.Errorf("expected env api key, got %q", cfg.Upstream.APIKey)
	}
	if cfg.Upstream.BaseURL != "https://example.test/v1" {
		t.Errorf("expected env base URL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env log level, got %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fub-bridge.toml")
	os.WriteFile(path, []byte("[upstream]\napi_key = \"file-key\"\n"), 0644)

	t.Setenv("FUB_API_KEY", "env-key")

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Upstream.APIKey != "env-key" {
		t.Errorf("expected env to override file, got %q", cfg.Upstream.APIKey)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 9999, "127.0.0.1")
	if cfg.Server.Port != 9999 {
		t.Errorf("expected flag port, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("expected flag host, got %s", cfg.Server.Host)
	}

	// Zero values leave the config alone.
	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 9999 || cfg.Server.Host != "127.0.0.1" {
		t.Error("expected zero flag values to be ignored")
	}
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Upstream.APIKey = "k"
	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("expected valid config, got issues: %v", issues)
	}

	cfg.Upstream.APIKey = ""
	issues := (&Config{Server: cfg.Server, Upstream: cfg.Upstream, Logging: cfg.Logging}).Validate()
	if len(issues) == 0 {
		t.Fatal("expected issue for missing api key")
	}
	if !strings.Contains(issues[0], "api_key") {
		t.Errorf("expected api_key issue, got %q", issues[0])
	}
}

func TestValidate_SystemCredentialsPaired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Upstream.APIKey = "k"
	cfg.Upstream.System = "Homeflow"

	issues := cfg.Validate()
	found := false
	for _, issue := range issues {
		if strings.Contains(issue, "system_key") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected paired-credentials issue, got %v", issues)
	}
}

func TestValidate_PortRange(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Upstream.APIKey = "k"
	cfg.Server.Port = 70000

	issues := cfg.Validate()
	found := false
	for _, issue := range issues {
		if strings.Contains(issue, "port") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected port range issue, got %v", issues)
	}
}
