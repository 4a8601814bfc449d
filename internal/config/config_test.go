package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points the config lookup at an empty temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{
		"LANES_STORE", "LANES_DB_PATH", "LANES_REDIS_ADDR", "LANES_REDIS_DB",
		"OPENAI_API_KEY", "LANES_AI_BASE_URL", "LANES_AI_MODEL", "LANES_RELAY_ADDR",
		"LANES_THEME_FILE",
	} {
		t.Setenv(key, "")
	}
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "lanes")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.Storage.Backend != StoreSQLite {
		t.Errorf("Storage.Backend = %s, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Storage.Key != DefaultStateKey {
		t.Errorf("Storage.Key = %s, want %s", cfg.Storage.Key, DefaultStateKey)
	}
	if cfg.AI.BaseURL != DefaultAIBaseURL {
		t.Errorf("AI.BaseURL = %s, want %s", cfg.AI.BaseURL, DefaultAIBaseURL)
	}
	if cfg.Relay.Addr != DefaultRelayAddr {
		t.Errorf("Relay.Addr = %s, want %s", cfg.Relay.Addr, DefaultRelayAddr)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("Expected theme defaults to be applied")
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `storage:
  backend: redis
  redis_addr: "10.0.0.5:6379"
  key: "my-board"
ai:
  model: "gpt-4o"
  max_tokens: 250
relay:
  addr: ":9000"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Storage.Backend != StoreRedis {
		t.Errorf("Storage.Backend = %s, want redis", cfg.Storage.Backend)
	}
	if cfg.Storage.RedisAddr != "10.0.0.5:6379" {
		t.Errorf("Storage.RedisAddr = %s", cfg.Storage.RedisAddr)
	}
	if cfg.Storage.Key != "my-board" {
		t.Errorf("Storage.Key = %s, want my-board", cfg.Storage.Key)
	}
	if cfg.AI.Model != "gpt-4o" || cfg.AI.MaxTokens != 250 {
		t.Errorf("AI = %+v", cfg.AI)
	}
	if cfg.Relay.Addr != ":9000" {
		t.Errorf("Relay.Addr = %s, want :9000", cfg.Relay.Addr)
	}

	// Unspecified values should use defaults
	if cfg.Storage.RedisPrefix != DefaultRedisPrefix {
		t.Errorf("Storage.RedisPrefix = %s, want default", cfg.Storage.RedisPrefix)
	}
	if cfg.AI.TimeoutSeconds != DefaultAITimeout {
		t.Errorf("AI.TimeoutSeconds = %d, want default", cfg.AI.TimeoutSeconds)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "storage: [unterminated")

	if _, err := Load(); err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `storage:
  backend: sqlite
ai:
  api_key: "from-file"
`)

	t.Setenv("LANES_STORE", "memory")
	t.Setenv("LANES_DB_PATH", "/tmp/other.db")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("LANES_AI_BASE_URL", "http://localhost:1234/v1")
	t.Setenv("LANES_RELAY_ADDR", ":7000")
	t.Setenv("LANES_REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Storage.Backend != StoreMemory {
		t.Errorf("Storage.Backend = %s, want memory", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/tmp/other.db" {
		t.Errorf("Storage.Path = %s", cfg.Storage.Path)
	}
	if cfg.Storage.RedisDB != 3 {
		t.Errorf("Storage.RedisDB = %d, want 3", cfg.Storage.RedisDB)
	}
	if cfg.AI.APIKey != "sk-env" {
		t.Errorf("AI.APIKey = %s, want sk-env", cfg.AI.APIKey)
	}
	if cfg.AI.BaseURL != "http://localhost:1234/v1" {
		t.Errorf("AI.BaseURL = %s", cfg.AI.BaseURL)
	}
	if cfg.Relay.Addr != ":7000" {
		t.Errorf("Relay.Addr = %s", cfg.Relay.Addr)
	}
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.Storage.Backend = StoreRedis
	cfg.AI.Model = "custom-model"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(dir, "lanes", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if cfg2.Storage.Backend != StoreRedis {
		t.Errorf("Reloaded backend = %s, want redis", cfg2.Storage.Backend)
	}
	if cfg2.AI.Model != "custom-model" {
		t.Errorf("Reloaded model = %s, want custom-model", cfg2.AI.Model)
	}
}

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	content := []byte(`theme:
  accent: "#FF0000"
  lanes:
    blue: "#0000FF"
`)
	if err := os.WriteFile(themeFile, content, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("LANES_THEME_FILE", themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if got := cfg.ColorScheme.Lane("blue"); got != "#0000FF" {
		t.Errorf("Expected blue lane to be #0000FF, got %s", got)
	}

	// Other colors still have defaults
	if cfg.ColorScheme.Error == "" {
		t.Error("Expected error color to have default value")
	}
	if cfg.ColorScheme.Lane("green") == "" {
		t.Error("Expected green lane to have default value")
	}
}

func TestMonochromePreset(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `theme:
  preset: monochrome
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != "#FFFFFF" {
		t.Errorf("Expected monochrome accent, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Lane("red") != cfg.ColorScheme.Lane("blue") {
		t.Error("Expected monochrome lanes to share one color")
	}
}
