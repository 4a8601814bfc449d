// Package config loads the lanes configuration file and applies environment overrides
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/thenoetrevino/lanes/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	AI          AIConfig           `yaml:"ai"`
	Relay       RelayConfig        `yaml:"relay"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects and configures the key-value store holding the board
type StorageConfig struct {
	Backend     string `yaml:"backend"` // sqlite, redis or memory
	Path        string `yaml:"path"`    // SQLite database file
	RedisAddr   string `yaml:"redis_addr"`
	RedisDB     int    `yaml:"redis_db"`
	RedisPrefix string `yaml:"redis_prefix"`
	Key         string `yaml:"key"` // Key the board document is stored under
}

// AIConfig configures the LLM client
type AIConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	MaxTokens      int    `yaml:"max_tokens"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// RelayConfig configures the AI relay HTTP server
type RelayConfig struct {
	Addr string `yaml:"addr"`
}

// Defaults
const (
	DefaultStateKey     = "kanban-state"
	DefaultAIBaseURL    = "https://api.openai.com/v1"
	DefaultAIModel      = "gpt-4o-mini"
	DefaultMaxTokens    = 1000
	DefaultAITimeout    = 60
	DefaultRelayAddr    = "127.0.0.1:8787"
	DefaultRedisAddr    = "127.0.0.1:6379"
	DefaultRedisPrefix  = "lanes:"
	defaultDatabaseFile = "lanes.db"
)

// Default returns a config with every value set to its default
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from LANES_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("LANES_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(readErr):
			return nil, readErr
		}
	}

	// Load theme from LANES_THEME_FILE if set
	loadThemeFile(&config)

	config.applyEnv()

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o600)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "lanes", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "lanes", "config.yaml"), nil
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("LANES_STORE"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("LANES_DB_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("LANES_REDIS_ADDR"); v != "" {
		c.Storage.RedisAddr = v
	}
	if v := os.Getenv("LANES_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Storage.RedisDB = n
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.AI.APIKey = v
	}
	if v := os.Getenv("LANES_AI_BASE_URL"); v != "" {
		c.AI.BaseURL = v
	}
	if v := os.Getenv("LANES_AI_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("LANES_RELAY_ADDR"); v != "" {
		c.Relay.Addr = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = StoreSQLite
	}
	if c.Storage.Path == "" {
		c.Storage.Path = DefaultDatabasePath()
	}
	if c.Storage.RedisAddr == "" {
		c.Storage.RedisAddr = DefaultRedisAddr
	}
	if c.Storage.RedisPrefix == "" {
		c.Storage.RedisPrefix = DefaultRedisPrefix
	}
	if c.Storage.Key == "" {
		c.Storage.Key = DefaultStateKey
	}

	if c.AI.BaseURL == "" {
		c.AI.BaseURL = DefaultAIBaseURL
	}
	if c.AI.Model == "" {
		c.AI.Model = DefaultAIModel
	}
	if c.AI.MaxTokens <= 0 {
		c.AI.MaxTokens = DefaultMaxTokens
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = DefaultAITimeout
	}

	if c.Relay.Addr == "" {
		c.Relay.Addr = DefaultRelayAddr
	}

	c.ColorScheme.ApplyDefaults()
}

// DefaultDatabasePath returns ~/.lanes/lanes.db, or a relative path when the
// home directory cannot be determined
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDatabaseFile
	}
	return filepath.Join(home, ".lanes", defaultDatabaseFile)
}
