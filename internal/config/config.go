package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string          `yaml:"database_path"`
	LogPath      string          `yaml:"log_path"`
	Auth         AuthConfig      `yaml:"auth"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
	KeyMappings  KeyMappings     `yaml:"key_mappings"`
	ColorScheme  ColorScheme     `yaml:"theme"`
}

// AuthConfig holds session token settings
type AuthConfig struct {
	// Secret verifies session tokens. APPLYBOARD_SECRET overrides it.
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"token_ttl"`
}

// RateLimitConfig configures the client-side mutation limiter
type RateLimitConfig struct {
	MaxRequests int           `yaml:"max_requests"`
	Window      time.Duration `yaml:"window"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from APPLYBOARD_THEME_FILE
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("APPLYBOARD_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv applies environment overrides
func applyEnv(config *Config) {
	if db := os.Getenv("APPLYBOARD_DB"); db != "" {
		config.DatabasePath = db
	}
	if secret := os.Getenv("APPLYBOARD_SECRET"); secret != "" {
		config.Auth.Secret = secret
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()
	applyEnv(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// holds the token secret
	return os.WriteFile(configPath, data, 0o600)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "applyboard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "applyboard", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 30 * 24 * time.Hour
	}
	if c.RateLimit.MaxRequests <= 0 {
		c.RateLimit.MaxRequests = 10
	}
	if c.RateLimit.Window <= 0 {
		c.RateLimit.Window = time.Minute
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
