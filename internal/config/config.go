package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned when no usable configuration is found
var ErrConfigNotFound = errors.New("configuration not found")

// DefaultTimeout is the API timeout in seconds used when none is configured
const DefaultTimeout = 30

// Config holds the GitLab connection settings. It is built once at startup
// and passed explicitly into the command layer.
type Config struct {
	URL     string `mapstructure:"url"`
	Token   string `mapstructure:"token"`
	Timeout int    `mapstructure:"timeout"` // timeout in seconds
}

// Load loads configuration from file and environment variables.
// File: ~/.config/gitlab-cli/config.yaml (or ./config.yaml).
// Environment: GITLAB_CLI_URL (or GITLAB_URL), GITLAB_CLI_TOKEN
// (or GITLAB_PRIVATE_TOKEN), GITLAB_CLI_TIMEOUT.
// Returns ErrConfigNotFound if the URL or token is missing.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(ConfigDir())
	v.AddConfigPath(".") // Also check current directory

	v.SetEnvPrefix("GITLAB_CLI")
	v.AutomaticEnv()

	// Honor the classic GitLab variable names as fallbacks
	if err := v.BindEnv("url", "GITLAB_CLI_URL", "GITLAB_URL"); err != nil {
		return nil, fmt.Errorf("error binding url environment: %w", err)
	}
	if err := v.BindEnv("token", "GITLAB_CLI_TOKEN", "GITLAB_PRIVATE_TOKEN"); err != nil {
		return nil, fmt.Errorf("error binding token environment: %w", err)
	}

	v.SetDefault("timeout", DefaultTimeout)

	// Try to read config file (it's okay if it doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate required fields
	if cfg.URL == "" {
		return nil, ErrConfigNotFound
	}
	if cfg.Token == "" {
		return nil, ErrConfigNotFound
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &cfg, nil
}

// GetTimeout returns the GitLab API timeout as time.Duration
func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ConfigDir returns the directory holding the config file
func ConfigDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "gitlab-cli")
}

// ConfigPath returns the full path of the config file
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// EnsureConfigDir ensures the config directory exists
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir(), 0750)
}
