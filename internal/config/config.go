package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/user/scryfall-mcp/internal/scryfall"
)

// Config represents the application configuration.
type Config struct {
	APIBase        string   `toml:"api_base"`
	UserAgent      string   `toml:"user_agent"`
	MaxPages       int      `toml:"max_pages"`
	RequestTimeout Duration `toml:"request_timeout"`
	LogLevel       string   `toml:"log_level"`
}

// Duration is a time.Duration that decodes from a TOML string like "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string such as "30s".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBase:   scryfall.DefaultBaseURL,
		UserAgent: scryfall.DefaultUserAgent,
		LogLevel:  "info",
	}
}

// Scryfall returns the client settings carried by c.
func (c Config) Scryfall() scryfall.Config {
	return scryfall.Config{
		BaseURL:   c.APIBase,
		UserAgent: c.UserAgent,
		MaxPages:  c.MaxPages,
		Timeout:   c.RequestTimeout.Duration,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME, falling back to ~/.config.
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file. SCRYFALL_MCP_CONFIG
// takes precedence over the XDG location.
func GetConfigFilePath() string {
	if p := os.Getenv("SCRYFALL_MCP_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(GetXDGConfigHome(), "scryfall-mcp", "config.toml")
}

// Load resolves the configuration from, in increasing precedence, the
// defaults, the TOML config file, a .env file in the working directory and
// the process environment. Missing files are skipped.
func Load() (Config, error) {
	cfg := Default()

	if err := loadFile(GetConfigFilePath(), &cfg); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxPages < 0 {
		return Config{}, fmt.Errorf("config: max_pages must not be negative, got %d", cfg.MaxPages)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SCRYFALL_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("SCRYFALL_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("SCRYFALL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SCRYFALL_MAX_PAGES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("config: SCRYFALL_MAX_PAGES must be a non-negative integer, got %q", v)
		}
		cfg.MaxPages = n
	}
	if v := os.Getenv("SCRYFALL_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: SCRYFALL_REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = Duration{d}
	}
	return nil
}
