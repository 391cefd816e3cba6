package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pixelgram/internal/logging"
	"pixelgram/internal/social"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all pixelgram configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Terminal presentation
	UI UIConfig `yaml:"ui"`

	// Shell navigation
	Navigation NavigationConfig `yaml:"navigation"`

	// Session and content source
	Content ContentConfig `yaml:"content"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// environment variables applied by the last Load
	overrides []string
}

// NavigationConfig configures the navigation store.
type NavigationConfig struct {
	// InitialView is the view mounted when the shell starts.
	InitialView string `yaml:"initial_view"`
}

// ContentConfig configures where the session profile and galleries come from.
type ContentConfig struct {
	// FixturePath points at a YAML fixture. Empty means built-in demo data.
	FixturePath string `yaml:"fixture_path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "pixelgram",
		Version: "0.3.0",

		UI: *DefaultUIConfig(),

		Navigation: NavigationConfig{
			InitialView: string(social.ViewFeed),
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
			Dir:       DefaultLogsDir(),
		},
	}
}

// DefaultConfigPath returns ~/.pixelgram/config.yaml, or a relative path when
// the home directory cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pixelgram", "config.yaml")
	}
	return filepath.Join(home, ".pixelgram", "config.yaml")
}

// DefaultLogsDir returns the logs directory next to the default config file.
func DefaultLogsDir() string {
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "logs")
}

// Load loads configuration from a YAML file.
// A missing file yields defaults; environment overrides always apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// A .env in the working directory is optional, a broken one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	c.overrides = c.overrides[:0]
	if theme := os.Getenv("PIXELGRAM_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
		c.noteOverride("PIXELGRAM_THEME", c.UI.Theme)
	}
	if path := os.Getenv("PIXELGRAM_FIXTURE"); path != "" {
		c.Content.FixturePath = path
		c.noteOverride("PIXELGRAM_FIXTURE", path)
	}
	if view := os.Getenv("PIXELGRAM_INITIAL_VIEW"); view != "" {
		c.Navigation.InitialView = view
		c.noteOverride("PIXELGRAM_INITIAL_VIEW", view)
	}
	if dbg := os.Getenv("PIXELGRAM_DEBUG"); dbg == "1" || strings.EqualFold(dbg, "true") {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
		c.noteOverride("PIXELGRAM_DEBUG", dbg)
	}
	if dir := os.Getenv("PIXELGRAM_LOGS_DIR"); dir != "" {
		c.Logging.Dir = dir
		c.noteOverride("PIXELGRAM_LOGS_DIR", dir)
	}
}

func (c *Config) noteOverride(name, value string) {
	c.overrides = append(c.overrides, name+"="+value)
}

// Overrides returns the environment variables applied by Load, as NAME=value.
func (c *Config) Overrides() []string {
	return c.overrides
}

// LogOverrides writes the applied environment overrides to the config log.
// Load runs before logging is initialized, so callers invoke this afterwards.
func (c *Config) LogOverrides() {
	for _, o := range c.overrides {
		logging.ConfigDebug("env override %s", o)
	}
}

// InitialView returns the configured initial view, falling back to feed.
func (c *Config) InitialView() social.ViewID {
	v, err := social.ParseViewID(c.Navigation.InitialView)
	if err != nil {
		return social.ViewFeed
	}
	return v
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.UI.Validate(); err != nil {
		return err
	}
	if c.Navigation.InitialView != "" {
		if _, err := social.ParseViewID(c.Navigation.InitialView); err != nil {
			return fmt.Errorf("invalid navigation.initial_view: %w", err)
		}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}
	return nil
}
