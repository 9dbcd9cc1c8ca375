package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the HTTP port used when neither PORT nor the config file set one
	DefaultPort = "3000"
	appDir      = ".tasktracker"
	configFile  = "config.yaml"
)

// Config holds server settings and client preferences
type Config struct {
	Port          string `yaml:"port" json:"port"`                     // HTTP listen port for the server
	ServerURL     string `yaml:"server_url" json:"server_url"`         // Base URL the CLI and TUI talk to
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"` // Require confirmation for delete

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file, empty for none
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
	LogFormat  string `yaml:"log_format" json:"log_format"`   // text or json

	path string
	// file holds the values read from disk before environment overrides;
	// loaded holds them after. Save diffs against loaded so that env
	// values never leak into the file.
	file   *Config
	loaded *Config
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	return &Config{
		Port:          DefaultPort,
		ServerURL:     "http://localhost:" + DefaultPort,
		ConfirmDelete: true,
		LogLevel:      "INFO",
		LogConsole:    true,
		LogFormat:     "text",
	}
}

// DefaultPath returns ~/.tasktracker/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir, configFile), nil
}

// Load reads the config file at path, or the default path when empty.
// A missing file yields defaults. Environment variables override both.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := DefaultConfig()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.file = cfg.snapshot()
	cfg.applyEnv()
	cfg.loaded = cfg.snapshot()
	return cfg, nil
}

func (c *Config) snapshot() *Config {
	cp := *c
	cp.file, cp.loaded = nil, nil
	return &cp
}

// applyEnv overrides file values with environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	c.ServerURL = getEnv("TASKTRACKER_SERVER_URL", c.ServerURL)
	c.LogLevel = getEnv("TASKTRACKER_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnv("TASKTRACKER_LOG_FILE", c.LogFile)
	c.LogFormat = getEnv("TASKTRACKER_LOG_FORMAT", c.LogFormat)
	if v := os.Getenv("TASKTRACKER_LOG_CONSOLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogConsole = b
		}
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Path returns the file this config was loaded from
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to the file it was loaded from
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := c.changedSinceLoad()
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	c.file = out
	c.loaded = c.snapshot()
	return nil
}

// changedSinceLoad returns the file values with every field the caller
// modified after Load applied on top.
func (c *Config) changedSinceLoad() *Config {
	if c.file == nil || c.loaded == nil {
		return c.snapshot()
	}

	out := *c.file
	pick := func(dst *string, cur, loaded string) {
		if cur != loaded {
			*dst = cur
		}
	}
	pick(&out.Port, c.Port, c.loaded.Port)
	pick(&out.ServerURL, c.ServerURL, c.loaded.ServerURL)
	pick(&out.LogLevel, c.LogLevel, c.loaded.LogLevel)
	pick(&out.LogFile, c.LogFile, c.loaded.LogFile)
	pick(&out.LogFormat, c.LogFormat, c.loaded.LogFormat)
	if c.ConfirmDelete != c.loaded.ConfirmDelete {
		out.ConfirmDelete = c.ConfirmDelete
	}
	if c.LogConsole != c.loaded.LogConsole {
		out.LogConsole = c.LogConsole
	}
	return &out
}
