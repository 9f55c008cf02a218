// Package config loads the dashboard's settings from ~/.frete/config.yaml,
// .env files and FRETE_* environment variables.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
}

type DataConfig struct {
	// Source is "memory" or "sqlite".
	Source   string `yaml:"source"`
	DSN      string `yaml:"dsn"`
	Fixtures string `yaml:"fixtures"`
	// LatencyMS simulates a slow source for the memory store.
	LatencyMS int `yaml:"latency_ms"`
}

type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Level   string `yaml:"level"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Dir returns the configuration directory, ~/.frete.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".frete"), nil
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(dir string) Config {
	return Config{
		Data: DataConfig{
			Source: "memory",
			DSN:    ":memory:",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Path:    filepath.Join(dir, "frete.log"),
			Level:   "info",
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides. A
// missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig(filepath.Dir(path))

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	switch c.Data.Source {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid data source %q (want memory or sqlite)", c.Data.Source)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	if c.Data.LatencyMS < 0 {
		return fmt.Errorf("latency_ms must not be negative")
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FRETE_DATA_SOURCE"); v != "" {
		c.Data.Source = v
	}
	if v := os.Getenv("FRETE_DSN"); v != "" {
		c.Data.DSN = v
	}
	if v := os.Getenv("FRETE_FIXTURES"); v != "" {
		c.Data.Fixtures = v
	}
	if v := os.Getenv("FRETE_LOG_PATH"); v != "" {
		c.Logging.Path = v
	}
	if v := os.Getenv("FRETE_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("FRETE_EXPORT_DIR"); v != "" {
		c.Export.Dir = v
	}
}

// LoadDotEnv sets variables from a KEY=value file without overriding the
// environment. A missing file is ignored.
func LoadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		if key == "" {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
}
