// Package config loads trackboard configuration from the user config file
// and the environment, and owns the process-wide logger bootstrap.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is missing or partial.
const (
	DefaultDataFile = "dashboard_data.csv"
	DefaultTopN     = 10
	DefaultBins     = 10

	// EnvDataFile overrides the source CSV path.
	EnvDataFile = "TRACKBOARD_DATA"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "TRACKBOARD_LOG_LEVEL"
)

// Config is the root configuration document.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Charts  ChartsConfig  `yaml:"charts"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates and describes the source table.
type DataConfig struct {
	// File is the path to the dashboard CSV.
	File string `yaml:"file"`

	// NumericExtras lists columns coerced to float64 in addition to the
	// built-in numeric feature set (mood_*, danceability, key_key).
	NumericExtras []string `yaml:"numeric_extras"`
}

// ChartsConfig caps the aggregate charts.
type ChartsConfig struct {
	// TopN is the cardinality cap for categorical and proportion charts.
	TopN int `yaml:"top_n"`

	// Bins is the histogram bin count.
	Bins int `yaml:"bins"`
}

// LoggingConfig configures the zerolog output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

var (
	globalConfig   *Config      //nolint:gochecknoglobals // Set once at startup, read by commands.
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig.
)

// New returns a Config populated with defaults, overlaid with the user
// config file (when present) and then the environment.
func New() *Config {
	cfg := defaultConfig()

	if path, err := userConfigPath(); err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			// A malformed config file falls back to defaults; the
			// dashboard must still come up.
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	return cfg
}

// Parse decodes a config document from bytes. Used by tests and by
// callers that manage the file themselves.
func Parse(data []byte) (*Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Data:   DataConfig{File: DefaultDataFile},
		Charts: ChartsConfig{TopN: DefaultTopN, Bins: DefaultBins},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.Data.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) fillDefaults() {
	if c.Data.File == "" {
		c.Data.File = DefaultDataFile
	}
	if c.Charts.TopN <= 0 {
		c.Charts.TopN = DefaultTopN
	}
	if c.Charts.Bins <= 0 {
		c.Charts.Bins = DefaultBins
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// userConfigPath returns ~/.trackboard/config.yaml.
func userConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".trackboard", "config.yaml"), nil
}

// SetGlobalConfig stores the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the process-wide configuration, loading it on
// first use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// GetLoggingConfig returns a copy of the Logging section of the global
// configuration. Flag-level overrides (--debug) are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
