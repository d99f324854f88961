package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds tool settings loaded from a TOML file. Flag values take
// precedence over file values.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Watch  WatchConfig  `toml:"watch"`
	Output OutputConfig `toml:"output"`
}

// LogConfig controls logging.
type LogConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `toml:"level"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// DebounceMS is the quiet period after a file event before the file
	// is reprocessed, in milliseconds.
	DebounceMS int `toml:"debounce_ms"`
}

// OutputConfig controls report output.
type OutputConfig struct {
	// Pretty pretty-prints the JSON report.
	Pretty bool `toml:"pretty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Watch:  WatchConfig{DebounceMS: 200},
		Output: OutputConfig{Pretty: false},
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
