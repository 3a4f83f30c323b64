package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the optional user defaults read from config.toml.
// Command-line flags override every field.
type Config struct {
	// DefaultDeltaMS is applied when --delta is not given.
	DefaultDeltaMS int64 `toml:"default_delta_ms"`
	// DefaultOutputFormat ("srt" or "webvtt") is used when neither
	// --output-format nor an output extension selects one.
	DefaultOutputFormat string `toml:"default_output_format"`
	// Strict aborts conversion on the first malformed cue block.
	Strict bool `toml:"strict"`
}

// DefaultPath returns the per-user config location, typically
// ~/.config/srt2webvtt/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "srt2webvtt", "config.toml"), nil
}

// Load reads the config at path. A missing file is not an error and
// yields the zero config.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
