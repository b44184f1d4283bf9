// Package config resolves tracker settings once at process start.
//
// Resolution order: built-in defaults, then an optional YAML file named by
// WTT_CONFIG, then environment overrides. Nothing else in the program reads
// the environment; the resolved Config is passed explicitly to whoever
// needs it.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/roach88/wtt/internal/track"
)

const (
	// DefaultDatabasePath is the store file used when nothing overrides it.
	DefaultDatabasePath = "db.json"

	// DefaultNoteWidth is the note column width used for table display.
	DefaultNoteWidth = 40
)

// Environment variable names.
const (
	EnvConfigFile   = "WTT_CONFIG"
	EnvDatabasePath = "WTT_PATH_DATABASE"
	EnvNoteWidth    = "WTT_NOTE_WIDTH"
)

// Config holds the resolved tracker settings.
type Config struct {
	// DatabasePath locates the JSON document holding all sessions.
	DatabasePath string `yaml:"database_path"`

	// NoteWidth is the display width the note column is wrapped to.
	NoteWidth int `yaml:"note_width"`
}

// Resolve builds the effective configuration from defaults, the optional
// config file and the environment. Malformed numeric settings are rejected
// as validation errors.
func Resolve() (Config, error) {
	cfg := Config{
		DatabasePath: DefaultDatabasePath,
		NoteWidth:    DefaultNoteWidth,
	}

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if path := os.Getenv(EnvDatabasePath); path != "" {
		cfg.DatabasePath = path
	}
	if widthStr := os.Getenv(EnvNoteWidth); widthStr != "" {
		width, err := strconv.Atoi(widthStr)
		if err != nil {
			return Config{}, track.NewValidationError(fmt.Sprintf("invalid %s %q: not a number", EnvNoteWidth, widthStr))
		}
		cfg.NoteWidth = width
	}

	if cfg.NoteWidth < 1 {
		return Config{}, track.NewValidationError(fmt.Sprintf("invalid note width %d: must be at least 1", cfg.NoteWidth))
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return track.NewIOError(fmt.Sprintf("could not read the config file %q", path), err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return track.NewParseError(fmt.Sprintf("could not parse the config file %q", path), err)
	}
	return nil
}
