// Package config handles configuration file loading, environment overrides,
// and the catalogue of filesystem paths the theme pipeline reads from.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// envPrefix is the preferred environment variable prefix. legacyPrefix is
// accepted as a fallback for configs written against the old app name.
const (
	envPrefix    = "OMNOTE_"
	legacyPrefix = "MICROPAD_"
)

// Default configuration values.
const DefaultThemeMode = "terminal"

// Config represents the omnote configuration.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Theme  ThemeConfig  `toml:"theme"`
}

// EditorConfig holds text-editing surface settings.
type EditorConfig struct {
	WrapText  bool `toml:"wrap_text"`
	Monospace bool `toml:"monospace"`
}

// ThemeConfig holds theme pipeline settings.
type ThemeConfig struct {
	Mode  string `toml:"mode"`  // "terminal" (follow terminal palette) or "system"
	Watch bool   `toml:"watch"` // Live-reload on config/theme changes
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			WrapText:  true,
			Monospace: true,
		},
		Theme: ThemeConfig{
			Mode:  DefaultThemeMode,
			Watch: true,
		},
	}
}

// Getenv returns the value of OMNOTE_<key>, falling back to the legacy
// MICROPAD_<key> alias. Empty values count as unset.
func Getenv(key string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return os.Getenv(legacyPrefix + key)
}

// Debug reports whether debug tracing is enabled via environment.
func Debug() bool {
	return Getenv("DEBUG") != ""
}

// ThemeMode returns the theme mode from environment, falling back to def.
func ThemeMode(def string) string {
	if v := Getenv("THEME_MODE"); v != "" {
		return v
	}
	return def
}

// NoWatch reports whether live theme reloading is disabled via environment.
func NoWatch() bool {
	return Getenv("NO_WATCH") != ""
}

// ConfigHome returns the XDG config root.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigHome() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return configHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigHome(), "omnote", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "omnote")
}

// NotesPath returns the directory holding note files.
func NotesPath() string {
	return filepath.Join(DataPath(), "notes")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureNotesDir creates the notes directory if it doesn't exist.
func EnsureNotesDir() error {
	path := NotesPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}
