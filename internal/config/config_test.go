package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Editor.WrapText)
	assert.True(t, cfg.Editor.Monospace)
	assert.Equal(t, "terminal", cfg.Theme.Mode)
	assert.True(t, cfg.Theme.Watch)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[editor]
wrap_text = false
monospace = false

[theme]
mode = "system"
watch = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Editor.WrapText)
	assert.False(t, cfg.Editor.Monospace)
	assert.Equal(t, "system", cfg.Theme.Mode)
	assert.False(t, cfg.Theme.Watch)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[theme]\nmode = \"system\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "system", cfg.Theme.Mode)
	assert.True(t, cfg.Theme.Watch)
	assert.True(t, cfg.Editor.WrapText)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[theme\nbroken"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Theme.Mode = "system"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetenv_PreferredBeatsLegacy(t *testing.T) {
	t.Setenv("OMNOTE_BG", "#111111")
	t.Setenv("MICROPAD_BG", "#222222")
	assert.Equal(t, "#111111", Getenv("BG"))
}

func TestGetenv_LegacyFallback(t *testing.T) {
	t.Setenv("OMNOTE_FG", "")
	t.Setenv("MICROPAD_FG", "#eeeeee")
	assert.Equal(t, "#eeeeee", Getenv("FG"))
}

func TestThemeMode(t *testing.T) {
	t.Setenv("OMNOTE_THEME_MODE", "")
	t.Setenv("MICROPAD_THEME_MODE", "")
	assert.Equal(t, "terminal", ThemeMode("terminal"))

	t.Setenv("OMNOTE_THEME_MODE", "system")
	assert.Equal(t, "system", ThemeMode("terminal"))
}

func TestNoWatch(t *testing.T) {
	t.Setenv("OMNOTE_NO_WATCH", "")
	t.Setenv("MICROPAD_NO_WATCH", "")
	assert.False(t, NoWatch())

	t.Setenv("OMNOTE_NO_WATCH", "1")
	assert.True(t, NoWatch())
}

func TestPaths_FollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	assert.Equal(t, "/tmp/xdg-config", ConfigHome())
	assert.Equal(t, "/tmp/xdg-config/omnote/config.toml", ConfigPath())
	assert.Equal(t, "/tmp/xdg-data/omnote", DataPath())
	assert.Equal(t, "/tmp/xdg-data/omnote/notes", NotesPath())
}

func TestPaths_DefaultToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	assert.Equal(t, filepath.Join(home, ".config"), ConfigHome())
	assert.Equal(t, filepath.Join(home, ".local", "share", "omnote"), DataPath())
}
