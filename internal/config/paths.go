package config

import (
	"os"
	"path/filepath"
)

// Omarchy is the desktop theme manager whose "current theme" directory holds
// per-application config snippets, including terminal palettes.

// OmarchyDir returns the omarchy config root (~/.config/omarchy).
func OmarchyDir() string {
	return filepath.Join(ConfigHome(), "omarchy")
}

// OmarchyThemesDir returns the directory containing installed omarchy themes.
func OmarchyThemesDir() string {
	return filepath.Join(OmarchyDir(), "themes")
}

// OmarchyCurrentTheme returns the direct current-theme path
// (~/.config/omarchy/current/theme), usually a symlink into themes/.
func OmarchyCurrentTheme() string {
	return filepath.Join(OmarchyDir(), "current", "theme")
}

// OmarchyMarkerFiles returns marker files that may hold the active theme name.
func OmarchyMarkerFiles() []string {
	dir := OmarchyDir()
	return []string{
		filepath.Join(dir, "current-theme"),
		filepath.Join(dir, "theme"),
		filepath.Join(dir, "selected-theme"),
	}
}

// HyprlandConf returns the user's hyprland config file, which omarchy setups
// typically make source the active theme's hyprland snippet.
func HyprlandConf() string {
	return filepath.Join(ConfigHome(), "hypr", "hyprland.conf")
}

// AlacrittyCandidates returns the ordered candidate list for the user's main
// alacritty config: the ALACRITTY_CONFIG override first, then the omarchy
// current-theme copies, then the default user locations.
func AlacrittyCandidates() []string {
	var cands []string

	if envp := os.Getenv("ALACRITTY_CONFIG"); envp != "" {
		cands = append(cands, envp)
	}

	cur := OmarchyCurrentTheme()
	cands = append(cands,
		filepath.Join(cur, "alacritty.toml"),
		filepath.Join(cur, "alacritty.yml"),
		filepath.Join(cur, "alacritty.yaml"),
	)

	cands = append(cands,
		filepath.Join(ConfigHome(), "alacritty", "alacritty.toml"),
		filepath.Join(ConfigHome(), "alacritty", "alacritty.yml"),
		filepath.Join(ConfigHome(), "alacritty", "alacritty.yaml"),
	)
	if home, err := os.UserHomeDir(); err == nil {
		cands = append(cands, filepath.Join(home, ".alacritty.yml"))
	}

	return cands
}

// UserGTKCSS returns the user's gtk-4.0/gtk.css fallback stylesheet path.
func UserGTKCSS() string {
	return filepath.Join(ConfigHome(), "gtk-4.0", "gtk.css")
}
