package source

import (
	"os"
	"path/filepath"

	"github.com/omnote/omnote/internal/config"
)

// WatchPaths returns the fixed list of files and directories whose changes
// can alter the resolved palette, filtered to those that currently exist.
// The omarchy current directory's parent is included so theme switches made
// by re-pointing the symlink are observed.
func WatchPaths() []string {
	cur := config.OmarchyCurrentTheme()

	cands := []string{
		config.OmarchyDir(),
		config.OmarchyThemesDir(),
		filepath.Dir(cur),
		filepath.Join(cur, "alacritty.toml"),
		filepath.Join(cur, "kitty.conf"),
		filepath.Join(cur, "foot.ini"),
		config.HyprlandConf(),
	}

	if envp := os.Getenv("ALACRITTY_CONFIG"); envp != "" {
		cands = append(cands, envp)
	}

	cands = append(cands,
		filepath.Join(config.ConfigHome(), "alacritty"),
		filepath.Join(config.ConfigHome(), "alacritty", "alacritty.yml"),
		filepath.Join(config.ConfigHome(), "alacritty", "alacritty.yaml"),
		filepath.Join(config.ConfigHome(), "alacritty", "alacritty.toml"),
	)
	if home, err := os.UserHomeDir(); err == nil {
		cands = append(cands, filepath.Join(home, ".alacritty.yml"))
	}
	cands = append(cands, config.UserGTKCSS())

	var existing []string
	for _, p := range cands {
		if pathExists(p) {
			existing = append(existing, p)
		}
	}
	return existing
}
