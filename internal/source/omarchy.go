package source

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/omnote/omnote/internal/config"
	"github.com/omnote/omnote/internal/palette"
	"github.com/omnote/omnote/internal/termcfg"
)

// hyprThemeRe scrapes the active theme name out of a hyprland source/include
// line pointing into an omarchy themes directory.
var hyprThemeRe = regexp.MustCompile(`(?mi)^\s*(?:source|include)\s*=\s*(.+omarchy/.+?/themes/([^/\s]+)/hyprland\.conf)\s*$`)

// themeDirFiles is the fixed per-dialect lookup order inside a theme dir.
var themeDirFiles = []string{
	"alacritty.toml", "alacritty.yaml", "alacritty.yml",
	"kitty.conf",
	"foot.ini",
}

// OmarchySource resolves the palette from the omarchy theme manager's
// current-theme directory.
type OmarchySource struct {
	logger *slog.Logger
}

// NewOmarchySource creates an omarchy theme provider.
func NewOmarchySource(logger *slog.Logger) *OmarchySource {
	if logger == nil {
		logger = slog.Default()
	}
	return &OmarchySource{logger: logger}
}

// Name implements Source.
func (s *OmarchySource) Name() string { return "omarchy" }

// Resolve implements Source. A missing theme manager or a theme without
// terminal palette files yields an empty palette.
func (s *OmarchySource) Resolve() palette.Palette {
	dir := CurrentThemeDir()
	if dir == "" {
		s.logger.Debug("omarchy current theme not detected")
		return palette.Palette{}
	}
	pal := PaletteFromThemeDir(dir)
	if pal.IsEmpty() {
		s.logger.Debug("omarchy theme has no terminal palette files", "dir", dir)
		return palette.Palette{}
	}
	s.logger.Debug("omarchy palette resolved", "dir", dir)
	return pal
}

// CurrentThemeDir locates the omarchy current-theme directory. Detection
// order: the direct current/theme path, a resolved themes/current symlink,
// marker files containing a theme name, and finally the theme name scraped
// from the user's hyprland config.
func CurrentThemeDir() string {
	if cur := config.OmarchyCurrentTheme(); pathExists(cur) {
		return cur
	}

	if cand := filepath.Join(config.OmarchyThemesDir(), "current"); pathExists(cand) {
		if resolved, err := filepath.EvalSymlinks(cand); err == nil && isDir(resolved) {
			return resolved
		}
	}

	for _, marker := range config.OmarchyMarkerFiles() {
		data, err := os.ReadFile(marker)
		if err != nil {
			continue
		}
		name := strings.TrimSpace(string(data))
		if name == "" {
			continue
		}
		if dir := filepath.Join(config.OmarchyThemesDir(), name); isDir(dir) {
			return dir
		}
	}

	if txt, err := os.ReadFile(config.HyprlandConf()); err == nil {
		if m := hyprThemeRe.FindStringSubmatch(string(txt)); m != nil {
			if dir := filepath.Join(config.OmarchyThemesDir(), m[2]); isDir(dir) {
				return dir
			}
		}
	}

	return ""
}

// PaletteFromThemeDir tries the known per-dialect filenames inside a theme
// directory in fixed order and returns the first non-empty parse.
func PaletteFromThemeDir(dir string) palette.Palette {
	for _, name := range themeDirFiles {
		path := filepath.Join(dir, name)
		if !pathExists(path) {
			continue
		}
		if pal := parseThemeFile(path, name); !pal.IsEmpty() {
			return pal
		}
	}
	return palette.Palette{}
}

func parseThemeFile(path, name string) palette.Palette {
	switch {
	case strings.HasPrefix(name, "alacritty."):
		if pal, ok := termcfg.ParseAlacrittyFile(path); ok {
			return pal
		}
		return termcfg.ScrapeAlacritty(readFile(path))
	case name == "kitty.conf":
		return termcfg.ScrapeKitty(readFile(path))
	case name == "foot.ini":
		return termcfg.ScrapeFoot(readFile(path))
	}
	return palette.Palette{}
}

func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
