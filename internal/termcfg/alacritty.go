package termcfg

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/omnote/omnote/internal/color"
	"github.com/omnote/omnote/internal/palette"
)

// Defaults used when a structured alacritty config omits primary colors.
const (
	defaultBackground = "#1e1e1e"
	defaultForeground = "#e0e0e0"
)

// alacrittyColors mirrors the subset of the alacritty config schema the
// palette needs. Field names are shared between the TOML and YAML dialects.
type alacrittyColors struct {
	Colors struct {
		Primary struct {
			Background string `toml:"background" yaml:"background"`
			Foreground string `toml:"foreground" yaml:"foreground"`
		} `toml:"primary" yaml:"primary"`
		Selection struct {
			Background string `toml:"background" yaml:"background"`
			Text       string `toml:"text" yaml:"text"`
			Foreground string `toml:"foreground" yaml:"foreground"`
		} `toml:"selection" yaml:"selection"`
		Normal struct {
			White string `toml:"white" yaml:"white"`
		} `toml:"normal" yaml:"normal"`
		Bright struct {
			White string `toml:"white" yaml:"white"`
		} `toml:"bright" yaml:"bright"`
	} `toml:"colors" yaml:"colors"`
}

// ParseAlacrittyFile parses an alacritty config structurally, picking the
// decoder by file extension. A successful parse always yields a full palette:
// missing primary colors fall back to the fixed defaults, a missing selection
// is derived by blending, and the caret prefers bright white over normal
// white over the foreground. Returns ok=false when structured parsing is not
// possible, letting the caller fall back to text scraping.
func ParseAlacrittyFile(path string) (palette.Palette, bool) {
	text := readFile(path)
	if text == "" {
		return palette.Palette{}, false
	}

	var doc alacrittyColors
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal([]byte(text), &doc); err != nil {
			return palette.Palette{}, false
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
			return palette.Palette{}, false
		}
	default:
		return palette.Palette{}, false
	}

	c := doc.Colors

	bg := color.Normalize(c.Primary.Background)
	if bg == "" {
		bg = defaultBackground
	}
	fg := color.Normalize(c.Primary.Foreground)
	if fg == "" {
		fg = defaultForeground
	}

	selBG := color.Normalize(c.Selection.Background)
	if selBG == "" {
		selBG = color.Blend(bg, fg, 0.15)
	}
	selFG := color.Normalize(c.Selection.Text)
	if selFG == "" {
		selFG = color.Normalize(c.Selection.Foreground)
	}
	if selFG == "" {
		selFG = fg
	}

	caret := color.Normalize(c.Bright.White)
	if caret == "" {
		caret = color.Normalize(c.Normal.White)
	}
	if caret == "" {
		caret = fg
	}

	return palette.Palette{
		Background:  bg,
		Foreground:  fg,
		SelectionBG: selBG,
		SelectionFG: selFG,
		Caret:       caret,
	}, true
}

// ScrapeAlacritty extracts a palette from raw alacritty config text. It is
// the fallback when structured parsing fails or the text is a concatenation
// of import-expanded files. Keys are matched only after their block header;
// the first occurrence wins.
func ScrapeAlacritty(txt string) palette.Palette {
	selFG := blockKey(txt, "selection", "text")
	if selFG == "" {
		selFG = blockKey(txt, "selection", "foreground")
	}
	caret := blockKey(txt, "cursor", "cursor")
	if caret == "" {
		caret = blockKey(txt, "cursor", "text")
	}
	return palette.Palette{
		Background:  blockKey(txt, "primary", "background"),
		Foreground:  blockKey(txt, "primary", "foreground"),
		SelectionBG: blockKey(txt, "selection", "background"),
		SelectionFG: selFG,
		Caret:       caret,
	}
}

// blockKey finds key after the block header, in either "colors.block" TOML
// table form or nested YAML form.
func blockKey(txt, block, key string) string {
	pat := fmt.Sprintf(`(?mis)^\s*(?:colors\.\s*)?%s\s*[:=].*?^\s*%s\s*[:=]\s*(%s)`,
		block, key, hexPattern)
	return grab(txt, pat)
}
