package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omnote/omnote/internal/palette"
)

func TestGenerateCSS_Defaults(t *testing.T) {
	css := GenerateCSS(palette.Palette{}, true)

	assert.Contains(t, css, "@define-color term_bg #1e1e1e;")
	assert.Contains(t, css, "@define-color term_fg #e0e0e0;")
	assert.Contains(t, css, "@define-color term_sel_bg alpha(@term_fg,0.15);")
	assert.Contains(t, css, "@define-color term_sel_fg @term_fg;")
	assert.Contains(t, css, "@define-color term_caret @term_fg;")
}

func TestGenerateCSS_PaletteValues(t *testing.T) {
	css := GenerateCSS(palette.Palette{
		Background:  "#11aa22",
		Foreground:  "#ffffff",
		SelectionBG: "#333333",
		SelectionFG: "#444444",
		Caret:       "#555555",
	}, true)

	assert.Contains(t, css, "@define-color term_bg #11aa22;")
	assert.Contains(t, css, "@define-color term_fg #ffffff;")
	assert.Contains(t, css, "@define-color term_sel_bg #333333;")
	assert.Contains(t, css, "@define-color term_sel_fg #444444;")
	assert.Contains(t, css, "@define-color term_caret #555555;")
}

func TestGenerateCSS_EntryMixByMode(t *testing.T) {
	dark := GenerateCSS(palette.Palette{}, true)
	light := GenerateCSS(palette.Palette{}, false)

	assert.Contains(t, dark, "mix(@term_bg, @term_fg, 0.06)")
	assert.Contains(t, light, "mix(@term_bg, @term_fg, 0.12)")
}

func TestGenerateCSS_RulesReferenceOnlyVariables(t *testing.T) {
	css := GenerateCSS(palette.Palette{
		Background:  "#11aa22",
		Foreground:  "#ffffff",
		SelectionBG: "#333333",
		SelectionFG: "#444444",
		Caret:       "#555555",
	}, false)

	// Strip the variable definitions; the remaining rules must not repeat
	// literal palette hex values.
	_, rules, found := strings.Cut(css, "window, .background")
	assert.True(t, found)
	for _, hex := range []string{"#11aa22", "#ffffff", "#333333", "#444444", "#555555"} {
		assert.NotContains(t, rules, hex)
	}

	// The main surfaces are themed.
	for _, sel := range []string{"headerbar", "textview", "entry, searchentry", "tabbar", "stack"} {
		assert.Contains(t, css, sel)
	}
}
