package theme

import (
	"fmt"
	"strings"

	"github.com/omnote/omnote/internal/palette"
)

// Fixed defaults for unset palette fields. Selection and caret fall back to
// derivations of the foreground so a partial palette still looks coherent.
const (
	defaultBackground  = "#1e1e1e"
	defaultForeground  = "#e0e0e0"
	defaultSelectionBG = "alpha(@term_fg,0.15)"
	defaultSelectionFG = "@term_fg"
	defaultCaret       = "@term_fg"
)

// Entry-field background mix ratios. Dark themes need a subtler lift than
// light ones.
const (
	entryMixDark  = 0.06
	entryMixLight = 0.12
)

// GenerateCSS renders a palette into the application stylesheet. Unset
// fields take fixed defaults, and every style rule references only the five
// named variables defined at the top.
func GenerateCSS(p palette.Palette, dark bool) string {
	bg := orDefault(p.Background, defaultBackground)
	fg := orDefault(p.Foreground, defaultForeground)
	selBG := orDefault(p.SelectionBG, defaultSelectionBG)
	selFG := orDefault(p.SelectionFG, defaultSelectionFG)
	caret := orDefault(p.Caret, defaultCaret)

	entryMix := entryMixLight
	if dark {
		entryMix = entryMixDark
	}

	var b strings.Builder
	fmt.Fprintf(&b, `/* generated from palette */
@define-color term_bg %s;
@define-color term_fg %s;
@define-color term_sel_bg %s;
@define-color term_sel_fg %s;
@define-color term_caret %s;
`, bg, fg, selBG, selFG, caret)

	fmt.Fprintf(&b, `
window, .background {
  background-color: @term_bg;
  color: @term_fg;
}
textview, textview.view {
  background-color: @term_bg;
  color: @term_fg;
}
textview > text, textview.view > text {
  background-color: @term_bg;
  background-image: none;
  color: @term_fg;
  caret-color: @term_caret;
}
textview text selection {
  background-color: @term_sel_bg;
  color: @term_sel_fg;
}
/* GtkSourceView line numbers gutter */
textview border, textview.view border {
  background-color: @term_bg;
  color: alpha(@term_fg, 0.5);
}
textview.view gutter, textview gutter {
  background-color: @term_bg;
}
textview.view gutter.left, textview.view gutter.right {
  background-color: @term_bg;
}
headerbar, .titlebar {
  background-color: @term_bg;
  color: @term_fg;
  border-bottom: 1px solid alpha(@term_fg, 0.08);
}
entry, searchentry {
  background-color: mix(@term_bg, @term_fg, %.2f);
  color: @term_fg;
  border: 1px solid alpha(@term_fg, 0.15);
}
entry:focus, searchentry:focus {
  border-color: alpha(@term_fg, 0.28);
}
entry selection, searchentry selection {
  background-color: @term_sel_bg;
  color: @term_sel_fg;
}
/* Floating find/replace bar styling */
stack {
  background-color: @term_bg;
  border: 1px solid alpha(@term_fg, 0.2);
  border-radius: 8px;
  box-shadow: 0 2px 8px rgba(0, 0, 0, 0.3);
}
/* Tab bar theming */
tabbar, tabbar > scrolledwindow, tabbar > revealer > box {
  background-color: @term_bg;
}
tabbar separator {
  background: transparent;
  min-width: 0;
  min-height: 0;
}
tabbar tab, .tab {
  background-color: alpha(@term_fg, 0.02);
  color: alpha(@term_fg, 0.5);
  border: none;
  border-bottom: 2px solid transparent;
  min-height: 28px;
  min-width: 160px;
  padding: 4px 14px;
}
tabbar tab > box, .tab > box {
  min-width: 0;
}
tabbar tab:hover, .tab:hover {
  background-color: alpha(@term_fg, 0.05);
  color: alpha(@term_fg, 0.8);
}
tabbar tab:selected, tabbar tab:checked, tabbar tab:active, .tab:selected, .tab:checked, .tab:active {
  background-color: alpha(@term_fg, 0.12);
  color: @term_fg;
  border-bottom: 2px solid alpha(@term_fg, 0.5);
  font-weight: 500;
}
tabbar .start-action, tabbar .end-action {
  background-color: @term_bg;
}
tabbar button {
  background: transparent;
  border: none;
  color: alpha(@term_fg, 0.5);
  min-height: 24px;
  min-width: 24px;
}
tabbar button:hover {
  color: @term_fg;
  background-color: alpha(@term_fg, 0.15);
}
`, entryMix)

	return b.String()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
