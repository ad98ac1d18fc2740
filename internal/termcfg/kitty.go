package termcfg

import "github.com/omnote/omnote/internal/palette"

// ScrapeKitty extracts a palette from kitty.conf text
// (whitespace-separated "key value" lines).
func ScrapeKitty(txt string) palette.Palette {
	k := func(key string) string { return lineValue(txt, key, `\s+`) }
	return palette.Palette{
		Background:  k("background"),
		Foreground:  k("foreground"),
		Caret:       k("cursor"),
		SelectionBG: k("selection_background"),
		SelectionFG: k("selection_foreground"),
	}
}
