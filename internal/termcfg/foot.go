package termcfg

import "github.com/omnote/omnote/internal/palette"

// ScrapeFoot extracts a palette from foot.ini text ("key = value" lines).
func ScrapeFoot(txt string) palette.Palette {
	k := func(key string) string { return lineValue(txt, key, `\s*=\s*`) }
	return palette.Palette{
		Background:  k("background"),
		Foreground:  k("foreground"),
		Caret:       k("cursor"),
		SelectionBG: k("selection-background"),
		SelectionFG: k("selection-foreground"),
	}
}
