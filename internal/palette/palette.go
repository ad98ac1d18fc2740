// Package palette defines the five-field terminal color palette and the
// priority merge used to combine palettes from multiple sources.
package palette

// Palette is a possibly-partial set of UI colors. Each present value is a
// normalized "#RRGGBB" string; the empty string means unset.
type Palette struct {
	Background  string
	Foreground  string
	SelectionBG string
	SelectionFG string
	Caret       string
}

// IsEmpty reports whether no field is set.
func (p Palette) IsEmpty() bool {
	return p == Palette{}
}

// Merge combines palettes left to right: for each field the first non-empty
// value wins. Callers pass sources in priority order.
func Merge(palettes ...Palette) Palette {
	var out Palette
	for _, p := range palettes {
		if out.Background == "" {
			out.Background = p.Background
		}
		if out.Foreground == "" {
			out.Foreground = p.Foreground
		}
		if out.SelectionBG == "" {
			out.SelectionBG = p.SelectionBG
		}
		if out.SelectionFG == "" {
			out.SelectionFG = p.SelectionFG
		}
		if out.Caret == "" {
			out.Caret = p.Caret
		}
	}
	return out
}
