// Package color normalizes terminal color literals and blends colors.
package color

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Fallback endpoints used by Blend when either input fails to parse.
const (
	fallbackDark  = "#1e1e1e"
	fallbackLight = "#e0e0e0"
)

// Normalize canonicalizes a color literal to "#RRGGBB".
// Accepted forms: "#RRGGBB", "#RRGGBBAA" (alpha dropped), "0xRRGGBB",
// and "rgb:RR/GG/BB". Returns "" for anything else. Hex digit case is
// preserved.
func Normalize(literal string) string {
	s := strings.TrimSpace(literal)
	if s == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9):
		return s[:7]
	case strings.HasPrefix(s, "0x") && len(s) == 8:
		return "#" + s[2:]
	case strings.HasPrefix(s, "rgb:"):
		parts := strings.Split(s[4:], "/")
		if len(parts) == 3 && len(parts[0]) == 2 && len(parts[1]) == 2 && len(parts[2]) == 2 {
			return "#" + parts[0] + parts[1] + parts[2]
		}
	}
	return ""
}

// Blend linearly interpolates between two hex colors per RGB channel.
// t=0 yields hexA, t=1 yields hexB; channels are rounded and clamped to
// [0,255]. If either input is malformed the interpolation runs between a
// fixed dark/light pair instead of failing.
func Blend(hexA, hexB string, t float64) string {
	a, errA := parseHex(hexA)
	b, errB := parseHex(hexB)
	if errA != nil || errB != nil {
		a, _ = colorful.Hex(fallbackDark)
		b, _ = colorful.Hex(fallbackLight)
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}

// parseHex parses "#RRGGBB" or "#RGB", tolerating a missing leading "#".
func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return colorful.Hex(strings.ToLower(s))
}
