// Package termcfg extracts color palettes from terminal emulator
// configuration files. Three dialects are supported: alacritty (structured
// TOML/YAML with a text-scrape fallback and import expansion), kitty
// (whitespace-separated key value lines) and foot (key = value lines).
//
// Parsers never fail: malformed or missing input degrades to an empty or
// partial palette.
package termcfg

import (
	"fmt"
	"os"
	"regexp"

	"github.com/omnote/omnote/internal/color"
)

// hexPattern matches the color literal forms accepted by color.Normalize.
const hexPattern = `(?:#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|0x[0-9a-fA-F]{6}|rgb:[0-9a-fA-F]{2}/[0-9a-fA-F]{2}/[0-9a-fA-F]{2})`

// readFile returns the file's text, or "" on any error.
func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// grab returns the normalized first match of pattern's capture group in txt.
func grab(txt, pattern string) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(txt)
	if m == nil {
		return ""
	}
	return color.Normalize(m[1])
}

// lineValue scrapes a line-oriented "key sep value" entry, where sep is a
// regex fragment such as `\s+` or `\s*=\s*`.
func lineValue(txt, key, sep string) string {
	return grab(txt, fmt.Sprintf(`(?mi)^\s*%s%s(%s)`, regexp.QuoteMeta(key), sep, hexPattern))
}
