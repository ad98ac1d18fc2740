package termcfg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// maxImportDepth caps recursive import expansion.
const maxImportDepth = 8

var (
	// [ \t] instead of \s: the directive's value must stay on its own line
	// so a bare "imports:" leaves the capture empty and the dashed-list scan
	// of the following lines runs.
	importLineRe = regexp.MustCompile(`(?mi)^[ \t]*imports?[ \t]*:[ \t]*(.*)$`)
	quotedPathRe = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
	dashedItemRe = regexp.MustCompile(`^\s*-\s*(?:"([^"]+)"|'([^']+)')\s*$`)
)

// blockStarters end a dashed import list when scanning following lines.
var blockStarters = []string{"#", "colors:", "primary:", "cursor:", "selection:", "schemes:", "themes:"}

// ExpandImports reads the config at path and recursively expands its
// import(s) directives. Imported text comes first and the importer's own
// text is appended last, so when the scraper takes the first match a key in
// the main file shadows the same key from an import. Each resolved file is
// visited at most once, making cycles safe.
func ExpandImports(path string) string {
	return expandImports(path, map[string]bool{}, 0)
}

func expandImports(path string, visited map[string]bool, depth int) string {
	if depth > maxImportDepth {
		return ""
	}
	path = resolvePath(path)
	if visited[path] {
		return ""
	}
	visited[path] = true

	txt := readFile(path)
	if txt == "" {
		return ""
	}
	baseDir := filepath.Dir(path)

	var combined []string

	for _, loc := range importLineRe.FindAllStringSubmatchIndex(txt, -1) {
		val := strings.TrimSpace(txt[loc[2]:loc[3]])

		var paths []string
		for _, qm := range quotedPathRe.FindAllStringSubmatch(val, -1) {
			if p := firstGroup(qm); p != "" {
				paths = append(paths, p)
			}
		}

		// No inline paths: the directive may introduce a dashed list on the
		// following lines.
		if len(paths) == 0 && (val == "" || strings.HasSuffix(val, ":") || val == "|" || val == ">") {
			paths = dashedList(txt[loc[1]:])
		}

		for _, raw := range paths {
			for _, resolved := range expandGlob(raw, baseDir) {
				if sub := expandImports(resolved, visited, depth+1); sub != "" {
					combined = append(combined, sub)
				}
			}
		}
	}

	combined = append(combined, txt)
	return strings.Join(combined, "\n")
}

// dashedList collects quoted "- path" items until a non-item line or a new
// config block begins.
func dashedList(after string) []string {
	var paths []string
	for _, line := range strings.Split(after, "\n") {
		trimmed := strings.TrimSpace(line)
		if startsBlock(trimmed) {
			break
		}
		if m := dashedItemRe.FindStringSubmatch(line); m != nil {
			if p := firstGroup(m); p != "" {
				paths = append(paths, p)
			}
		} else if trimmed != "" && !strings.HasPrefix(trimmed, "-") {
			break
		}
	}
	return paths
}

func startsBlock(trimmed string) bool {
	for _, prefix := range blockStarters {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// firstGroup returns the first non-empty capture of a two-group match.
func firstGroup(m []string) string {
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

// expandGlob resolves an import entry to concrete paths: ~ expansion,
// relative paths resolved against the importing file's directory, and glob
// patterns expanded. Nonexistent literals yield nothing.
func expandGlob(raw, baseDir string) []string {
	raw = expandHome(raw)
	if !filepath.IsAbs(raw) {
		raw = filepath.Join(baseDir, raw)
	}
	matches, err := filepath.Glob(raw)
	if err != nil {
		return nil
	}
	return matches
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// resolvePath canonicalizes a path for the visited set, following symlinks
// when possible.
func resolvePath(path string) string {
	if abs, err := filepath.Abs(expandHome(path)); err == nil {
		path = abs
	}
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}
