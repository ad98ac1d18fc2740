package source

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/omnote/omnote/internal/config"
	"github.com/omnote/omnote/internal/palette"
	"github.com/omnote/omnote/internal/termcfg"
)

// TerminalSource resolves the palette directly from the user's terminal
// emulator config (alacritty), trying structured parsing first and the
// import-expanded text scrape as fallback.
type TerminalSource struct {
	logger *slog.Logger
}

// NewTerminalSource creates a terminal-config provider.
func NewTerminalSource(logger *slog.Logger) *TerminalSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &TerminalSource{logger: logger}
}

// Name implements Source.
func (s *TerminalSource) Name() string { return "terminal" }

// Resolve implements Source.
func (s *TerminalSource) Resolve() palette.Palette {
	for _, cand := range config.AlacrittyCandidates() {
		if !pathExists(cand) {
			continue
		}

		switch strings.ToLower(filepath.Ext(cand)) {
		case ".toml", ".yml", ".yaml":
			if pal, ok := termcfg.ParseAlacrittyFile(cand); ok && !pal.IsEmpty() {
				s.logger.Debug("alacritty palette resolved", "path", cand)
				return pal
			}
		}

		if agg := termcfg.ExpandImports(cand); agg != "" {
			if pal := termcfg.ScrapeAlacritty(agg); !pal.IsEmpty() {
				s.logger.Debug("alacritty palette resolved via imports", "path", cand)
				return pal
			}
		}
	}

	s.logger.Debug("alacritty palette not found")
	return palette.Palette{}
}
