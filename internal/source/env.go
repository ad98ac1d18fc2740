package source

import (
	"log/slog"

	"github.com/omnote/omnote/internal/config"
	"github.com/omnote/omnote/internal/palette"
)

// EnvSource reads per-field palette overrides from the environment
// (OMNOTE_BG and friends, legacy MICROPAD_* aliases accepted). Values are
// passed through verbatim.
type EnvSource struct {
	logger *slog.Logger
}

// NewEnvSource creates an environment-override provider.
func NewEnvSource(logger *slog.Logger) *EnvSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnvSource{logger: logger}
}

// Name implements Source.
func (s *EnvSource) Name() string { return "env" }

// Resolve implements Source.
func (s *EnvSource) Resolve() palette.Palette {
	pal := palette.Palette{
		Background:  config.Getenv("BG"),
		Foreground:  config.Getenv("FG"),
		SelectionBG: config.Getenv("SEL_BG"),
		SelectionFG: config.Getenv("SEL_FG"),
		Caret:       config.Getenv("CARET"),
	}
	if !pal.IsEmpty() {
		s.logger.Debug("using environment palette overrides")
	}
	return pal
}

// GTKDefaultsSource is the explicit no-op tail of the provider chain: the
// merged result falling through to it simply inherits the GTK theme.
type GTKDefaultsSource struct{}

// NewGTKDefaultsSource creates the defaults placeholder provider.
func NewGTKDefaultsSource() *GTKDefaultsSource { return &GTKDefaultsSource{} }

// Name implements Source.
func (*GTKDefaultsSource) Name() string { return "gtk-defaults" }

// Resolve implements Source. Always empty.
func (*GTKDefaultsSource) Resolve() palette.Palette { return palette.Palette{} }
