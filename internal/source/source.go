// Package source implements the ordered palette providers: the omarchy theme
// manager's current theme, the user's terminal config, environment overrides,
// and the GTK-defaults placeholder. Providers never fail; they yield a
// possibly-empty palette and the chain merges them first-wins.
package source

import (
	"log/slog"

	"github.com/omnote/omnote/internal/palette"
)

// Source yields a possibly-partial palette from one location.
type Source interface {
	Name() string
	Resolve() palette.Palette
}

// Chain returns the providers in fixed priority order.
func Chain(logger *slog.Logger) []Source {
	if logger == nil {
		logger = slog.Default()
	}
	return []Source{
		NewOmarchySource(logger),
		NewTerminalSource(logger),
		NewEnvSource(logger),
		NewGTKDefaultsSource(),
	}
}

// ResolvePalette runs the full chain and merges the results, first non-empty
// value per field winning.
func ResolvePalette(logger *slog.Logger) palette.Palette {
	sources := Chain(logger)
	resolved := make([]palette.Palette, 0, len(sources))
	for _, s := range sources {
		resolved = append(resolved, s.Resolve())
	}
	return palette.Merge(resolved...)
}
