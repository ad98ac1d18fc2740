// Package darkmode resolves the user's dark/light preference. Inside the GTK
// process the libadwaita style manager is authoritative; headless callers
// (the theme subcommand) fall back to the XDG settings portal and then the
// gsettings CLI.
package darkmode

import "log/slog"

// Detector answers the dark-mode question from one backend.
type Detector interface {
	Name() string
	// Detect returns the preference and whether this backend could answer.
	Detect() (dark bool, ok bool)
}

// DefaultChain returns the detectors in priority order.
func DefaultChain() []Detector {
	return []Detector{
		NewAdwaitaDetector(),
		NewPortalDetector(),
		NewGsettingsDetector(),
	}
}

// IsDark runs the detector chain and returns the first answer, defaulting to
// dark when no backend can tell.
func IsDark(logger *slog.Logger) bool {
	return isDark(logger, DefaultChain())
}

func isDark(logger *slog.Logger, chain []Detector) bool {
	if logger == nil {
		logger = slog.Default()
	}
	for _, d := range chain {
		if dark, ok := d.Detect(); ok {
			logger.Debug("dark mode detected", "backend", d.Name(), "dark", dark)
			return dark
		}
	}
	logger.Debug("dark mode undetermined, defaulting to dark")
	return true
}
