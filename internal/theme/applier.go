package theme

import (
	"log/slog"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Applier owns the application's installed stylesheet provider. At most one
// provider is installed at a time; applying a new stylesheet detaches the
// previous one first, and Clear leaves none installed so the OS theme shows
// through. All methods no-op when no display is available.
type Applier struct {
	logger   *slog.Logger
	provider *gtk.CSSProvider
}

// NewApplier creates an applier with no provider installed.
func NewApplier(logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Applier{logger: logger}
}

// Apply installs a provider loaded from stylesheet text.
func (a *Applier) Apply(css string) {
	a.install(func(p *gtk.CSSProvider) { p.LoadFromString(css) })
}

// ApplyPath installs a provider loaded from the stylesheet file at path.
func (a *Applier) ApplyPath(path string) {
	a.install(func(p *gtk.CSSProvider) { p.LoadFromPath(path) })
}

// Clear removes the installed provider, if any.
func (a *Applier) Clear() {
	a.install(nil)
}

func (a *Applier) install(load func(*gtk.CSSProvider)) {
	display := gdk.DisplayGetDefault()
	if display == nil {
		a.logger.Debug("no display available, skipping stylesheet update")
		return
	}

	if a.provider != nil {
		gtk.StyleContextRemoveProviderForDisplay(display, a.provider)
		a.provider = nil
	}

	if load == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	load(provider)
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	a.provider = provider
}
