package theme

import (
	"log/slog"
	"os"
	"strings"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/omnote/omnote/internal/config"
	"github.com/omnote/omnote/internal/darkmode"
	"github.com/omnote/omnote/internal/source"
)

// styleApplier abstracts the provider installation so orchestration logic is
// testable without a display.
type styleApplier interface {
	Apply(css string)
	ApplyPath(path string)
	Clear()
}

// Manager owns the theme pipeline: it resolves the palette, applies the
// generated stylesheet, and keeps it fresh through the filesystem watcher
// and the libadwaita color-scheme signal. The application shell holds
// exactly one Manager; the at-most-one-provider and at-most-one-watcher
// invariants live here.
type Manager struct {
	logger  *slog.Logger
	cfg     *config.Config
	applier styleApplier
	isDark  func() bool

	watcher  *Watcher
	sm       *adw.StyleManager
	smHandle coreglib.SignalHandle
}

// NewManager creates a theme manager for the given configuration.
func NewManager(cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Manager{
		logger:  logger,
		cfg:     cfg,
		applier: NewApplier(logger),
		isDark:  func() bool { return darkmode.IsDark(logger) },
	}
}

// ApplyBest resolves the palette through the provider chain and installs the
// matching stylesheet. Theme mode "system" clears the provider so the OS
// theme shows through; an entirely empty palette falls back to the user's
// gtk-4.0/gtk.css if present, else also clears.
func (m *Manager) ApplyBest() {
	if strings.ToLower(config.ThemeMode(m.cfg.Theme.Mode)) == "system" {
		m.logger.Debug("theme mode is system, inheriting OS theme")
		m.applier.Clear()
		return
	}

	merged := source.ResolvePalette(m.logger)
	if !merged.IsEmpty() {
		m.logger.Debug("applying palette stylesheet")
		m.applier.Apply(GenerateCSS(merged, m.isDark()))
		return
	}

	if userCSS := config.UserGTKCSS(); fileExists(userCSS) {
		m.logger.Debug("no palette found, applying user gtk.css", "path", userCSS)
		m.applier.ApplyPath(userCSS)
		return
	}

	m.logger.Debug("no palette or user stylesheet, inheriting OS theme")
	m.applier.Clear()
}

// Watch starts the live-reload machinery: a debounced filesystem watcher
// over the palette's input paths and a subscription to the libadwaita
// dark-mode property. Lazy and idempotent; at most one watcher exists.
func (m *Manager) Watch() {
	if m.watcher != nil {
		return
	}

	w, err := NewWatcher(source.WatchPaths(), func() {
		// Timer goroutine; re-apply on the GTK main loop.
		glib.IdleAdd(func() { m.ApplyBest() })
	}, m.logger)
	if err != nil {
		m.logger.Warn("failed to start theme watcher", "error", err)
	} else {
		m.watcher = w
	}

	if gdk.DisplayGetDefault() != nil && m.sm == nil {
		m.sm = adw.StyleManagerGetDefault()
		m.smHandle = m.sm.NotifyProperty("dark", func() {
			m.logger.Debug("color scheme changed")
			m.ApplyBest()
		})
	}
}

// Stop tears down the watcher and the color-scheme subscription. Safe to
// call without a prior Watch and safe to call twice.
func (m *Manager) Stop() {
	if m.sm != nil {
		m.sm.HandlerDisconnect(m.smHandle)
		m.sm = nil
		m.smHandle = 0
	}
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
	m.applier.Clear()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
