package app

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/omnote/omnote/internal/config"
	"github.com/omnote/omnote/internal/theme"
)

const appID = "io.github.omnote.OmNote"

// App ties together the GTK application, the note window and the theme
// manager.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates the application shell.
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, logger: logger}
}

// Run starts the GTK main loop and blocks until the application exits.
// The returned status is the process exit code.
func (a *App) Run(args []string) int {
	gtkApp := adw.NewApplication(appID, 0)
	themeMgr := theme.NewManager(a.cfg, a.logger)

	var win *window

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		a.logger.Info("received signal, shutting down", "signal", sig)
		glib.IdleAdd(func() {
			if win != nil {
				win.stopAutosave()
				win.saveAll()
			}
			themeMgr.Stop()
			gtkApp.Quit()
		})
	}()

	gtkApp.ConnectActivate(func() {
		if win != nil {
			win.present()
			return
		}

		store, err := NewNoteStore(config.NotesPath(), a.logger)
		if err != nil {
			a.logger.Error("failed to open notes directory", "error", err)
			gtkApp.Quit()
			return
		}

		themeMgr.ApplyBest()
		if a.cfg.Theme.Watch && !config.NoWatch() {
			themeMgr.Watch()
		}

		win = newWindow(gtkApp, store, a.cfg, a.logger)
		win.present()
	})

	status := gtkApp.Run(args)
	signal.Stop(sigCh)
	themeMgr.Stop()
	return status
}
