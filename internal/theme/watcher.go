package theme

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow is the quiet period between a filesystem event and the
// palette re-application it triggers.
const debounceWindow = 150 * time.Millisecond

// Watcher listens for changes on the palette's input paths and invokes the
// change callback after a debounce window. Every event schedules its own
// one-shot timer; bursts within a window each get a timer, and the redundant
// callbacks are harmless because re-applying the same palette is idempotent.
type Watcher struct {
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
	onChange func()
	debounce time.Duration

	mu      sync.Mutex
	timers  map[uint64]*time.Timer
	nextID  uint64
	stopped bool
}

// NewWatcher creates a watcher over the given paths. Paths that cannot be
// monitored are logged and skipped; one bad path never prevents watching the
// rest. The callback fires on a timer goroutine; callers that touch GTK
// must marshal onto the main loop themselves.
func NewWatcher(paths []string, onChange func(), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		logger:   logger,
		fsw:      fsw,
		onChange: onChange,
		debounce: debounceWindow,
		timers:   make(map[uint64]*time.Timer),
	}

	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			logger.Debug("failed to watch path", "path", p, "error", err)
			continue
		}
		logger.Debug("watching", "path", p)
	}

	go w.loop()
	return w, nil
}

// loop drains fsnotify events until the watcher is closed.
func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.logger.Debug("theme input changed", "path", event.Name, "op", event.Op)
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Debug("watch error", "error", err)
		}
	}
}

// schedule arms an independent one-shot debounce timer. Timers already
// pending are left alone; each fires the callback once and discards itself.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}

	id := w.nextID
	w.nextID++

	w.timers[id] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		_, live := w.timers[id]
		delete(w.timers, id)
		stopped := w.stopped
		w.mu.Unlock()

		if live && !stopped {
			w.onChange()
		}
	})
}

// pendingTimers reports how many debounce timers are armed.
func (w *Watcher) pendingTimers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

// Stop cancels the filesystem watcher and every pending debounce timer.
// Safe to call more than once; teardown is best-effort.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	for id, t := range w.timers {
		t.Stop()
		delete(w.timers, id)
	}
	w.mu.Unlock()

	if err := w.fsw.Close(); err != nil {
		w.logger.Debug("error closing fs watcher", "error", err)
	}
	w.logger.Debug("theme watcher stopped")
}
