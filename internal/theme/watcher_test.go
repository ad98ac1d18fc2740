package theme

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, paths []string, count *atomic.Int32) *Watcher {
	t.Helper()
	w, err := NewWatcher(paths, func() { count.Add(1) }, nil)
	require.NoError(t, err)
	t.Cleanup(w.Stop)
	return w
}

func TestWatcher_FileChangeTriggersCallback(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "alacritty.toml")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0644))

	var count atomic.Int32
	newTestWatcher(t, []string{dir}, &count)

	require.NoError(t, os.WriteFile(file, []byte("b"), 0644))

	assert.Eventually(t, func() bool { return count.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestWatcher_EachEventSchedulesIndependentTimer(t *testing.T) {
	var count atomic.Int32
	w := newTestWatcher(t, nil, &count)

	// Three events inside one debounce window: three timers, no coalescing.
	w.schedule()
	w.schedule()
	w.schedule()
	assert.Equal(t, 3, w.pendingTimers())

	assert.Eventually(t, func() bool { return count.Load() == 3 },
		2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, w.pendingTimers())
}

func TestWatcher_StopCancelsPendingTimers(t *testing.T) {
	var count atomic.Int32
	w := newTestWatcher(t, nil, &count)

	w.schedule()
	w.schedule()
	w.Stop()

	time.Sleep(2 * debounceWindow)
	assert.Equal(t, int32(0), count.Load())
	assert.Equal(t, 0, w.pendingTimers())
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	var count atomic.Int32
	w := newTestWatcher(t, nil, &count)
	w.Stop()
	w.Stop()

	// Scheduling after stop is a no-op.
	w.schedule()
	assert.Equal(t, 0, w.pendingTimers())
}

func TestWatcher_BadPathsAreSkipped(t *testing.T) {
	dir := t.TempDir()
	var count atomic.Int32
	// One unwatchable path must not prevent watching the rest.
	newTestWatcher(t, []string{filepath.Join(dir, "missing"), dir}, &count)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0644))
	assert.Eventually(t, func() bool { return count.Load() >= 1 },
		2*time.Second, 10*time.Millisecond)
}
