// Package tracker records the last-observed modification time per file so
// that watch sessions can tell genuine external edits from noise.
//
// Entries are created when a file is first parsed during a load or first
// observed by a watcher, refreshed on every subsequent read, and removed
// only on explicit Forget (delete events) or Clear (shutdown). Collections
// are human-scale, so entries accumulating for the process lifetime is
// acceptable.
package tracker

import (
	"sync"
	"time"
)

// Tracker is a concurrency-safe map from absolute file path to the
// modification time last observed for that path.
type Tracker struct {
	mu    sync.Mutex
	times map[string]time.Time
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{
		times: make(map[string]time.Time),
	}
}

// Record stores or refreshes the observed modification time for path.
func (t *Tracker) Record(path string, mtime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.times[path] = mtime
}

// Get returns the recorded modification time for path and whether one
// exists.
func (t *Tracker) Get(path string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	mtime, ok := t.times[path]
	return mtime, ok
}

// Forget removes the entry for path, if any. Called on delete events.
func (t *Tracker) Forget(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.times, path)
}

// Clear removes every entry. Called at process shutdown.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.times = make(map[string]time.Time)
}

// Len returns the number of tracked paths.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.times)
}
