package watcher

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/restdeck/restdeck/internal/schema"
	"github.com/restdeck/restdeck/internal/tracker"
)

type pendingOp int

const (
	pendingAdd pendingOp = iota
	pendingWrite
	pendingDelete
)

type pendingChange struct {
	op   pendingOp
	last time.Time
}

type settledChange struct {
	path string
	op   pendingOp
}

// session is one fsnotify subscription covering a directory tree.
type session struct {
	dir      string
	fw       *fsnotify.Watcher
	notifier Notifier
	tracker  *tracker.Tracker
	logger   *log.Logger
	debounce time.Duration
	poll     time.Duration

	mu      sync.Mutex
	pending map[string]*pendingChange

	// deliveries feeds settled changes to the delivery goroutine, which
	// close never waits on. That keeps a notifier free to call back into
	// the manager without deadlocking teardown.
	deliveries chan settledChange

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func newSession(dir string, notifier Notifier, tr *tracker.Tracker, config *Config) (*session, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	s := &session{
		dir:        dir,
		fw:         fw,
		notifier:   notifier,
		tracker:    tr,
		logger:     config.Logger,
		debounce:   config.Debounce,
		poll:       config.PollInterval,
		pending:    make(map[string]*pendingChange),
		deliveries: make(chan settledChange, 64),
		done:       make(chan struct{}),
	}

	// Subscribe the whole tree up front; fsnotify watches are
	// per-directory. Dot-directories stay unwatched.
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	s.wg.Add(2)
	go s.run()
	go s.flushLoop()
	go s.deliver()

	return s, nil
}

// close tears the session down and waits for the event and flush
// goroutines to exit. The delivery goroutine is deliberately not waited
// on: a notifier may call Unwatch or Watch for this very directory, which
// would otherwise deadlock against the manager's lock. Safe to call more
// than once.
func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		if err := s.fw.Close(); err != nil {
			s.logger.Printf("Error closing watch on %s: %v", s.dir, err)
		}
		s.wg.Wait()
		// The flush goroutine has exited, so nothing sends anymore;
		// the delivery goroutine drains what is left and stops.
		close(s.deliveries)
	})
}

// run drains the fsnotify channels. Subscription errors are logged and
// never forwarded to the notifier or the caller; the session keeps
// running.
func (s *session) run() {
	defer s.wg.Done()

	for {
		select {
		case <-s.done:
			return

		case ev, ok := <-s.fw.Events:
			if !ok {
				return
			}
			s.handle(ev)

		case err, ok := <-s.fw.Errors:
			if !ok {
				return
			}
			s.logger.Printf("Watch error on %s: %v", s.dir, err)
		}
	}
}

// handle filters and queues one raw event.
func (s *session) handle(ev fsnotify.Event) {
	path := ev.Name
	if s.hiddenPath(path) {
		return
	}

	// A created directory joins the subscription instead of producing
	// an event of its own.
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := s.fw.Add(path); err != nil {
				s.logger.Printf("Cannot watch new directory %s: %v", path, err)
			}
			return
		}
	}

	if !interestingFile(filepath.Base(path)) {
		return
	}

	switch {
	case ev.Has(fsnotify.Create):
		s.queue(path, pendingAdd)
	case ev.Has(fsnotify.Write):
		s.queue(path, pendingWrite)
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		// A rename reads as a delete; the new name arrives as its own
		// create event.
		s.queue(path, pendingDelete)
	}
	// Chmod and everything else is ignored.
}

// queue records a pending change, restarting the file's quiet period.
// Writes never downgrade a pending add: a file that appeared and is
// still being written settles as one "added".
func (s *session) queue(path string, op pendingOp) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.pending[path]; ok {
		if !(existing.op == pendingAdd && op == pendingWrite) {
			existing.op = op
		}
		existing.last = time.Now()
		return
	}
	s.pending[path] = &pendingChange{op: op, last: time.Now()}
}

// flushLoop periodically settles pending changes whose quiet period has
// elapsed.
func (s *session) flushLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.flush()
		}
	}
}

// flush hands every settled change to the delivery goroutine. Teardown
// aborts the handoff rather than blocking on a full channel.
func (s *session) flush() {
	now := time.Now()

	s.mu.Lock()
	var ready []settledChange
	for path, change := range s.pending {
		if now.Sub(change.last) < s.debounce {
			continue
		}
		ready = append(ready, settledChange{path: path, op: change.op})
		delete(s.pending, path)
	}
	s.mu.Unlock()

	for _, r := range ready {
		select {
		case s.deliveries <- r:
		case <-s.done:
			return
		}
	}
}

// deliver classifies and notifies from its own goroutine. Nothing waits
// on it, so a notifier can call back into the manager, including
// unwatching or re-watching the session's own directory. Changes still
// queued when the session closes are dropped.
func (s *session) deliver() {
	for d := range s.deliveries {
		select {
		case <-s.done:
			continue
		default:
		}
		s.classify(d.path, d.op)
	}
}

// classify turns one settled change into at most one notification,
// consulting the tracker for writes.
func (s *session) classify(path string, op pendingOp) {
	switch op {
	case pendingDelete:
		s.notifier.Notify(Event{Type: Deleted, Path: path, Dir: s.dir})
		s.tracker.Forget(path)

	case pendingAdd:
		info, err := os.Stat(path)
		if err != nil {
			// Appeared and vanished within the quiet period.
			return
		}
		s.notifier.Notify(Event{
			Type:         Added,
			Path:         path,
			Dir:          s.dir,
			LastModified: info.ModTime(),
		})
		s.tracker.Record(path, info.ModTime())

	case pendingWrite:
		info, err := os.Stat(path)
		if err != nil {
			return
		}
		mtime := info.ModTime()
		prev, ok := s.tracker.Get(path)
		if ok && mtime.After(prev) {
			s.notifier.Notify(Event{
				Type:         Modified,
				Path:         path,
				Dir:          s.dir,
				LastModified: mtime,
			})
		}
		// Refreshed regardless of whether anything was reported.
		s.tracker.Record(path, mtime)
	}
}

// hiddenPath reports whether any path segment below the watched root is
// a dotfile.
func (s *session) hiddenPath(path string) bool {
	rel, err := filepath.Rel(s.dir, path)
	if err != nil {
		return true
	}
	// The watched root itself relativizes to "." and is not hidden.
	if rel == "." {
		return false
	}
	for _, seg := range strings.Split(rel, string(filepath.Separator)) {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

// interestingFile reports whether a base name is one this subsystem
// manages: request files and collection/folder metadata.
func interestingFile(name string) bool {
	return schema.IsRequestFile(name) || schema.IsMetadataFile(name)
}
