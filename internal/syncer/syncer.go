package syncer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/restdeck/restdeck/internal/model"
	"github.com/restdeck/restdeck/internal/pathsafe"
	"github.com/restdeck/restdeck/internal/reveal"
	"github.com/restdeck/restdeck/internal/store"
	"github.com/restdeck/restdeck/internal/tracker"
	"github.com/restdeck/restdeck/internal/watcher"
)

// Options configures a Syncer. The zero value is usable: every path is
// allowed, the OS file browser is used for Reveal, watch timing follows
// watcher.DefaultConfig, and logs go to stderr.
type Options struct {
	// Gate confines which paths the syncer may touch.
	Gate pathsafe.Gate

	// Opener handles Reveal. Defaults to reveal.OSOpener.
	Opener reveal.Opener

	// Watch tunes debounce and poll timing for watch sessions.
	Watch *watcher.Config

	// Logger receives warnings and session activity.
	Logger *log.Logger
}

// collectionSyncer implements the Syncer interface.
type collectionSyncer struct {
	gate    pathsafe.Gate
	opener  reveal.Opener
	tracker *tracker.Tracker
	store   *store.Store
	watches *watcher.Manager
	logger  *log.Logger
}

// New creates a Syncer with its own tracker and session registry.
func New(opts Options) Syncer {
	gate := opts.Gate
	if gate == nil {
		gate = pathsafe.AllowAll{}
	}
	opener := opts.Opener
	if opener == nil {
		opener = reveal.OSOpener{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "[sync] ", log.LstdFlags)
	}

	watchCfg := opts.Watch
	if watchCfg == nil {
		watchCfg = watcher.DefaultConfig()
		watchCfg.Logger = logger
	}

	tr := tracker.New()
	return &collectionSyncer{
		gate:    gate,
		opener:  opener,
		tracker: tr,
		store:   store.New(gate, tr, logger),
		watches: watcher.NewManager(gate, tr, watchCfg),
		logger:  logger,
	}
}

// LoadCollection implements Syncer.
func (s *collectionSyncer) LoadCollection(dir string) (*model.Collection, error) {
	return s.store.Load(dir)
}

// SaveCollection implements Syncer.
func (s *collectionSyncer) SaveCollection(col *model.Collection, dir string) error {
	return s.store.Save(col, dir)
}

// WatchCollection implements Syncer.
func (s *collectionSyncer) WatchCollection(dir string, notifier watcher.Notifier) error {
	return s.watches.Watch(dir, notifier)
}

// UnwatchCollection implements Syncer.
func (s *collectionSyncer) UnwatchCollection(dir string) error {
	return s.watches.Unwatch(dir)
}

// FileInfo implements Syncer.
func (s *collectionSyncer) FileInfo(path string) (FileInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if !s.gate.Allow(abs) {
		return FileInfo{}, fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, abs)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return FileInfo{}, nil
	}
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to stat %s: %w", abs, err)
	}

	return FileInfo{
		Exists:       true,
		LastModified: info.ModTime(),
		Size:         info.Size(),
	}, nil
}

// Reveal implements Syncer.
func (s *collectionSyncer) Reveal(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if !s.gate.Allow(abs) {
		return fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, abs)
	}
	return s.opener.Open(abs)
}

// Close implements Syncer.
func (s *collectionSyncer) Close() error {
	s.watches.CloseAll()
	return nil
}
