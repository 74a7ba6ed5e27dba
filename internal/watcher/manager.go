package watcher

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/restdeck/restdeck/internal/pathsafe"
	"github.com/restdeck/restdeck/internal/tracker"
)

// Config holds tuning for watch sessions.
type Config struct {
	// Debounce is the quiet period a file must hold still after its
	// last event before one notification fires for the whole burst.
	Debounce time.Duration

	// PollInterval is how often each session scans its pending queue.
	PollInterval time.Duration

	// Logger receives session activity and subscription errors.
	Logger *log.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debounce:     200 * time.Millisecond,
		PollInterval: 50 * time.Millisecond,
		Logger:       log.New(os.Stderr, "[watch] ", log.LstdFlags),
	}
}

// Manager owns the directory-to-session registry. It is an injectable
// value, not package state, so independent facades get independent
// registries.
type Manager struct {
	gate    pathsafe.Gate
	tracker *tracker.Tracker
	config  *Config

	mu       sync.Mutex
	sessions map[string]*session
}

// NewManager creates a Manager.
//
// If gate is nil, every path is allowed. If tr is nil, a private tracker
// is created. If config is nil, DefaultConfig applies.
func NewManager(gate pathsafe.Gate, tr *tracker.Tracker, config *Config) *Manager {
	if gate == nil {
		gate = pathsafe.AllowAll{}
	}
	if tr == nil {
		tr = tracker.New()
	}
	if config == nil {
		config = DefaultConfig()
	}
	if config.Logger == nil {
		config.Logger = log.New(os.Stderr, "[watch] ", log.LstdFlags)
	}
	return &Manager{
		gate:     gate,
		tracker:  tr,
		config:   config,
		sessions: make(map[string]*session),
	}
}

// Tracker returns the modification tracker sessions classify against.
func (m *Manager) Tracker() *tracker.Tracker {
	return m.tracker
}

// Watch starts a session for dir, delivering classified events to
// notifier. If a session for dir already exists it is torn down first:
// re-watching replaces, it never doubles delivery.
func (m *Manager) Watch(dir string, notifier Notifier) error {
	if notifier == nil {
		return fmt.Errorf("notifier cannot be nil")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if !m.gate.Allow(abs) {
		return fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, abs)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("failed to stat watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", abs)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sessions[abs]; ok {
		old.close()
		delete(m.sessions, abs)
	}

	sess, err := newSession(abs, notifier, m.tracker, m.config)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", abs, err)
	}
	m.sessions[abs] = sess

	m.config.Logger.Printf("Watching %s", abs)
	return nil
}

// Unwatch tears down the session for dir. Unwatching a directory that is
// not being watched is a no-op, not an error.
func (m *Manager) Unwatch(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[abs]; ok {
		sess.close()
		delete(m.sessions, abs)
		m.config.Logger.Printf("Stopped watching %s", abs)
	}
	return nil
}

// CloseAll tears down every session and clears the modification tracker.
// Called once at process shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for dir, sess := range m.sessions {
		sess.close()
		delete(m.sessions, dir)
	}
	m.tracker.Clear()
}

// ActiveSessions returns the number of directories currently watched.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
