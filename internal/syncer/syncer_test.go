package syncer

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/restdeck/restdeck/internal/model"
	"github.com/restdeck/restdeck/internal/pathsafe"
	"github.com/restdeck/restdeck/internal/watcher"
)

func testSyncer(t *testing.T, gate pathsafe.Gate) Syncer {
	t.Helper()
	s := New(Options{
		Gate:   gate,
		Opener: recordingOpener{paths: &[]string{}},
		Watch: &watcher.Config{
			Debounce:     50 * time.Millisecond,
			PollInterval: 10 * time.Millisecond,
			Logger:       log.New(io.Discard, "", 0),
		},
		Logger: log.New(io.Discard, "", 0),
	})
	t.Cleanup(func() { s.Close() })
	return s
}

type recordingOpener struct {
	paths *[]string
}

func (r recordingOpener) Open(path string) error {
	*r.paths = append(*r.paths, path)
	return nil
}

// TestSyncer_SaveLoad verifies the facade round-trips a tree.
func TestSyncer_SaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	s := testSyncer(t, nil)

	col := &model.Collection{
		ID:   model.NewID(),
		Name: "Demo",
		Items: []model.Item{
			&model.RequestItem{
				ID:   model.NewID(),
				Name: "Get Users",
				Request: &model.HTTPRequest{
					ID: model.NewID(), Method: "GET", URL: "https://api.example.com/users",
				},
			},
		},
	}

	if err := s.SaveCollection(col, dir); err != nil {
		t.Fatalf("SaveCollection() failed: %v", err)
	}

	got, err := s.LoadCollection(dir)
	if err != nil {
		t.Fatalf("LoadCollection() failed: %v", err)
	}
	if got.Name != "Demo" || len(got.Items) != 1 {
		t.Errorf("unexpected tree: name=%q items=%d", got.Name, len(got.Items))
	}
	if got.ID == col.ID {
		t.Error("reloaded tree should carry fresh identifiers")
	}
	if got.SourcePath == "" {
		t.Error("loaded tree should record its source path")
	}
}

// TestSyncer_SelfSaveNotAConflict verifies a save during an active watch
// session does not read back as an external modification.
func TestSyncer_SelfSaveNotAConflict(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "demo")
	s := testSyncer(t, nil)

	col := &model.Collection{
		ID:   model.NewID(),
		Name: "Demo",
		Items: []model.Item{
			&model.RequestItem{
				ID:   model.NewID(),
				Name: "A",
				Request: &model.HTTPRequest{
					ID: model.NewID(), Method: "GET", URL: "https://x",
				},
			},
		},
	}
	if err := s.SaveCollection(col, dir); err != nil {
		t.Fatalf("initial SaveCollection() failed: %v", err)
	}

	events := make(chan watcher.Event, 16)
	err := s.WatchCollection(dir, watcher.NotifierFunc(func(e watcher.Event) {
		events <- e
	}))
	if err != nil {
		t.Fatalf("WatchCollection() failed: %v", err)
	}

	// Saving again rewrites every file; because save refreshes the
	// tracker, none of those writes should classify as modifications.
	if err := s.SaveCollection(col, dir); err != nil {
		t.Fatalf("second SaveCollection() failed: %v", err)
	}

	select {
	case e := <-events:
		if e.Type == watcher.Modified {
			t.Fatalf("self-save reported as external modification: %s", e.Path)
		}
	case <-time.After(600 * time.Millisecond):
	}
}

// TestSyncer_FileInfo covers the existing and missing cases.
func TestSyncer_FileInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "req.http.yaml")
	content := []byte("name: R\nmethod: GET\nurl: https://x\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s := testSyncer(t, nil)

	info, err := s.FileInfo(path)
	if err != nil {
		t.Fatalf("FileInfo() failed: %v", err)
	}
	if !info.Exists {
		t.Error("Exists = false for existing file")
	}
	if info.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", info.Size, len(content))
	}
	if info.LastModified.IsZero() {
		t.Error("LastModified should be set for existing file")
	}

	missing, err := s.FileInfo(filepath.Join(dir, "nope.http.yaml"))
	if err != nil {
		t.Fatalf("FileInfo() on missing file errored: %v", err)
	}
	if missing.Exists || missing.Size != 0 || !missing.LastModified.IsZero() {
		t.Errorf("missing file should be zero-valued, got %+v", missing)
	}
}

// TestSyncer_GateShortCircuit verifies every facade operation refuses a
// rejected path.
func TestSyncer_GateShortCircuit(t *testing.T) {
	allowed := t.TempDir()
	denied := t.TempDir()

	gate, err := pathsafe.NewRootGate(allowed)
	if err != nil {
		t.Fatalf("NewRootGate() failed: %v", err)
	}
	s := testSyncer(t, gate)

	if _, err := s.LoadCollection(denied); !errors.Is(err, pathsafe.ErrUnsafePath) {
		t.Errorf("LoadCollection error = %v, want ErrUnsafePath", err)
	}

	col := &model.Collection{ID: model.NewID(), Name: "Demo"}
	if err := s.SaveCollection(col, filepath.Join(denied, "out")); !errors.Is(err, pathsafe.ErrUnsafePath) {
		t.Errorf("SaveCollection error = %v, want ErrUnsafePath", err)
	}

	sink := watcher.NotifierFunc(func(watcher.Event) {})
	if err := s.WatchCollection(denied, sink); !errors.Is(err, pathsafe.ErrUnsafePath) {
		t.Errorf("WatchCollection error = %v, want ErrUnsafePath", err)
	}

	if _, err := s.FileInfo(filepath.Join(denied, "f")); !errors.Is(err, pathsafe.ErrUnsafePath) {
		t.Errorf("FileInfo error = %v, want ErrUnsafePath", err)
	}

	if err := s.Reveal(denied); !errors.Is(err, pathsafe.ErrUnsafePath) {
		t.Errorf("Reveal error = %v, want ErrUnsafePath", err)
	}
}

// TestSyncer_Reveal verifies the opener receives the resolved path.
func TestSyncer_Reveal(t *testing.T) {
	var opened []string
	s := New(Options{
		Opener: recordingOpener{paths: &opened},
		Logger: log.New(io.Discard, "", 0),
	})
	defer s.Close()

	dir := t.TempDir()
	if err := s.Reveal(dir); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if len(opened) != 1 || opened[0] != dir {
		t.Errorf("opener got %v, want [%s]", opened, dir)
	}
}

// TestSyncer_Independent verifies two syncers share no watch state.
func TestSyncer_Independent(t *testing.T) {
	dir := t.TempDir()
	a := testSyncer(t, nil)
	b := testSyncer(t, nil)

	sink := watcher.NotifierFunc(func(watcher.Event) {})
	if err := a.WatchCollection(dir, sink); err != nil {
		t.Fatalf("WatchCollection() failed: %v", err)
	}

	// Unwatching through the other syncer must not disturb the first.
	if err := b.UnwatchCollection(dir); err != nil {
		t.Fatalf("UnwatchCollection() failed: %v", err)
	}
	if err := a.UnwatchCollection(dir); err != nil {
		t.Fatalf("UnwatchCollection() on owner failed: %v", err)
	}
}
