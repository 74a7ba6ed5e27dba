package syncer

import (
	"time"

	"github.com/restdeck/restdeck/internal/model"
	"github.com/restdeck/restdeck/internal/watcher"
)

// FileInfo answers a UI-side query about one file, typically while
// prompting the user to resolve a conflict.
type FileInfo struct {
	// Exists reports whether the path currently exists.
	Exists bool

	// LastModified is the on-disk modification time. Zero when the
	// file does not exist.
	LastModified time.Time

	// Size is the file size in bytes. Zero when the file does not
	// exist.
	Size int64
}

// Syncer is the collection sync facade.
//
// Load and save move whole trees between memory and disk; watch and
// unwatch manage background change detection per directory. The syncer
// never mutates a loaded tree on its own: edits happen in the caller's
// hands between load and save.
type Syncer interface {
	// LoadCollection reads the collection rooted at dir into a tree
	// with fresh ephemeral identifiers.
	//
	// The directory must pass the safety gate and contain a valid
	// _collection.yaml. Malformed request files inside are skipped
	// with a logged warning rather than failing the load.
	LoadCollection(dir string) (*model.Collection, error)

	// SaveCollection writes the tree beneath dir, creating directories
	// as needed. Identifiers are stripped; files for items no longer
	// in the tree are left on disk untouched.
	SaveCollection(col *model.Collection, dir string) error

	// WatchCollection starts background change detection for dir,
	// delivering classified events to notifier. Watching an already
	// watched directory replaces the prior session.
	WatchCollection(dir string, notifier watcher.Notifier) error

	// UnwatchCollection stops watching dir. A directory that is not
	// being watched is a no-op success.
	UnwatchCollection(dir string) error

	// FileInfo reports existence, modification time, and size for one
	// path. A missing file is not an error; Exists is simply false.
	FileInfo(path string) (FileInfo, error)

	// Reveal opens the path in the OS file browser.
	Reveal(path string) error

	// Close tears down every watch session and clears tracked state.
	// Call once at shutdown.
	Close() error
}
