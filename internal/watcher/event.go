package watcher

import "time"

// EventType classifies a change delivered to the notification sink.
type EventType int

const (
	// Added indicates a recognized file appeared under the watched
	// directory. Initial directory contents never fire Added; only
	// genuine subsequent creates do.
	Added EventType = iota

	// Modified indicates a recognized file's modification time advanced
	// beyond what the tracker last recorded.
	Modified

	// Deleted indicates a recognized file was removed or renamed away.
	Deleted
)

// String returns the wire name of the event type.
func (t EventType) String() string {
	switch t {
	case Added:
		return "added"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event is a classified filesystem change pushed to a Notifier.
type Event struct {
	// Type is the classification.
	Type EventType

	// Path is the absolute path of the affected file.
	Path string

	// Dir is the watched directory the event belongs to.
	Dir string

	// LastModified is the file's modification time at classification
	// time. Zero for Deleted events.
	LastModified time.Time
}

// Notifier receives classified events. Delivery is fire-and-forget; the
// watcher does not wait for acknowledgment and a slow Notifier delays
// only its own session's queue.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Event)

// Notify implements Notifier.
func (f NotifierFunc) Notify(e Event) { f(e) }
