// Package pathsafe provides the path safety gate consulted before every
// filesystem touch. Load, save, watch, and reveal all refuse a path the
// gate rejects, before any I/O is attempted.
package pathsafe

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is returned when the gate rejects a path. No filesystem
// operation is attempted for a rejected path.
var ErrUnsafePath = errors.New("path rejected by safety gate")

// Gate decides whether a path may be touched at all.
type Gate interface {
	// Allow reports whether path may be read, written, or watched.
	// The path is absolute by the time the gate sees it.
	Allow(path string) bool
}

// AllowAll is a Gate that permits every path. Useful as a default when the
// host application applies no confinement.
type AllowAll struct{}

// Allow implements Gate.
func (AllowAll) Allow(string) bool { return true }

// RootGate confines all access to paths at or beneath a single root
// directory, blocking traversal escapes like "../../etc/passwd".
type RootGate struct {
	root string
}

// NewRootGate creates a gate rooted at dir. The root is resolved to an
// absolute path once, up front.
func NewRootGate(dir string) (*RootGate, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve gate root: %w", err)
	}
	return &RootGate{root: abs}, nil
}

// Allow implements Gate. The root itself is allowed; everything else must
// sit strictly beneath it. The prefix check appends a separator so that
// /project-evil does not pass for a gate rooted at /project.
func (g *RootGate) Allow(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	if abs == g.root {
		return true
	}

	prefix := g.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(abs, prefix)
}
