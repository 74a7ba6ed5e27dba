package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/restdeck/restdeck/internal/model"
	"github.com/restdeck/restdeck/internal/pathsafe"
	"github.com/restdeck/restdeck/internal/schema"
	"github.com/restdeck/restdeck/internal/tracker"
)

// Store serializes collection trees to and from a directory layout.
type Store struct {
	gate    pathsafe.Gate
	tracker *tracker.Tracker
	logger  *log.Logger
}

// New creates a Store.
//
// If gate is nil, every path is allowed. If tr is nil, a private tracker
// is created. If logger is nil, a default logger writing to stderr is
// used.
func New(gate pathsafe.Gate, tr *tracker.Tracker, logger *log.Logger) *Store {
	if gate == nil {
		gate = pathsafe.AllowAll{}
	}
	if tr == nil {
		tr = tracker.New()
	}
	if logger == nil {
		logger = log.New(os.Stderr, "[store] ", log.LstdFlags)
	}
	return &Store{
		gate:    gate,
		tracker: tr,
		logger:  logger,
	}
}

// Tracker returns the modification tracker the store records into.
func (s *Store) Tracker() *tracker.Tracker {
	return s.tracker
}

// Load reads a collection directory into a tree.
//
// The directory must pass the safety gate, exist, and contain a valid
// _collection.yaml; any of those failing fails the whole load. Child
// entries are visited depth-first; per-child failures degrade locally
// and are logged rather than aborting the walk.
func (s *Store) Load(dir string) (*model.Collection, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if !s.gate.Allow(abs) {
		return nil, fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, abs)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat collection directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", abs)
	}

	rootPath := filepath.Join(abs, schema.CollectionFileName)
	doc, err := schema.ReadCollectionFile(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection metadata: %w", err)
	}
	s.recordMtime(rootPath)

	col := collectionFromFile(doc)
	col.SourcePath = abs
	col.Items = s.loadItems(abs)

	return col, nil
}

// loadItems walks one directory level and returns its items in directory
// enumeration order.
func (s *Store) loadItems(dir string) []model.Item {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Printf("Warning: cannot list %s: %v", dir, err)
		return nil
	}

	var items []model.Item
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)
		if !s.gate.Allow(path) {
			s.logger.Printf("Warning: skipping %s: rejected by safety gate", path)
			continue
		}

		if entry.IsDir() {
			items = append(items, s.loadFolder(path, name))
			continue
		}

		if schema.IsMetadataFile(name) {
			continue
		}

		switch {
		case strings.HasSuffix(name, schema.HTTPSuffix):
			if item, ok := s.loadHTTPRequest(path); ok {
				items = append(items, item)
			}
		case strings.HasSuffix(name, schema.GRPCSuffix):
			if item, ok := s.loadGRPCRequest(path); ok {
				items = append(items, item)
			}
		}
		// Anything else is ignored.
	}

	return items
}

// loadFolder builds a Folder from a subdirectory. A missing metadata file
// is normal; an unparseable one is logged. Either way the folder falls
// back to the directory's base name and the walk continues into it.
func (s *Store) loadFolder(dir, baseName string) *model.Folder {
	folder := &model.Folder{
		ID:         model.NewID(),
		Name:       baseName,
		SourcePath: dir,
	}

	metaPath := filepath.Join(dir, schema.FolderFileName)
	doc, err := schema.ReadFolderFile(metaPath)
	switch {
	case err == nil:
		if doc.Name != "" {
			folder.Name = doc.Name
		}
		folder.Description = doc.Description
		s.recordMtime(metaPath)
	case errors.Is(err, os.ErrNotExist):
		// No metadata file; the directory name stands in.
	default:
		s.logger.Printf("Warning: unreadable folder metadata %s: %v", metaPath, err)
	}

	folder.Items = s.loadItems(dir)
	return folder
}

// loadHTTPRequest parses one *.http.yaml file. Parse failures are logged
// and the file is skipped.
func (s *Store) loadHTTPRequest(path string) (*model.RequestItem, bool) {
	doc, err := schema.ReadHTTPRequestFile(path)
	if err != nil {
		s.logger.Printf("Warning: skipping request file %s: %v", path, err)
		return nil, false
	}
	s.recordMtime(path)

	return &model.RequestItem{
		ID:         model.NewID(),
		Name:       doc.Name,
		Request:    httpRequestFromFile(doc),
		SourcePath: path,
	}, true
}

// loadGRPCRequest parses one *.grpc.yaml file. Parse failures are logged
// and the file is skipped.
func (s *Store) loadGRPCRequest(path string) (*model.RequestItem, bool) {
	doc, err := schema.ReadGRPCRequestFile(path)
	if err != nil {
		s.logger.Printf("Warning: skipping request file %s: %v", path, err)
		return nil, false
	}
	s.recordMtime(path)

	return &model.RequestItem{
		ID:         model.NewID(),
		Name:       doc.Name,
		Request:    grpcRequestFromFile(doc),
		SourcePath: path,
	}, true
}

// Save writes a collection tree beneath dir, creating the directory and
// its ancestors as needed.
//
// Item names are sanitized into path segments; siblings whose names
// collapse to the same segment get a numeric suffix rather than
// overwriting each other. Every written file's modification time is
// recorded with the tracker so an active watch session does not mistake
// this save for an external edit. Files belonging to items no longer in
// the tree are left alone.
func (s *Store) Save(col *model.Collection, dir string) error {
	if err := col.Validate(); err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if !s.gate.Allow(abs) {
		return fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, abs)
	}

	if err := os.MkdirAll(abs, 0755); err != nil {
		return fmt.Errorf("failed to create collection directory: %w", err)
	}

	rootPath := filepath.Join(abs, schema.CollectionFileName)
	if !s.gate.Allow(rootPath) {
		return fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, rootPath)
	}
	if err := schema.WriteCollectionFile(rootPath, collectionToFile(col)); err != nil {
		return fmt.Errorf("failed to write collection metadata: %w", err)
	}
	s.recordMtime(rootPath)

	col.SourcePath = abs
	return s.saveItems(col.Items, abs)
}

// saveItems writes one directory level. Unlike load, save failures are
// fatal: a tree that cannot be written in full reports the first error.
func (s *Store) saveItems(items []model.Item, dir string) error {
	used := make(map[string]int)

	for _, item := range items {
		switch it := item.(type) {
		case *model.Folder:
			if err := s.saveFolder(it, dir, used); err != nil {
				return err
			}
		case *model.RequestItem:
			if err := s.saveRequest(it, dir, used); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown item type %T", item)
		}
	}

	return nil
}

func (s *Store) saveFolder(folder *model.Folder, dir string, used map[string]int) error {
	seg := uniqueSegment(used, segmentFor(folder.Name), "")
	sub := filepath.Join(dir, seg)
	if !s.gate.Allow(sub) {
		return fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, sub)
	}

	if err := os.MkdirAll(sub, 0755); err != nil {
		return fmt.Errorf("failed to create folder directory %s: %w", sub, err)
	}

	metaPath := filepath.Join(sub, schema.FolderFileName)
	if !s.gate.Allow(metaPath) {
		return fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, metaPath)
	}
	doc := &schema.FolderFile{
		Name:        folder.Name,
		Description: folder.Description,
	}
	if err := schema.WriteFolderFile(metaPath, doc); err != nil {
		return fmt.Errorf("failed to write folder metadata: %w", err)
	}
	s.recordMtime(metaPath)

	folder.SourcePath = sub
	return s.saveItems(folder.Items, sub)
}

func (s *Store) saveRequest(item *model.RequestItem, dir string, used map[string]int) error {
	var suffix string
	switch item.Request.(type) {
	case *model.HTTPRequest:
		suffix = schema.HTTPSuffix
	case *model.GRPCRequest:
		suffix = schema.GRPCSuffix
	default:
		return fmt.Errorf("request %q has unknown payload type %T", item.Name, item.Request)
	}

	name := uniqueSegment(used, segmentFor(item.Name), suffix)
	path := filepath.Join(dir, name)
	if !s.gate.Allow(path) {
		return fmt.Errorf("%w: %s", pathsafe.ErrUnsafePath, path)
	}

	var err error
	switch req := item.Request.(type) {
	case *model.HTTPRequest:
		err = schema.WriteHTTPRequestFile(path, httpRequestToFile(item.Name, req))
	case *model.GRPCRequest:
		err = schema.WriteGRPCRequestFile(path, grpcRequestToFile(item.Name, req))
	}
	if err != nil {
		return fmt.Errorf("failed to write request %q: %w", item.Name, err)
	}
	s.recordMtime(path)

	item.SourcePath = path
	return nil
}

// segmentFor sanitizes a display name, substituting a placeholder when
// nothing survives sanitization.
func segmentFor(name string) string {
	seg := model.SanitizeName(name)
	if seg == "" {
		return "untitled"
	}
	return seg
}

// uniqueSegment reserves base+suffix within one directory, appending a
// numeric suffix when siblings collide ("get-users", "get-users-2", ...).
func uniqueSegment(used map[string]int, base, suffix string) string {
	key := base + suffix
	n := used[key]
	used[key] = n + 1
	if n == 0 {
		return key
	}
	return fmt.Sprintf("%s-%d%s", base, n+1, suffix)
}

// recordMtime refreshes the tracker with a file's current modification
// time. Failures to stat are ignored: the tracker entry simply stays as
// it was.
func (s *Store) recordMtime(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	s.tracker.Record(path, info.ModTime())
}
