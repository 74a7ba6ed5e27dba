// Package store maps the in-memory collection tree onto an on-disk
// directory layout and back.
//
// Load walks a collection directory depth-first, parses every recognized
// file, assigns fresh ephemeral identifiers, and records each parsed
// file's modification time with the tracker. The root metadata file is
// required; everything beneath it degrades locally: an unreadable folder
// metadata file falls back to the directory name, and a malformed request
// file is logged and skipped without failing the rest of the load.
//
// Save derives file and directory names from item display names, strips
// identifiers, and writes minimal YAML documents. Files for items removed
// from the tree since the last load are left on disk; there is no orphan
// collection.
package store
