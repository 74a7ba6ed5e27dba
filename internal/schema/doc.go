// Package schema defines the on-disk YAML document formats for request
// collections and the read/write/validate functions for single files.
//
// A collection directory contains:
//
//	_collection.yaml   root metadata (name, description, auth, variables)
//	_folder.yaml       optional per-folder metadata (name, description)
//	*.http.yaml        one HTTP request definition per file
//	*.grpc.yaml        one gRPC request definition per file
//
// Documents are written with 2-space indentation and keys in the order the
// struct declares them; keys are never resorted on write. Optional fields
// are omitted entirely when empty so the serialized form stays minimal.
// No document stores identifiers: ids are ephemeral and exist only in the
// in-memory tree.
package schema
