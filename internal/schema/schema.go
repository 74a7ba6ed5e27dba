package schema

import (
	"fmt"
	"strings"
)

// Well-known file names and suffixes inside a collection directory.
const (
	// CollectionFileName is the required root metadata file.
	CollectionFileName = "_collection.yaml"

	// FolderFileName is the optional per-folder metadata file.
	FolderFileName = "_folder.yaml"

	// HTTPSuffix marks a file as an HTTP request definition.
	HTTPSuffix = ".http.yaml"

	// GRPCSuffix marks a file as a gRPC request definition.
	GRPCSuffix = ".grpc.yaml"
)

// IsRequestFile reports whether the base name carries a recognized
// request-file suffix.
func IsRequestFile(name string) bool {
	return strings.HasSuffix(name, HTTPSuffix) || strings.HasSuffix(name, GRPCSuffix)
}

// IsMetadataFile reports whether the base name is a collection or folder
// metadata file.
func IsMetadataFile(name string) bool {
	return name == CollectionFileName || name == FolderFileName
}

// ValidationError reports that a file's parsed content does not match the
// expected structure for its role.
type ValidationError struct {
	// Path is the file the error refers to, when known.
	Path string

	// Reason is a human-readable description of the mismatch.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid document: %s", e.Reason)
	}
	return fmt.Sprintf("invalid document %s: %s", e.Path, e.Reason)
}

// KeyValue is a single header, query parameter, or metadata entry as it
// appears on disk. Enabled is a pointer so that an absent key defaults to
// true without serializing "enabled: true" on every row.
type KeyValue struct {
	Key         string `yaml:"key"`
	Value       string `yaml:"value,omitempty"`
	Enabled     *bool  `yaml:"enabled,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// IsEnabled returns the effective enabled state (absent means enabled).
func (kv *KeyValue) IsEnabled() bool {
	return kv.Enabled == nil || *kv.Enabled
}

// Variable is a collection-level variable entry as it appears on disk.
type Variable struct {
	Key         string `yaml:"key"`
	Value       string `yaml:"value,omitempty"`
	Enabled     *bool  `yaml:"enabled,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// IsEnabled returns the effective enabled state (absent means enabled).
func (v *Variable) IsEnabled() bool {
	return v.Enabled == nil || *v.Enabled
}

// Auth is the collection-level auth configuration as it appears on disk.
type Auth struct {
	Type     string `yaml:"type"`
	Token    string `yaml:"token,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}
