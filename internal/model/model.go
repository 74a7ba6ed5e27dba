// Package model defines the in-memory representation of a request collection.
//
// A collection is a strict tree: the collection owns its top-level items,
// folders own their children, and there are no cross-references between
// items. Every entity carries an ephemeral identifier that exists only for
// the lifetime of the process and is never written to disk; reloading the
// same directory yields fresh identifiers for identical content.
package model

import "fmt"

// Collection is the root of a request collection tree.
type Collection struct {
	// ID is the ephemeral identifier assigned at construction time.
	ID string

	// Name is the display name of the collection. Required.
	Name string

	// Description is an optional free-form description.
	Description string

	// Auth is the optional collection-level auth configuration.
	Auth *Auth

	// Variables are the collection-level variables, in declaration order.
	Variables []Variable

	// Items are the top-level folders and requests, in load order.
	Items []Item

	// SourcePath is the absolute directory the collection was loaded from
	// or last saved to. Empty for collections built in memory.
	SourcePath string
}

// Validate checks that the collection is well-formed enough to persist.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("collection name is required")
	}
	return nil
}

// Item is a node in the collection tree: either a *Folder or a *RequestItem.
type Item interface {
	// ItemID returns the ephemeral identifier of the item.
	ItemID() string

	// ItemName returns the display name of the item.
	ItemName() string

	isItem()
}

// Folder groups child items under a subdirectory.
type Folder struct {
	ID          string
	Name        string
	Description string

	// Items are the folder's children, in load order.
	Items []Item

	// SourcePath is the absolute path of the folder's directory on disk.
	SourcePath string
}

// ItemID implements Item.
func (f *Folder) ItemID() string { return f.ID }

// ItemName implements Item.
func (f *Folder) ItemName() string { return f.Name }

func (f *Folder) isItem() {}

// RequestItem is a leaf item holding a single request definition.
type RequestItem struct {
	ID   string
	Name string

	// Request is the request payload, either *HTTPRequest or *GRPCRequest.
	Request Request

	// SourcePath is the absolute path of the request's file on disk.
	SourcePath string
}

// ItemID implements Item.
func (r *RequestItem) ItemID() string { return r.ID }

// ItemName implements Item.
func (r *RequestItem) ItemName() string { return r.Name }

func (r *RequestItem) isItem() {}

// Request is the payload of a RequestItem: either *HTTPRequest or
// *GRPCRequest. The variant determines the file suffix used on disk.
type Request interface {
	// RequestID returns the ephemeral identifier of the request payload.
	RequestID() string

	isRequest()
}

// HTTPRequest describes an HTTP request definition.
type HTTPRequest struct {
	ID          string
	Method      string
	URL         string
	Headers     []KeyValue
	Params      []KeyValue
	Body        string
	Description string
}

// RequestID implements Request.
func (r *HTTPRequest) RequestID() string { return r.ID }

func (r *HTTPRequest) isRequest() {}

// GRPCRequest describes a gRPC request definition.
type GRPCRequest struct {
	ID          string
	URL         string
	Service     string
	Method      string
	Message     string
	Metadata    []KeyValue
	Description string
}

// RequestID implements Request.
func (r *GRPCRequest) RequestID() string { return r.ID }

func (r *GRPCRequest) isRequest() {}

// Auth is the collection-level auth configuration. Type names the
// scheme ("bearer", "basic"); the remaining fields apply per scheme.
type Auth struct {
	Type     string
	Token    string
	Username string
	Password string
}

// KeyValue is a single header, query parameter, or metadata entry.
type KeyValue struct {
	// ID is the ephemeral identifier, assigned on load and never persisted.
	ID          string
	Key         string
	Value       string
	Enabled     bool
	Description string
}

// Variable is a collection-level variable entry.
type Variable struct {
	// ID is the ephemeral identifier, assigned on load and never persisted.
	ID          string
	Key         string
	Value       string
	Enabled     bool
	Description string
}
