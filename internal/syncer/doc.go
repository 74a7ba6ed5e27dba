// Package syncer is the public surface of the collection sync engine.
//
// It composes the tree serializer, the modification tracker, and the
// watch session manager behind a single Syncer interface: load a
// directory into a tree, save a tree back, watch a directory for
// external edits, and answer small file queries for conflict prompts.
// Every operation returns a structured error; nothing panics across this
// boundary, and every path is checked against the safety gate before any
// I/O happens.
//
// All state (tracker, session registry) lives inside the Syncer value.
// Two Syncers share nothing, so tests and embedders can run several
// independently.
package syncer
