package model

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
)

// idPrefix is randomized once per process so identifiers from different
// runs never collide even though the sequence counter restarts at zero.
var idPrefix = func() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is unrecoverable for id generation
		panic(fmt.Sprintf("model: cannot seed id generator: %v", err))
	}
	return hex.EncodeToString(b)
}()

var idSeq atomic.Uint64

// NewID returns an opaque identifier that is unique within this process.
// Identifiers are ephemeral: they are assigned when a tree is constructed
// or loaded, are never written to disk, and are not stable across reloads.
func NewID() string {
	return fmt.Sprintf("rd-%s-%d", idPrefix, idSeq.Add(1))
}
