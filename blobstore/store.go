// Package blobstore abstracts storage of serialized index snapshots.
//
// Snapshots are immutable, written once and read whole, so the interface is
// deliberately byte-oriented: Put stores a complete blob atomically and Get
// returns a complete blob. Implementations exist for memory (tests), the
// local file system, S3 and MinIO, plus decorators for local caching and
// throughput limiting.
package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for storing immutable snapshot blobs.
type Store interface {
	// Put stores a blob atomically, replacing any existing blob of the
	// same name.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the complete contents of a blob.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
