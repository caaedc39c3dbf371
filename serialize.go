package ngramidx

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/ngramidx/blobstore"
	"github.com/hupe1980/ngramidx/dictionary"
	"github.com/hupe1980/ngramidx/persistence"
	"github.com/hupe1980/ngramidx/vectorstore"
)

// Snapshot is the serializable form of an Index.
type Snapshot[T any] struct {
	N     int                      `json:"n" msgpack:"n"`
	Dict  *dictionary.Snapshot     `json:"dict" msgpack:"dict"`
	Store *vectorstore.Snapshot[T] `json:"store" msgpack:"store"`
}

// Snapshot returns a deep copy of the index state for serialization.
func (i *Index[T]) Snapshot() *Snapshot[T] {
	return &Snapshot[T]{
		N:     i.n,
		Dict:  i.dict.Snapshot(),
		Store: i.store.Snapshot(),
	}
}

// FromSnapshot reconstructs an index from its serialized form. Structural
// damage (out-of-range dimensions or ordinals, inconsistent lengths) is
// reported as an error wrapping ErrCorruptSnapshot.
func FromSnapshot[T any](snap *Snapshot[T], optFns ...func(*Options)) (*Index[T], error) {
	if snap.N < 1 {
		return nil, fmt.Errorf("%w: n-gram length %d", ErrCorruptSnapshot, snap.N)
	}
	if snap.Dict == nil || snap.Store == nil {
		return nil, fmt.Errorf("%w: missing section", ErrCorruptSnapshot)
	}

	dict, err := dictionary.FromSnapshot(snap.Dict)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	for dim := range snap.Store.Postings {
		if int(dim) >= dict.Len() {
			return nil, fmt.Errorf("%w: posting under unassigned dimension %d", ErrCorruptSnapshot, dim)
		}
	}

	store, err := vectorstore.FromSnapshot(snap.Store)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	opts := applyOptions(optFns)

	return &Index[T]{
		n:      snap.N,
		dict:   dict,
		store:  store,
		logger: opts.Logger,
	}, nil
}

// SaveToWriter writes the index as a snapshot container to w.
func (i *Index[T]) SaveToWriter(w io.Writer, optFns ...func(*persistence.Options)) error {
	return persistence.Write(w, i.Snapshot(), optFns...)
}

// NewFromReader reads a snapshot container from r and reconstructs the index.
func NewFromReader[T any](r io.Reader, optFns ...func(*Options)) (*Index[T], error) {
	var snap Snapshot[T]
	if err := persistence.Read(r, &snap); err != nil {
		return nil, err
	}
	return FromSnapshot(&snap, optFns...)
}

// SaveToStore serializes the index and uploads it under name.
func (i *Index[T]) SaveToStore(ctx context.Context, store blobstore.Store, name string, optFns ...func(*persistence.Options)) error {
	var buf bytes.Buffer
	if err := i.SaveToWriter(&buf, optFns...); err != nil {
		i.logger.LogSnapshot(ctx, name, err)
		return err
	}

	err := store.Put(ctx, name, buf.Bytes())
	i.logger.LogSnapshot(ctx, name, err)

	return err
}

// NewFromStore downloads the snapshot stored under name and reconstructs the
// index.
func NewFromStore[T any](ctx context.Context, store blobstore.Store, name string, optFns ...func(*Options)) (*Index[T], error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", name, err)
	}
	return NewFromReader[T](bytes.NewReader(data), optFns...)
}
