// Package vectorstore stores the vectors of indexed items together with the
// posting lists that map dimensions back to them.
//
// Every insert appends one entry (item id plus its sparse vector) and records
// the entry's dense ordinal in a posting bitmap per touched dimension.
// Ordinals are monotonically increasing, which makes roaring bitmaps a
// compact representation and gives cheap unions at query time.
package vectorstore

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/ngramidx/vector"
)

// Entry is one stored item: the caller-supplied id and the complete sparse
// vector of its term. Duplicate ids are not merged; each insert produces an
// independent entry.
type Entry[T any] struct {
	ID  T             `json:"id" msgpack:"id"`
	Vec vector.Vector `json:"vec" msgpack:"vec"`
}

// Store holds all indexed entries and their posting lists.
type Store[T any] struct {
	entries  []Entry[T]
	postings map[uint32]*roaring.Bitmap
}

// New creates an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{
		postings: make(map[uint32]*roaring.Bitmap),
	}
}

// Append stores an entry and links it under every dimension of its vector.
// It returns the entry's ordinal.
func (s *Store[T]) Append(id T, vec vector.Vector) uint32 {
	ordinal := uint32(len(s.entries))
	s.entries = append(s.entries, Entry[T]{ID: id, Vec: vec})

	for dim := range vec.Dims() {
		bm, ok := s.postings[dim]
		if !ok {
			bm = roaring.New()
			s.postings[dim] = bm
		}
		bm.Add(ordinal)
	}

	return ordinal
}

// Matches returns a lazy sequence over the union of all entries posted under
// any of the given dimensions. Each matching entry is yielded exactly once,
// in ordinal order, carrying its complete vector.
func (s *Store[T]) Matches(dims []uint32) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		lists := make([]*roaring.Bitmap, 0, len(dims))
		for _, dim := range dims {
			if bm, ok := s.postings[dim]; ok {
				lists = append(lists, bm)
			}
		}
		if len(lists) == 0 {
			return
		}

		it := roaring.FastOr(lists...).Iterator()
		for it.HasNext() {
			if !yield(s.entries[it.Next()]) {
				return
			}
		}
	}
}

// PostingLen returns the length of the posting list under dim (0 if the
// dimension has no postings).
func (s *Store[T]) PostingLen(dim uint32) int {
	if bm, ok := s.postings[dim]; ok {
		return int(bm.GetCardinality())
	}
	return 0
}

// Len returns the number of stored entries.
func (s *Store[T]) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the store holds no entries.
func (s *Store[T]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Snapshot is the serializable form of a Store. Posting bitmaps are flattened
// to plain ordinal arrays so any codec can carry them.
type Snapshot[T any] struct {
	Entries  []Entry[T]          `json:"entries" msgpack:"entries"`
	Postings map[uint32][]uint32 `json:"postings" msgpack:"postings"`
}

// Snapshot returns a deep copy of the store state for serialization.
func (s *Store[T]) Snapshot() *Snapshot[T] {
	entries := make([]Entry[T], len(s.entries))
	for i, e := range s.entries {
		entries[i] = Entry[T]{ID: e.ID, Vec: e.Vec.Clone()}
	}

	postings := make(map[uint32][]uint32, len(s.postings))
	for dim, bm := range s.postings {
		postings[dim] = bm.ToArray()
	}

	return &Snapshot[T]{Entries: entries, Postings: postings}
}

// FromSnapshot reconstructs a store from its serialized form.
func FromSnapshot[T any](snap *Snapshot[T]) (*Store[T], error) {
	s := &Store[T]{
		entries:  make([]Entry[T], len(snap.Entries)),
		postings: make(map[uint32]*roaring.Bitmap, len(snap.Postings)),
	}
	copy(s.entries, snap.Entries)

	for dim, ordinals := range snap.Postings {
		for _, ord := range ordinals {
			if int(ord) >= len(s.entries) {
				return nil, fmt.Errorf("vectorstore: posting under dimension %d references entry %d of %d", dim, ord, len(s.entries))
			}
		}
		s.postings[dim] = roaring.BitmapOf(ordinals...)
	}

	return s, nil
}
