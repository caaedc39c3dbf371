package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ngramidx/vector"
)

func vec(dims ...uint32) vector.Vector {
	v := vector.New()
	for _, d := range dims {
		v.Add(d)
	}
	return v
}

func collect[T any](s *Store[T], dims ...uint32) []Entry[T] {
	var out []Entry[T]
	for e := range s.Matches(dims) {
		out = append(out, e)
	}
	return out
}

func TestStore(t *testing.T) {
	t.Run("AppendAssignsOrdinals", func(t *testing.T) {
		s := New[string]()
		assert.Equal(t, uint32(0), s.Append("a", vec(1)))
		assert.Equal(t, uint32(1), s.Append("b", vec(2)))
		assert.Equal(t, 2, s.Len())
		assert.False(t, s.IsEmpty())
	})

	t.Run("DuplicateIdsAccumulate", func(t *testing.T) {
		s := New[int]()
		s.Append(7, vec(1))
		s.Append(7, vec(1, 2))

		assert.Equal(t, 2, s.Len())
		assert.Len(t, collect(s, 1), 2)
	})

	t.Run("MatchesUnion", func(t *testing.T) {
		s := New[string]()
		s.Append("a", vec(1, 2))
		s.Append("b", vec(2, 3))
		s.Append("c", vec(4))

		got := collect(s, 1, 3)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
	})

	t.Run("MatchesDeduplicatesSharedDims", func(t *testing.T) {
		s := New[string]()
		s.Append("a", vec(1, 2, 3))

		// Entry shares several query dimensions but is yielded once.
		got := collect(s, 1, 2, 3)
		assert.Len(t, got, 1)
	})

	t.Run("MatchesCarriesFullVector", func(t *testing.T) {
		s := New[string]()
		v := vec(1, 2, 3)
		s.Append("a", v)

		got := collect(s, 2)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].Vec.DimCount())
	})

	t.Run("MatchesUnknownDims", func(t *testing.T) {
		s := New[string]()
		s.Append("a", vec(1))
		assert.Empty(t, collect(s, 99))
		assert.Empty(t, collect(s))
	})

	t.Run("MatchesEarlyBreak", func(t *testing.T) {
		s := New[int]()
		for i := range 10 {
			s.Append(i, vec(1))
		}

		n := 0
		for range s.Matches([]uint32{1}) {
			n++
			if n == 3 {
				break
			}
		}
		assert.Equal(t, 3, n)
	})

	t.Run("PostingLen", func(t *testing.T) {
		s := New[string]()
		s.Append("a", vec(1, 2))
		s.Append("b", vec(1))

		assert.Equal(t, 2, s.PostingLen(1))
		assert.Equal(t, 1, s.PostingLen(2))
		assert.Equal(t, 0, s.PostingLen(3))
	})
}

func TestStoreSnapshot(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s := New[string]()
		s.Append("a", vec(1, 2))
		s.Append("b", vec(2, 3))

		restored, err := FromSnapshot(s.Snapshot())
		require.NoError(t, err)

		assert.Equal(t, s.Len(), restored.Len())
		assert.Equal(t, collect(s, 2), collect(restored, 2))
		assert.Equal(t, s.PostingLen(2), restored.PostingLen(2))
	})

	t.Run("RejectsDanglingPosting", func(t *testing.T) {
		_, err := FromSnapshot(&Snapshot[string]{
			Entries:  []Entry[string]{{ID: "a", Vec: vec(1)}},
			Postings: map[uint32][]uint32{1: {0, 5}},
		})
		assert.Error(t, err)
	})
}
