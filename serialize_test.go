package ngramidx

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ngramidx/blobstore"
	"github.com/hupe1980/ngramidx/codec"
	"github.com/hupe1980/ngramidx/dictionary"
	"github.com/hupe1980/ngramidx/persistence"
	"github.com/hupe1980/ngramidx/vectorstore"
)

func TestSnapshotRoundTrip(t *testing.T) {
	idx := newDemoIndex(t)

	q, ok := idx.MakeQueryVector("shol")
	require.True(t, ok)
	want := collect(idx.Find(q))

	var buf bytes.Buffer
	require.NoError(t, idx.SaveToWriter(&buf))

	restored, err := NewFromReader[int](&buf)
	require.NoError(t, err)

	assert.Equal(t, idx.N(), restored.N())
	assert.Equal(t, idx.Len(), restored.Len())

	rq, ok := restored.MakeQueryVector("shol")
	require.True(t, ok)
	assert.Equal(t, want, collect(restored.Find(rq)))
}

func TestSnapshotRoundTripJSONLZ4(t *testing.T) {
	idx := newDemoIndex(t)

	var buf bytes.Buffer
	require.NoError(t, idx.SaveToWriter(&buf, func(o *persistence.Options) {
		o.Codec = codec.JSON{}
		o.Compression = persistence.CompressionLZ4
	}))

	restored, err := NewFromReader[int](&buf)
	require.NoError(t, err)
	assert.Equal(t, idx.Len(), restored.Len())
}

func TestBlobStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	idx := newDemoIndex(t)
	require.NoError(t, idx.SaveToStore(ctx, store, "main.ngx"))

	restored, err := NewFromStore[int](ctx, store, "main.ngx")
	require.NoError(t, err)
	assert.Equal(t, idx.Len(), restored.Len())

	q, ok := restored.MakeQueryVector("shol")
	require.True(t, ok)
	assert.NotEmpty(t, collect(restored.Find(q)))
}

func TestNewFromStoreMissing(t *testing.T) {
	ctx := context.Background()

	_, err := NewFromStore[int](ctx, blobstore.NewMemoryStore(), "nope")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestFromSnapshotValidation(t *testing.T) {
	valid := newDemoIndex(t).Snapshot()

	t.Run("Valid", func(t *testing.T) {
		idx, err := FromSnapshot(valid)
		require.NoError(t, err)
		assert.Equal(t, 4, idx.Len())
	})

	t.Run("NonPositiveN", func(t *testing.T) {
		_, err := FromSnapshot(&Snapshot[int]{N: 0, Dict: valid.Dict, Store: valid.Store})
		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	})

	t.Run("MissingSection", func(t *testing.T) {
		_, err := FromSnapshot(&Snapshot[int]{N: 3, Dict: valid.Dict})
		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	})

	t.Run("UnassignedPostingDimension", func(t *testing.T) {
		damaged := &Snapshot[int]{
			N:    3,
			Dict: valid.Dict,
			Store: &vectorstore.Snapshot[int]{
				Entries:  valid.Store.Entries,
				Postings: map[uint32][]uint32{99999: {0}},
			},
		}
		_, err := FromSnapshot(damaged)
		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	})

	t.Run("DanglingOrdinal", func(t *testing.T) {
		damaged := &Snapshot[int]{
			N: 3,
			Dict: &dictionary.Snapshot{
				Dims:    map[string]uint32{"abc": 0},
				DocFreq: []uint32{1},
			},
			Store: &vectorstore.Snapshot[int]{
				Postings: map[uint32][]uint32{0: {5}},
			},
		}
		_, err := FromSnapshot(damaged)
		assert.ErrorIs(t, err, ErrCorruptSnapshot)
	})
}
