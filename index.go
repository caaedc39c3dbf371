package ngramidx

import (
	"iter"

	"github.com/hupe1980/ngramidx/dictionary"
	"github.com/hupe1980/ngramidx/ngram"
	"github.com/hupe1980/ngramidx/vector"
	"github.com/hupe1980/ngramidx/vectorstore"
)

// DefaultTFThreshold is the document-frequency threshold applied by
// FindWeighted. Query grams occurring in at least this many indexed terms
// are skipped during candidate enumeration.
const DefaultTFThreshold = 1000

// Match is one query result: the caller-supplied item id and its similarity
// score in [0, 1].
type Match[T any] struct {
	ID    T
	Score float32
}

// Index is a finalized n-gram index. It is immutable and safe for
// unsynchronized concurrent queries.
type Index[T any] struct {
	n      int
	dict   *dictionary.Dictionary
	store  *vectorstore.Store[T]
	logger *Logger
}

// N returns the n-gram length the index was built with.
func (i *Index[T]) N() int {
	return i.n
}

// Len returns the number of indexed entries.
func (i *Index[T]) Len() int {
	return i.store.Len()
}

// IsEmpty reports whether the index holds no entries.
func (i *Index[T]) IsEmpty() bool {
	return i.store.IsEmpty()
}

// MakeQueryVector converts a query string into a sparse vector over the
// index's dimension space. Query grams never seen during construction have
// no dimension and are silently dropped; a query sharing no grams with the
// vocabulary yields an empty vector.
//
// ok is false only for a structurally invalid (zero value) index.
func (i *Index[T]) MakeQueryVector(query string) (vector.Vector, bool) {
	if i.n < 1 {
		return nil, false
	}

	vec := vector.New()
	for gram := range ngram.Grams(ngram.Pad(query, i.n-1), i.n) {
		if dim, ok := i.dict.Lookup(gram); ok {
			vec.Add(dim)
		}
	}

	return vec, true
}

// Find returns a lazy sequence of every indexed entry sharing at least one
// dimension with the query, scored with the plain Dice coefficient.
//
// Results are yielded in posting-traversal order, not by score. The sequence
// is restartable and supports early break.
func (i *Index[T]) Find(q vector.Vector) iter.Seq[Match[T]] {
	return i.scored(i.queryDims(q, -1), func(e vectorstore.Entry[T]) float32 {
		return vector.Dice(q, e.Vec)
	})
}

// FindFast is Find with document-frequency pruning: query dimensions whose
// document frequency is tfThreshold or higher are skipped during candidate
// enumeration. Entries reachable only through skipped dimensions are missed
// entirely, so FindFast yields a subset of Find. Scores of yielded entries
// are identical to Find's. A negative threshold disables pruning.
func (i *Index[T]) FindFast(q vector.Vector, tfThreshold int) iter.Seq[Match[T]] {
	return i.scored(i.queryDims(q, tfThreshold), func(e vectorstore.Entry[T]) float32 {
		return vector.Dice(q, e.Vec)
	})
}

// FindWeighted is FindFast with a weighted Dice score and the default
// document-frequency threshold. w skews the denominator between the query
// and the candidate: w=0.5 is plain Dice, w=1.0 measures against the query's
// dimension count alone.
func (i *Index[T]) FindWeighted(q vector.Vector, w float32) iter.Seq[Match[T]] {
	return i.FindWeightedFast(q, w, DefaultTFThreshold)
}

// FindWeightedFast is FindWeighted with an explicit document-frequency
// threshold.
func (i *Index[T]) FindWeightedFast(q vector.Vector, w float32, tfThreshold int) iter.Seq[Match[T]] {
	return i.scored(i.queryDims(q, tfThreshold), func(e vectorstore.Entry[T]) float32 {
		return vector.DiceWeighted(q, e.Vec, w)
	})
}

// queryDims collects the query's dimensions, dropping those whose document
// frequency reaches tfThreshold. A negative threshold disables pruning.
func (i *Index[T]) queryDims(q vector.Vector, tfThreshold int) []uint32 {
	dims := make([]uint32, 0, q.DimCount())
	for dim := range q.Dims() {
		if tfThreshold >= 0 && int(i.dict.DocFreq(dim)) >= tfThreshold {
			continue
		}
		dims = append(dims, dim)
	}

	i.logger.LogFind(q.DimCount(), q.DimCount()-len(dims))

	return dims
}

func (i *Index[T]) scored(dims []uint32, score func(vectorstore.Entry[T]) float32) iter.Seq[Match[T]] {
	return func(yield func(Match[T]) bool) {
		for entry := range i.store.Matches(dims) {
			if !yield(Match[T]{ID: entry.ID, Score: score(entry)}) {
				return
			}
		}
	}
}
