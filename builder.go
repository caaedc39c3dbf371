package ngramidx

import (
	"unicode/utf8"

	"github.com/hupe1980/ngramidx/dictionary"
	"github.com/hupe1980/ngramidx/ngram"
	"github.com/hupe1980/ngramidx/vector"
	"github.com/hupe1980/ngramidx/vectorstore"
)

// Builder accumulates terms and produces an immutable Index.
//
// A builder is single-threaded: callers synchronize Insert externally if
// needed. After Build the builder is consumed and must not be reused.
type Builder[T any] struct {
	n      int
	dict   *dictionary.Dictionary
	store  *vectorstore.Store[T]
	logger *Logger
}

// NewBuilder creates a builder for an index over n-rune grams.
//
// T is the caller-supplied item identifier type; it is stored opaquely and
// never inspected, but must be serializable by the configured codec if the
// index is persisted.
func NewBuilder[T any](n int, optFns ...func(*Options)) (*Builder[T], error) {
	if n < 1 {
		return nil, ErrInvalidN
	}

	opts := applyOptions(optFns)

	return &Builder[T]{
		n:      n,
		dict:   dictionary.New(),
		store:  vectorstore.New[T](),
		logger: opts.Logger,
	}, nil
}

// Insert indexes term under id and reports whether the term was accepted.
//
// A term with fewer runes than the n-gram length cannot produce a single
// gram and is rejected without mutating the index. Duplicate ids are not
// merged; every accepted insert adds an independent entry.
func (b *Builder[T]) Insert(term string, id T) bool {
	if utf8.RuneCountInString(term) < b.n {
		b.logger.LogInsert(term, 0, false)
		return false
	}

	padded := ngram.Pad(term, b.n-1)

	vec := vector.New()
	for gram := range ngram.Grams(padded, b.n) {
		vec.Add(b.dict.AddOrGet(gram))
	}

	// Document frequency counts inserts, not occurrences: one bump per
	// touched dimension regardless of how often the gram repeats.
	for dim := range vec.Dims() {
		b.dict.BumpDocFreq(dim)
	}

	b.store.Append(id, vec)
	b.logger.LogInsert(term, vec.DimCount(), true)

	return true
}

// Len returns the number of accepted inserts so far.
func (b *Builder[T]) Len() int {
	return b.store.Len()
}

// Build finalizes the accumulated state into an immutable Index.
//
// The builder hands its internal state to the index and is unusable
// afterwards; further Insert calls panic.
func (b *Builder[T]) Build() *Index[T] {
	idx := &Index[T]{
		n:      b.n,
		dict:   b.dict,
		store:  b.store,
		logger: b.logger,
	}

	b.dict = nil
	b.store = nil

	idx.logger.LogBuild(idx.store.Len(), idx.dict.Len())

	return idx
}
