// Package vector provides sparse term vectors and Dice similarity scoring.
//
// A Vector maps dimension ids (surrogate keys for distinct n-grams) to
// occurrence counts. Vectors are standalone values: once built they carry no
// reference back into the index they came from, so scoring is fully
// reentrant.
package vector

import "iter"

// Vector is a sparse mapping from dimension id to occurrence count.
// The zero value is not usable; use New.
type Vector map[uint32]uint32

// New creates an empty vector.
func New() Vector {
	return make(Vector)
}

// Add increments the occurrence count of the given dimension.
func (v Vector) Add(dim uint32) {
	v[dim]++
}

// Get returns the occurrence count of the given dimension (0 if absent).
func (v Vector) Get(dim uint32) uint32 {
	return v[dim]
}

// DimCount returns the number of distinct nonzero dimensions.
func (v Vector) DimCount() int {
	return len(v)
}

// IsEmpty reports whether the vector has no dimensions.
func (v Vector) IsEmpty() bool {
	return len(v) == 0
}

// Dims returns the set of nonzero dimensions in unspecified order.
func (v Vector) Dims() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for dim := range v {
			if !yield(dim) {
				return
			}
		}
	}
}

// Overlap returns the number of dimensions present in both vectors.
func (v Vector) Overlap(other Vector) int {
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}

	n := 0
	for dim := range a {
		if _, ok := b[dim]; ok {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	c := make(Vector, len(v))
	for dim, count := range v {
		c[dim] = count
	}
	return c
}

// Dice computes the Dice coefficient of the two vectors:
//
//	2 * |dims(a) ∩ dims(b)| / (|dims(a)| + |dims(b)|)
//
// Dimension counts are unweighted by occurrence. The result is in [0, 1];
// two empty vectors score 0, never NaN.
func Dice(a, b Vector) float32 {
	denom := float32(a.DimCount() + b.DimCount())
	if denom == 0 {
		return 0
	}
	return 2 * float32(a.Overlap(b)) / denom
}

// DiceWeighted computes a Dice coefficient with a custom weight distribution
// of the two dimension counts. w must be in [0, 1]:
//
//	w = 1.0 -> only a's dimension count is used
//	w = 0.5 -> equivalent to Dice
//	w = 0.0 -> only b's dimension count is used
func DiceWeighted(a, b Vector, w float32) float32 {
	denom := float32(a.DimCount())*(w*2) + float32(b.DimCount())*((1-w)*2)
	if denom == 0 {
		return 0
	}
	return 2 * float32(a.Overlap(b)) / denom
}
