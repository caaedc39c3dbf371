package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(dims ...uint32) Vector {
	v := New()
	for _, d := range dims {
		v.Add(d)
	}
	return v
}

func TestVector(t *testing.T) {
	t.Run("AddAccumulates", func(t *testing.T) {
		v := New()
		v.Add(7)
		v.Add(7)
		v.Add(3)

		assert.Equal(t, uint32(2), v.Get(7))
		assert.Equal(t, uint32(1), v.Get(3))
		assert.Equal(t, uint32(0), v.Get(99))
		assert.Equal(t, 2, v.DimCount())
		assert.False(t, v.IsEmpty())
	})

	t.Run("DimCountIgnoresOccurrences", func(t *testing.T) {
		// Repeated occurrences of one dimension count once.
		v := vec(1, 1, 1, 2)
		assert.Equal(t, 2, v.DimCount())
	})

	t.Run("Dims", func(t *testing.T) {
		v := vec(1, 2, 3)
		seen := map[uint32]bool{}
		for d := range v.Dims() {
			seen[d] = true
		}
		assert.Equal(t, map[uint32]bool{1: true, 2: true, 3: true}, seen)
	})

	t.Run("Overlap", func(t *testing.T) {
		a := vec(1, 2, 3)
		b := vec(2, 3, 4, 5)
		assert.Equal(t, 2, a.Overlap(b))
		assert.Equal(t, 2, b.Overlap(a))
		assert.Equal(t, 0, a.Overlap(New()))
	})

	t.Run("Clone", func(t *testing.T) {
		a := vec(1, 2)
		c := a.Clone()
		c.Add(3)
		assert.Equal(t, 2, a.DimCount())
		assert.Equal(t, 3, c.DimCount())
	})
}

func TestDice(t *testing.T) {
	t.Run("ReflexiveMaximum", func(t *testing.T) {
		for _, v := range []Vector{vec(1), vec(1, 2, 3), vec(1, 1, 2)} {
			assert.InDelta(t, 1.0, Dice(v, v), 1e-6)
		}
	})

	t.Run("Symmetry", func(t *testing.T) {
		a := vec(1, 2, 3)
		b := vec(3, 4)
		assert.Equal(t, Dice(a, b), Dice(b, a))
	})

	t.Run("Range", func(t *testing.T) {
		cases := [][2]Vector{
			{vec(1, 2), vec(3, 4)},
			{vec(1, 2, 3), vec(2, 3, 4)},
			{vec(1), vec(1)},
			{New(), vec(1)},
		}
		for _, c := range cases {
			s := Dice(c[0], c[1])
			assert.GreaterOrEqual(t, s, float32(0))
			assert.LessOrEqual(t, s, float32(1))
		}
	})

	t.Run("Disjoint", func(t *testing.T) {
		assert.Equal(t, float32(0), Dice(vec(1, 2), vec(3, 4)))
	})

	t.Run("BothEmpty", func(t *testing.T) {
		// Defined as 0, never NaN.
		s := Dice(New(), New())
		require.False(t, s != s, "score must not be NaN")
		assert.Equal(t, float32(0), s)
	})

	t.Run("KnownValue", func(t *testing.T) {
		// overlap 2, sizes 3 and 4 -> 2*2/(3+4)
		assert.InDelta(t, 4.0/7.0, Dice(vec(1, 2, 3), vec(2, 3, 4, 5)), 1e-6)
	})
}

func TestDiceWeighted(t *testing.T) {
	a := vec(1, 2, 3)
	b := vec(2, 3, 4, 5)

	t.Run("HalfEqualsDice", func(t *testing.T) {
		assert.InDelta(t, Dice(a, b), DiceWeighted(a, b, 0.5), 1e-6)
	})

	t.Run("FullWeightTowardA", func(t *testing.T) {
		// w=1.0 -> |intersection| / |dims(a)|
		assert.InDelta(t, 2.0/3.0, DiceWeighted(a, b, 1.0), 1e-6)
	})

	t.Run("FullWeightTowardB", func(t *testing.T) {
		assert.InDelta(t, 2.0/4.0, DiceWeighted(a, b, 0.0), 1e-6)
	})

	t.Run("BothEmpty", func(t *testing.T) {
		s := DiceWeighted(New(), New(), 0.7)
		require.False(t, s != s, "score must not be NaN")
		assert.Equal(t, float32(0), s)
	})
}
