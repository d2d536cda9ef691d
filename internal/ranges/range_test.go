package ranges_test

import (
	"math"
	"testing"
	"time"

	"github.com/garethgeorge/genranges/internal/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRange(t *testing.T) {
	t.Run("OfInt", func(t *testing.T) {
		testCases := []struct {
			name       string
			a, b       int
			start, end int
		}{
			{"ordered", 10, 20, 10, 20},
			{"swapped", 20, 10, 10, 20},
			{"empty", 5, 5, 5, 5},
			{"negative", -3, -8, -8, -3},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				r := ranges.OfInt(tc.a, tc.b)
				assert.Equal(t, tc.start, r.Start())
				assert.Equal(t, tc.end, r.End())
			})
		}
	})

	t.Run("Zero value", func(t *testing.T) {
		var r ranges.IntRange
		assert.True(t, r.IsEmpty())
		assert.Equal(t, 0, r.Length())
		assert.False(t, r.Contains(0))
		assert.Equal(t, "[0,0)", r.String())
	})

	t.Run("Length", func(t *testing.T) {
		assert.Equal(t, 10, ranges.OfInt(10, 20).Length())
		assert.Equal(t, 10, ranges.OfInt(20, 10).Length())
		assert.Equal(t, 0, ranges.OfInt(5, 5).Length())
	})

	t.Run("Contains", func(t *testing.T) {
		r := ranges.OfInt(10, 20)
		assert.True(t, r.Contains(10))
		assert.True(t, r.Contains(19))
		assert.False(t, r.Contains(20))
		assert.False(t, r.Contains(9))
	})

	t.Run("Equality", func(t *testing.T) {
		assert.Equal(t, ranges.OfInt(10, 20), ranges.OfInt(20, 10))
		assert.True(t, ranges.OfInt(10, 20) == ranges.OfInt(20, 10))
		assert.NotEqual(t, ranges.OfInt(10, 20), ranges.OfInt(10, 21))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "[10,20)", ranges.OfInt(10, 20).String())
		assert.Equal(t, "[-5,3)", ranges.OfInt(3, -5).String())
	})

	t.Run("JoinWith error message", func(t *testing.T) {
		_, err := ranges.OfInt(10, 20).JoinWith(ranges.OfInt(21, 30))
		require.Error(t, err)
		assert.ErrorIs(t, err, ranges.ErrInvalidOperation)
		assert.Contains(t, err.Error(), "[10,20) and [21,30) neither meet nor overlap")
	})
}

// a < b < c < d
func TestLabeledScenarios(t *testing.T) {
	const a, b, c, d = 1, 4, 9, 16

	ab, ac, bc, bd, cd, ad := ranges.OfInt(a, b), ranges.OfInt(a, c), ranges.OfInt(b, c), ranges.OfInt(b, d), ranges.OfInt(c, d), ranges.OfInt(a, d)

	assert.False(t, ab.Overlaps(cd))
	assert.False(t, ab.Meets(cd))

	assert.True(t, ac.Overlaps(bd))
	assert.Equal(t, c-b, ac.Overlap(bd))

	assert.True(t, ab.Meets(bd))
	assert.False(t, ab.Overlaps(bd))

	joined, err := ab.JoinWith(bc)
	require.NoError(t, err)
	assert.Equal(t, ac, joined)

	inter, ok := ac.IntersectWith(bd)
	require.True(t, ok)
	assert.Equal(t, bc, inter)
	_, ok = ab.IntersectWith(cd)
	assert.False(t, ok)

	assert.Equal(t, []ranges.IntRange{ab, bc, cd}, ad.Fragments(bc))

	assert.Zero(t, ab.Compare(ac))
	assert.Negative(t, ac.Compare(bd))
}

func TestNumericRanges(t *testing.T) {
	t.Run("unsigned", func(t *testing.T) {
		r := ranges.New[uint64, uint64, ranges.Numeric[uint64]](math.MaxUint64, 0)
		assert.Equal(t, uint64(0), r.Start())
		assert.Equal(t, uint64(math.MaxUint64), r.Length())
		assert.Equal(t, uint64(0), r.Overlap(ranges.New[uint64, uint64, ranges.Numeric[uint64]](5, 5)))
	})

	t.Run("float", func(t *testing.T) {
		r := ranges.New[float64, float64, ranges.Numeric[float64]](2.5, 0.5)
		assert.Equal(t, 2.0, r.Length())
		assert.True(t, r.Contains(0.5))
		assert.False(t, r.Contains(2.5))
		other := ranges.New[float64, float64, ranges.Numeric[float64]](2.0, 3.0)
		assert.Equal(t, 0.5, r.Overlap(other))
	})
}

func TestInstantRange(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("OfInstant normalizes", func(t *testing.T) {
		r := ranges.OfInstant(base.Add(time.Hour), base)
		assert.True(t, base.Equal(r.Start()))
		assert.Equal(t, time.Hour, r.Length())
	})

	t.Run("Equal ignores location", func(t *testing.T) {
		loc := time.FixedZone("UTC+2", 2*60*60)
		r1 := ranges.OfInstant(base, base.Add(time.Hour))
		r2 := ranges.OfInstant(base.In(loc), base.Add(time.Hour).In(loc))
		assert.True(t, r1.Equal(r2))
		assert.Zero(t, r1.Compare(r2))
	})

	t.Run("Overlap", func(t *testing.T) {
		r1 := ranges.OfInstant(base, base.Add(3*time.Hour))
		r2 := ranges.OfInstant(base.Add(2*time.Hour), base.Add(5*time.Hour))
		assert.Equal(t, time.Hour, r1.Overlap(r2))
		assert.Equal(t, time.Duration(0), r1.Overlap(ranges.OfInstant(base.Add(4*time.Hour), base.Add(6*time.Hour))))
	})
}
