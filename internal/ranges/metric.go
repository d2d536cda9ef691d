package ranges

import (
	"cmp"
	"time"

	"golang.org/x/exp/constraints"
)

// Metric supplies everything a Range needs to know about its point type P and
// its distance type D. Implementations are normally empty structs; a Range
// never stores one, it uses the zero value of its metric type parameter.
type Metric[P, D any] interface {
	// Compare orders points: negative if a < b, zero if equal, positive if a > b.
	Compare(a, b P) int
	// CompareDistance orders distances the same way.
	CompareDistance(a, b D) int
	// Distance measures from one point to a later one, i.e. to - from.
	Distance(from, to P) D
	// Zero is the empty distance.
	Zero() D
}

// Number is any point type that can be subtracted to get a distance of the same type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is the metric for plain numbers, where the distance is the difference.
type Numeric[T Number] struct{}

var _ Metric[int, int] = Numeric[int]{}

func (Numeric[T]) Compare(a, b T) int         { return cmp.Compare(a, b) }
func (Numeric[T]) CompareDistance(a, b T) int { return cmp.Compare(a, b) }
func (Numeric[T]) Distance(from, to T) T      { return to - from }
func (Numeric[T]) Zero() T                    { return 0 }

// Instant is the metric for points in time measured in durations.
type Instant struct{}

var _ Metric[time.Time, time.Duration] = Instant{}

func (Instant) Compare(a, b time.Time) int                { return a.Compare(b) }
func (Instant) CompareDistance(a, b time.Duration) int    { return cmp.Compare(a, b) }
func (Instant) Distance(from, to time.Time) time.Duration { return to.Sub(from) }
func (Instant) Zero() time.Duration                       { return 0 }

// Min returns the lesser of a and b under compare, a on a tie.
func Min[T any](compare func(a, b T) int, a, b T) T {
	if compare(a, b) <= 0 {
		return a
	}
	return b
}

// Max returns the greater of a and b under compare, a on a tie.
func Max[T any](compare func(a, b T) int, a, b T) T {
	if compare(a, b) >= 0 {
		return a
	}
	return b
}

// MinMax puts a and b in order. Equal inputs are returned as given.
func MinMax[T any](compare func(a, b T) int, a, b T) (T, T) {
	if compare(a, b) > 0 {
		return b, a
	}
	return a, b
}
