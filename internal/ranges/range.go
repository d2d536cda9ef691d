// Package ranges implements half-open ranges [start, end) over any ordered
// point type, and the algebra between them: containment, overlap, meeting,
// join, intersection and punch-through.
//
// Point and distance types are supplied by a Metric. Points need not support
// arithmetic; only the metric knows how to measure between two of them.
package ranges

import (
	"fmt"
)

// Range is the half-open range [start, end). Start is always <= end; every
// constructor swaps its arguments when needed. Ranges are immutable values and
// safe for concurrent use.
//
// The zero Range is the empty range at the zero point.
type Range[P, D any, M Metric[P, D]] struct {
	start P // inclusive
	end   P // exclusive
}

// New returns the range between a and b, whichever order they are given in.
func New[P, D any, M Metric[P, D]](a, b P) Range[P, D, M] {
	var m M
	a, b = MinMax(m.Compare, a, b)
	return Range[P, D, M]{start: a, end: b}
}

// Between returns a new range of the same type as r. Like New, it normalizes
// its arguments.
func (r Range[P, D, M]) Between(startInclusive, endExclusive P) Range[P, D, M] {
	return New[P, D, M](startInclusive, endExclusive)
}

func (r Range[P, D, M]) metric() M {
	var m M
	return m
}

func (r Range[P, D, M]) Start() P {
	return r.start
}

func (r Range[P, D, M]) End() P {
	return r.end
}

// IsEmpty reports whether the range has no points, i.e. start == end.
func (r Range[P, D, M]) IsEmpty() bool {
	return r.metric().Compare(r.start, r.end) == 0
}

// Contains reports whether start <= p < end.
func (r Range[P, D, M]) Contains(p P) bool {
	m := r.metric()
	return m.Compare(r.start, p) <= 0 && m.Compare(p, r.end) < 0
}

// ContainsRange reports whether every point of other is in r. Ranges sharing
// an end still contain each other, so [a,c) contains both [b,c) and [a,c).
func (r Range[P, D, M]) ContainsRange(other Range[P, D, M]) bool {
	m := r.metric()
	return m.Compare(r.start, other.start) <= 0 && m.Compare(r.end, other.end) >= 0
}

// innerBounds returns the latest start and the earliest end of r and other.
// The ranges overlap when lo < hi and meet when lo == hi.
func (r Range[P, D, M]) innerBounds(other Range[P, D, M]) (lo, hi P) {
	m := r.metric()
	return Max(m.Compare, r.start, other.start), Min(m.Compare, r.end, other.end)
}

// Meets reports whether r and other touch in exactly one boundary point,
// without sharing any interior.
func (r Range[P, D, M]) Meets(other Range[P, D, M]) bool {
	lo, hi := r.innerBounds(other)
	return r.metric().Compare(lo, hi) == 0
}

// Overlaps reports whether r and other share at least part of their interior.
// Ranges that only meet do not overlap.
func (r Range[P, D, M]) Overlaps(other Range[P, D, M]) bool {
	lo, hi := r.innerBounds(other)
	return r.metric().Compare(hi, lo) > 0
}

// Length is the distance from start to end.
func (r Range[P, D, M]) Length() D {
	return r.metric().Distance(r.start, r.end)
}

// Overlap is the length of the part shared by r and other, or the zero
// distance if they do not overlap.
func (r Range[P, D, M]) Overlap(other Range[P, D, M]) D {
	m := r.metric()
	lo, hi := r.innerBounds(other)
	if m.Compare(hi, lo) <= 0 {
		return m.Zero()
	}
	return m.Distance(lo, hi)
}

// Compare orders ranges by start only. Ranges with the same start compare as
// equal even if their ends differ; use Equal to compare both boundaries.
func (r Range[P, D, M]) Compare(other Range[P, D, M]) int {
	return r.metric().Compare(r.start, other.start)
}

// Less reports whether r starts before other. It can be used as a btree.LessFunc.
func (r Range[P, D, M]) Less(other Range[P, D, M]) bool {
	return r.Compare(other) < 0
}

// Equal reports whether both boundaries of r and other are equal.
func (r Range[P, D, M]) Equal(other Range[P, D, M]) bool {
	m := r.metric()
	return m.Compare(r.start, other.start) == 0 && m.Compare(r.end, other.end) == 0
}

func (r Range[P, D, M]) String() string {
	return fmt.Sprintf("[%v,%v)", r.start, r.end)
}

// CompareRanges is Range.Compare as a plain function, for slices.SortFunc and friends.
func CompareRanges[P, D any, M Metric[P, D]](a, b Range[P, D, M]) int {
	return a.Compare(b)
}
