package ranges

import (
	"fmt"
	"iter"
	"slices"
)

// CheckMeetsOrOverlaps returns an error wrapping ErrInvalidOperation unless r
// and other meet or overlap.
func (r Range[P, D, M]) CheckMeetsOrOverlaps(other Range[P, D, M]) error {
	if !r.Meets(other) && !r.Overlaps(other) {
		return fmt.Errorf("range %v and %v neither meet nor overlap: %w", r, other, ErrInvalidOperation)
	}
	return nil
}

// JoinWith returns the smallest range covering both r and other. Disjoint
// ranges have no union and yield an error wrapping ErrInvalidOperation.
func (r Range[P, D, M]) JoinWith(other Range[P, D, M]) (Range[P, D, M], error) {
	if err := r.CheckMeetsOrOverlaps(other); err != nil {
		return Range[P, D, M]{}, fmt.Errorf("join: %w", err)
	}
	m := r.metric()
	return r.Between(Min(m.Compare, r.start, other.start), Max(m.Compare, r.end, other.end)), nil
}

// IntersectWith returns the part shared by r and other. The boolean is false
// when they do not overlap; ranges that only meet have no intersection.
func (r Range[P, D, M]) IntersectWith(other Range[P, D, M]) (Range[P, D, M], bool) {
	if !r.Overlaps(other) {
		return Range[P, D, M]{}, false
	}
	lo, hi := r.innerBounds(other)
	return r.Between(lo, hi), true
}

// Fragments stamps punch onto r and returns what is left of r with punch in
// its place, ordered by position:
//
//	punch not inside r:        [r]
//	punch equal to r:          [punch]
//	punch at the start of r:   [punch, rest]
//	punch at the end of r:     [rest, punch]
//	punch strictly inside r:   [left, punch, right]
//
// Fragments are never dropped, so callers can rely on the count.
func (r Range[P, D, M]) Fragments(punch Range[P, D, M]) []Range[P, D, M] {
	if !r.ContainsRange(punch) {
		return []Range[P, D, M]{r}
	}
	if r.Equal(punch) {
		return []Range[P, D, M]{punch}
	}
	m := r.metric()
	if m.Compare(r.start, punch.start) == 0 {
		return []Range[P, D, M]{punch, r.Between(punch.end, r.end)}
	}
	if m.Compare(r.end, punch.end) == 0 {
		return []Range[P, D, M]{r.Between(r.start, punch.start), punch}
	}
	return []Range[P, D, M]{
		r.Between(r.start, punch.start),
		punch,
		r.Between(punch.end, r.end),
	}
}

// PunchThrough is Fragments as a sequence. The sequence can be ranged over
// more than once and always yields the same one to three ranges.
func (r Range[P, D, M]) PunchThrough(punch Range[P, D, M]) iter.Seq[Range[P, D, M]] {
	return slices.Values(r.Fragments(punch))
}
