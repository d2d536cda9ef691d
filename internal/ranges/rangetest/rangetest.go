// Package rangetest builds ranges for tests from labeled points. The labels
// "a" through "f" name points in increasing order, so "ac" is the range [a,c)
// and "ab|bc" is the list of ranges [a,b), [b,c).
package rangetest

import (
	"fmt"
	"strings"
	"time"

	"github.com/garethgeorge/genranges/internal/ranges"
	"github.com/samber/lo"
)

// Labels are the point labels understood by a Factory, in increasing order.
const Labels = "abcdef"

// Factory maps point labels to the points of one range type.
type Factory[P, D any, M ranges.Metric[P, D]] struct {
	// Points holds the point for each label; Points[0] is "a".
	Points []P
}

// NewFactory returns a factory over the given points, which must be strictly
// increasing and at least as many as there are labels used by a test.
func NewFactory[P, D any, M ranges.Metric[P, D]](points ...P) *Factory[P, D, M] {
	return &Factory[P, D, M]{Points: points}
}

// Point returns the point for a single letter label.
func (f *Factory[P, D, M]) Point(label string) P {
	if len(label) != 1 {
		panic(fmt.Sprintf("rangetest: point label %q must be a single letter", label))
	}
	idx := strings.IndexByte(Labels, label[0])
	if idx < 0 || idx >= len(f.Points) {
		panic(fmt.Sprintf("rangetest: no point for label %q", label))
	}
	return f.Points[idx]
}

// Range returns the range for a two letter label such as "bd".
// The letters may be given in either order.
func (f *Factory[P, D, M]) Range(label string) ranges.Range[P, D, M] {
	if len(label) != 2 {
		panic(fmt.Sprintf("rangetest: range label %q must be two letters", label))
	}
	return ranges.New[P, D, M](f.Point(label[:1]), f.Point(label[1:]))
}

// Ranges returns the ranges of a "|" separated label list such as "ab|bc|cd".
func (f *Factory[P, D, M]) Ranges(labels string) []ranges.Range[P, D, M] {
	return lo.Map(strings.Split(labels, "|"), func(label string, _ int) ranges.Range[P, D, M] {
		return f.Range(strings.TrimSpace(label))
	})
}

// Distance measures from point a to point b with the factory's metric.
func (f *Factory[P, D, M]) Distance(a, b string) D {
	var m M
	return m.Distance(f.Point(a), f.Point(b))
}

// IntFactory returns a factory of IntRanges over unevenly spaced points.
func IntFactory() *Factory[int, int, ranges.Numeric[int]] {
	return NewFactory[int, int, ranges.Numeric[int]](42, 51, 55, 1023, 1610, 2840)
}

// InstantEpoch is the point labeled "a" by InstantFactory.
var InstantEpoch = time.Unix(0, 0).UTC().Add(12 * time.Hour)

// InstantFactory returns a factory of InstantRanges over points a few hours apart.
func InstantFactory() *Factory[time.Time, time.Duration, ranges.Instant] {
	hours := []int{0, 6, 10, 12, 14, 16}
	return NewFactory[time.Time, time.Duration, ranges.Instant](lo.Map(hours, func(h int, _ int) time.Time {
		return InstantEpoch.Add(time.Duration(h) * time.Hour)
	})...)
}
