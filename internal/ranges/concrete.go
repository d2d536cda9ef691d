package ranges

import "time"

// IntRange is a range of ints measured in ints.
type IntRange = Range[int, int, Numeric[int]]

// OfInt returns the range between a and b.
func OfInt(a, b int) IntRange {
	return New[int, int, Numeric[int]](a, b)
}

// InstantRange is a range of points in time measured in durations.
type InstantRange = Range[time.Time, time.Duration, Instant]

// OfInstant returns the range between a and b.
func OfInstant(a, b time.Time) InstantRange {
	return New[time.Time, time.Duration, Instant](a, b)
}
