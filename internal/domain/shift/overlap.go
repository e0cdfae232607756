package shift

import "time"

// Overlaps reports whether the candidate interval shares an open instant with
// the existing one. Touching endpoints do not overlap: back-to-back shifts
// are legal.
func Overlaps(existingStart, existingEnd, candidateStart, candidateEnd time.Time) bool {
	return candidateStart.Before(existingEnd) && candidateEnd.After(existingStart)
}
