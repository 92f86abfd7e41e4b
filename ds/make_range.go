package ds

import (
	"golang.org/x/exp/constraints"
)

// MakeRange yields start, start+step, ... while the value is below end.
// The wraparound search in ctable steps by 2^32, so the element count
// stays tiny even for pathologically large files.
func MakeRange[T constraints.Integer](start, end, step T) []T {
	sequence := make([]T, 0)
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}
