// Package vrange implements the closed integer interval the OPE driver
// subdivides at every recursion step.
package vrange

import (
	"fmt"
	"math"

	"bclo-ope/opeerr"
)

// ValueRange is a closed interval [Start, End] of integer-valued
// float64s. It is immutable once constructed.
type ValueRange struct {
	Start float64
	End   float64
}

// New constructs a ValueRange, failing with opeerr.InvalidRange if the
// endpoints are inverted or non-integral.
func New(start, end float64) (ValueRange, error) {
	if start > end {
		return ValueRange{}, opeerr.New(opeerr.InvalidRange,
			fmt.Sprintf("start (%v) must not be greater than end (%v)", start, end))
	}
	if start != math.Floor(start) {
		return ValueRange{}, opeerr.New(opeerr.InvalidRange,
			fmt.Sprintf("start must be integer-valued, found %v", start))
	}
	if end != math.Floor(end) {
		return ValueRange{}, opeerr.New(opeerr.InvalidRange,
			fmt.Sprintf("end must be integer-valued, found %v", end))
	}
	return ValueRange{Start: start, End: end}, nil
}

// Size returns the number of integers in the range.
func (v ValueRange) Size() float64 {
	return v.End - v.Start + 1
}

// Contains reports whether n lies within [Start, End].
func (v ValueRange) Contains(n float64) bool {
	return v.Start <= n && n <= v.End
}

func (v ValueRange) String() string {
	return fmt.Sprintf("[%v, %v]", v.Start, v.End)
}
