// Package transform: the ill-conditioning reporter.
package transform

import (
	"math"

	"github.com/radkit/bateman/field"
)

// Conditioning flags every (progeny i, ancestor j) pair whose decay
// constants nearly coincide: |(Λ[j,j] − Λ[i,i]) / Λ[j,j]| below
// threshold, evaluated in float64. Such pairs risk catastrophic
// cancellation in the floating-point division of the C build; for the
// exact build the report is informative only.
//
// Purely diagnostic: the pair list never alters the build. Pairs are
// emitted column-major, ascending row within a column.
// Complexity: O(Σ|chain|).
func Conditioning[T any](f field.Field[T], lambda []T, chains [][]int, threshold float64) []Pair {
	if threshold == 0 {
		return nil
	}
	var flagged []Pair
	for j, members := range chains {
		lj := f.Float64(lambda[j])
		if lj == 0 {
			continue // stable ancestors have empty chains; guard anyway
		}
		for _, i := range members {
			li := f.Float64(lambda[i])
			if math.Abs((lj-li)/lj) < threshold {
				flagged = append(flagged, Pair{Row: i, Col: j})
			}
		}
	}

	return flagged
}
