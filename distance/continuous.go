package distance

import (
	"math"

	"github.com/katalvlaran/discrepancy/matrix"
)

// Signed returns the n×m matrix of raw differences t_i − c_j.
//
// Errors:
//   - ErrEmptyInput if either sequence is empty.
func Signed(treated, control []float64) (*matrix.Dense, error) {
	if len(treated) == 0 || len(control) == 0 {
		return nil, distanceErrorf("Signed", ErrEmptyInput)
	}

	return matrix.OuterApply(treated, control, func(t, c float64) float64 { return t - c })
}

// Continuous returns the n×m matrix of absolute differences |t_i − c_j|.
// NaN in either input yields NaN in the affected row or column.
//
// Example:
//
//	D, _ := distance.Continuous([]float64{1, 5}, []float64{2, 3})
//	// D = [[1, 2], [3, 2]]
func Continuous(treated, control []float64) (*matrix.Dense, error) {
	if len(treated) == 0 || len(control) == 0 {
		return nil, distanceErrorf("Continuous", ErrEmptyInput)
	}

	return matrix.OuterApply(treated, control, func(t, c float64) float64 { return math.Abs(t - c) })
}
