package aggregate

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable indicates a nil treated or control table.
	ErrNilTable = errors.New("aggregate: nil covariate table")

	// ErrEmptyTable indicates a table without rows or columns.
	ErrEmptyTable = errors.New("aggregate: empty covariate table")

	// ErrDimensionMismatch indicates disagreeing covariate counts between
	// the two tables, the threshold vector and the scaling vector.
	ErrDimensionMismatch = errors.New("aggregate: covariate count mismatch")

	// ErrInvalidScaling indicates a non-positive or non-finite weight on a
	// participating covariate.
	ErrInvalidScaling = errors.New("aggregate: scaling must be finite and > 0")
)

// aggregateErrorf wraps err with a context tag.
func aggregateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
