// Package covariate: sentinel errors. Every message carries the
// "covariate:" prefix; callers match with errors.Is.
package covariate

import "errors"

var (
	// ErrEmptyColumn indicates a column without any cell.
	ErrEmptyColumn = errors.New("covariate: column is empty")

	// ErrNoColumns indicates a table built from zero columns.
	ErrNoColumns = errors.New("covariate: table has no columns")

	// ErrRaggedTable indicates columns of one table with different lengths.
	ErrRaggedTable = errors.New("covariate: columns have different lengths")

	// ErrNotNumeric indicates a label cell where a numeric value is required.
	ErrNotNumeric = errors.New("covariate: value is not numeric")

	// ErrInvalidKind indicates a Kind outside the declared set.
	ErrInvalidKind = errors.New("covariate: invalid kind")

	// ErrInvalidLevels indicates a cyclic column declared with levels <= 0.
	ErrInvalidLevels = errors.New("covariate: cyclic levels must be > 0")

	// ErrUnknownLabel indicates a label the encoder was not fitted on.
	ErrUnknownLabel = errors.New("covariate: label not seen during fit")

	// ErrColumnIndex indicates an out-of-range column index.
	ErrColumnIndex = errors.New("covariate: column index out of range")
)
