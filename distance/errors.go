package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates that the treated or control sequence is empty.
	ErrEmptyInput = errors.New("distance: input sequences must be non-empty")

	// ErrInvalidLevels indicates a cyclic level count <= 0.
	ErrInvalidLevels = errors.New("distance: levels must be > 0")

	// ErrKindMismatch indicates treated and control columns declaring
	// incompatible kinds (or cyclic columns with different level counts).
	ErrKindMismatch = errors.New("distance: treated and control kinds differ")
)

// distanceErrorf wraps err with the public entry point name.
func distanceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
