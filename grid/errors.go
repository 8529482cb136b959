package grid

import "errors"

var (
	// ErrNotFound reports a dimension lookup outside the known extents.
	ErrNotFound = errors.New("grid: cell dimensions not found")
	// ErrOutOfRange reports a position outside the snapshot or the laid-out area.
	ErrOutOfRange = errors.New("grid: position out of range")
	// ErrInvalidRange reports a rectangle with min > max on either axis.
	ErrInvalidRange = errors.New("grid: invalid range")
	// ErrNotRectangular reports a snapshot whose rows differ in length.
	ErrNotRectangular = errors.New("grid: snapshot is not rectangular")
)
