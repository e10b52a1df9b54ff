package board

import "errors"

var (
	// ErrInvalidInput indicates invalid project creation input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrUnknownStatus indicates a status outside the two board columns.
	ErrUnknownStatus = errors.New("unknown status")
)
