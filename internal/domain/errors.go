package domain

import "errors"

var (
	// ErrNotFound means no row matched the given id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus means a status value outside the six known states.
	ErrInvalidStatus = errors.New("invalid status")
)
