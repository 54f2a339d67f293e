package cyclegraph

import "errors"

var (
	// ErrUnsupported is returned for a nil or malformed group.
	ErrUnsupported = errors.New("cyclegraph: unsupported group")

	// ErrTooLarge is returned when the group order exceeds WithMaxOrder.
	ErrTooLarge = errors.New("cyclegraph: group too large")
)
