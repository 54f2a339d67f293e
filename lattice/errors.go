package lattice

import "errors"

var (
	// ErrUnsupported is returned when the group cannot be decomposed into
	// subgroups (nil group, inconsistent generators).
	ErrUnsupported = errors.New("lattice: unsupported group")

	// ErrTooLarge is returned when the group order or the number of
	// subgroups exceeds the configured limits.
	ErrTooLarge = errors.New("lattice: resource limit exceeded")

	// ErrIndexOutOfRange is returned for subgroup indices outside [0, Len).
	ErrIndexOutOfRange = errors.New("lattice: subgroup index out of range")

	// ErrNotSubgroup is returned by IndexOf for sets that are not subgroups.
	ErrNotSubgroup = errors.New("lattice: not a subgroup")
)
