package units

import "errors"

var (
	// ErrInvalidModulus is returned when the modulus is below 1.
	ErrInvalidModulus = errors.New("units: modulus must be >= 1")

	// ErrTooLarge is returned by Decompose for moduli above MaxModulus.
	ErrTooLarge = errors.New("units: modulus too large")
)

// MaxModulus is the largest n Decompose materializes; the element table
// costs O(n) memory.
const MaxModulus = 1 << 24
