package cyclotomic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/galois/cyclegraph"
	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/units"
)

var (
	// ErrInvalidInput is returned for moduli below 1.
	ErrInvalidInput = units.ErrInvalidModulus

	// ErrUnsupported is returned when a structure cannot be derived from the group.
	ErrUnsupported = errors.New("cyclotomic: unsupported group")

	// ErrTooLarge is returned when a configured resource limit is exceeded.
	ErrTooLarge = errors.New("cyclotomic: resource limit exceeded")
)

// classify tags errors of the lower layers with this package's sentinels.
func classify(method string, n int, err error) error {
	switch {
	case errors.Is(err, units.ErrTooLarge), errors.Is(err, lattice.ErrTooLarge), errors.Is(err, cyclegraph.ErrTooLarge):
		return fmt.Errorf("cyclotomic: %s(%d): %w: %w", method, n, ErrTooLarge, err)
	case errors.Is(err, lattice.ErrUnsupported), errors.Is(err, cyclegraph.ErrUnsupported):
		return fmt.Errorf("cyclotomic: %s(%d): %w: %w", method, n, ErrUnsupported, err)
	}

	return fmt.Errorf("cyclotomic: %s(%d): %w", method, n, err)
}
