// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context using %w.

package builder

import "errors"

// ErrTooFewVertices indicates a constructor received fewer vertices than it needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not be applied
// (nil constructor, or the core graph rejected a mutation).
var ErrConstructFailed = errors.New("builder: construction failed")
