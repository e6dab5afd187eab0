package build

import "errors"

// Sentinel errors for build constructors.
var (
	// ErrTooFewNodes indicates a node count below the minimum for the
	// requested topology (e.g. Cycle needs n >= 3).
	ErrTooFewNodes = errors.New("build: node count too small")

	// ErrBadDimensions indicates a non-positive grid dimension.
	ErrBadDimensions = errors.New("build: grid dimensions must be positive")
)
