package chaos

import "errors"

// Domain errors for keystream generation.
var (
	// ErrInvalidSeed indicates a seed outside the open interval (0, 1).
	ErrInvalidSeed = errors.New("chaos: seed must lie strictly inside (0, 1)")

	// ErrInvalidCount indicates a negative key count.
	ErrInvalidCount = errors.New("chaos: key count must be non-negative")

	// ErrParameterBounds indicates a control parameter outside valid range.
	ErrParameterBounds = errors.New("chaos: parameter out of valid bounds")
)
