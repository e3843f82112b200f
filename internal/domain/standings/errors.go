package standings

import "errors"

// Sentinel kinds for ranking errors.
var (
	// ErrInvalidTopK is returned when the top-K cutoff is not a positive integer.
	ErrInvalidTopK = errors.New("top-k must be positive")
)
