package diagram

import "errors"

var (
	// ErrZeroDirection is returned when a direction cannot be normalized.
	ErrZeroDirection = errors.New("direction has zero length or is not finite")

	// ErrInvalidOrigin is returned for an origin without a finite position and a positive radius.
	ErrInvalidOrigin = errors.New("origin needs a finite position and a positive radius")
)
