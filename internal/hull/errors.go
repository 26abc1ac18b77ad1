package hull

import "errors"

// Each failure aborts the whole computation; nothing is recovered
// internally and no partial Result is ever returned. All four are
// matchable with errors.Is.
var (
	// ErrInvalidParameter reports a structural precondition violation in
	// the input Parameters.
	ErrInvalidParameter = errors.New("hull: invalid parameter")

	// ErrDegenerateGeometry reports offsets that consume an entire head
	// or tail segment.
	ErrDegenerateGeometry = errors.New("hull: degenerate geometry")

	// ErrInsufficientSamples reports that fewer than 3 distinct axial
	// stations survived discretisation.
	ErrInsufficientSamples = errors.New("hull: insufficient samples")

	// ErrNonPositiveVolume reports a degenerate or self-cancelling
	// radius profile.
	ErrNonPositiveVolume = errors.New("hull: non-positive volume")
)
