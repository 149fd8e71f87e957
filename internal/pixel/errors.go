package pixel

import "errors"

var (
	// ErrInvalidDimension is returned for non-positive grid dimensions and
	// for sizes above MaxGridSide.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfBounds is returned for coordinates outside the current grid.
	ErrOutOfBounds = errors.New("coordinates outside grid")

	// ErrEmptySelection is returned when an operation needs a finalized
	// selection and none exists.
	ErrEmptySelection = errors.New("no selection")

	// ErrGestureInProgress is returned when a press arrives before the
	// previous gesture was released.
	ErrGestureInProgress = errors.New("gesture already in progress")
)
