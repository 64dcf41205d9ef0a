package gammon

import "errors"

var (
	// ErrFieldInvalid is returned when a point index is outside 0-23.
	ErrFieldInvalid = errors.New("field invalid")

	// ErrFieldBlocked is returned when the destination point holds two or
	// more opposing checkers.
	ErrFieldBlocked = errors.New("field blocked")

	// ErrMoveInvalid is returned when a checker count would underflow, a
	// move pairs unsupported positions, or a bar re-entry target is
	// blocked.
	ErrMoveInvalid = errors.New("move invalid")

	// ErrPlayerInvalid is returned when an operation is invoked without a
	// real player.
	ErrPlayerInvalid = errors.New("player invalid")
)
