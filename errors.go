package catena

import "errors"

var (
	// ErrNilNode is returned when an operation is given the nil handle, or a
	// handle that went stale because its node was removed. The operation
	// performs no mutation in that case.
	ErrNilNode = errors.New("catena: nil or stale node handle")

	// ErrFull is returned by Create and InsertAfter when a fixed-capacity
	// arena has no free node slot left. The chain is left unmodified.
	ErrFull = errors.New("catena: arena out of node slots")
)
