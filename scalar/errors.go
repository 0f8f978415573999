package scalar

import "github.com/pkg/errors"

var (
	// ErrInvalidPower is raised when a zero base is taken to a non-positive
	// power, which has no real result.
	ErrInvalidPower = errors.New("invalid power of zero")

	// ErrForeignValue is raised when an operation combines values recorded
	// on different tapes.
	ErrForeignValue = errors.New("value belongs to another tape")

	// ErrStaleValue is raised when a value released from its tape is used.
	ErrStaleValue = errors.New("value released from its tape")

	// ErrBadMark is raised by Release with a mark past the end of the tape.
	ErrBadMark = errors.New("mark out of range")

	// ErrTapeFull is raised when a tape cannot address another node.
	ErrTapeFull = errors.New("tape full")
)
