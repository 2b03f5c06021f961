package core

import "errors"

// Per-move input errors. All of them are recovered by asking for another move.
var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrIllegalMove       = errors.New("move does not capture")
	ErrMalformedInput    = errors.New("malformed input")
)

// IsInputError reports whether err should be answered with a re-prompt
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidCoordinate) ||
		errors.Is(err, ErrIllegalMove) ||
		errors.Is(err, ErrMalformedInput)
}
