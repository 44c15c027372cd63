package physics

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
)
