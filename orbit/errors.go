package orbit

import "errors"

var (
	ErrInvalidBody     = errors.New("invalid body")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidAltitude = errors.New("invalid altitude")
	ErrInvalidLatitude = errors.New("invalid latitude")
	ErrNotBound        = errors.New("orbit is not bound")
)
