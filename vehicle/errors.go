package vehicle

import "errors"

var (
	ErrNoData          = errors.New("no data")
	ErrInvalidPressure = errors.New("invalid pressure")
	ErrDivideByZero    = errors.New("divide by zero")
	ErrInvalidMass     = errors.New("invalid mass")
)
