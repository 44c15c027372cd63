package curve

import "errors"

var (
	ErrEmptyCurve   = errors.New("empty curve")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidKey   = errors.New("invalid key")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrUnknownKind  = errors.New("unknown kind")
	ErrBadRow       = errors.New("bad row")
)
