package ldx

import "errors"

var (
	// ErrMalformed indicates input that is not a structurally valid
	// serialization of an Exchange.
	ErrMalformed = errors.New("ldx: malformed exchange document")

	// ErrShapeMismatch indicates an intensity grid whose row structure
	// disagrees with its angle lists.
	ErrShapeMismatch = errors.New("ldx: intensity grid shape mismatch")
)
