package core

import "errors"

var (
	// ErrMalformedClassDefinition is returned when a class payload does not
	// parse as the variant its shape routed it to.
	ErrMalformedClassDefinition = errors.New("malformed class definition")
	// ErrClassAbiMismatch is returned when a class and an ABI of different
	// variants are paired. The pairing is never coerced.
	ErrClassAbiMismatch = errors.New("class and abi variants do not match")
	ErrMissingAbi       = errors.New("missing abi in class definition")
	// ErrMissingExternalEntryPoints is returned when a class being encoded
	// has no EXTERNAL entry-point bucket. CONSTRUCTOR and L1_HANDLER default
	// to empty lists; EXTERNAL does not.
	ErrMissingExternalEntryPoints = errors.New("missing EXTERNAL entry points")
)
