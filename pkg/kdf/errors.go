package kdf

import "errors"

// ErrInvalidParams is returned when cost parameters, output length, or
// salt cannot be used to construct a derivation.
var ErrInvalidParams = errors.New("kdf: invalid parameters")

// ErrExecution is returned when the underlying algorithm fails after
// parameter validation.
var ErrExecution = errors.New("kdf: derivation failed")
