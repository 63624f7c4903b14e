package keygen

import (
	"errors"
	"fmt"
)

// ErrInvalidSeed is returned when the seed length is outside the
// 16..64 byte range allowed for a BIP-32 master key.
var ErrInvalidSeed = errors.New("keygen: seed must be 16..64 bytes")

// ErrInvalidSecretKey is returned when the derived scalar is zero or
// not below the secp256k1 group order.
var ErrInvalidSecretKey = errors.New("keygen: derived scalar outside curve order")

// DerivationError reports a failure during the derivation walk. Child
// names the path element that failed, or is empty for master-key
// construction failures.
type DerivationError struct {
	Child string
	Err   error
}

func (e *DerivationError) Error() string {
	if e.Child == "" {
		return fmt.Sprintf("keygen: master key: %v", e.Err)
	}
	return fmt.Sprintf("keygen: derive child %s: %v", e.Child, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}
