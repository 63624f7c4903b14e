package kdf

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// Prf selects the pseudo-random function used inside PBKDF2.
type Prf string

// Supported pseudo-random functions (RFC 4868 HMAC variants). The
// string values are the names used in persisted keystore records.
const (
	PrfHmacSha256 Prf = "hmac-sha256"
	PrfHmacSha512 Prf = "hmac-sha512"
)

// Hash returns the hash constructor backing p, or nil for an unknown Prf.
func (p Prf) Hash() func() hash.Hash {
	switch p {
	case PrfHmacSha256:
		return sha256.New
	case PrfHmacSha512:
		return sha512.New
	default:
		return nil
	}
}

// NewMac returns an HMAC context keyed with passphrase. HMAC accepts
// keys of any length, so the only failure mode is an unknown Prf.
func (p Prf) NewMac(passphrase string) (hash.Hash, error) {
	h := p.Hash()
	if h == nil {
		return nil, fmt.Errorf("%w: unknown prf %q", ErrInvalidParams, string(p))
	}
	return hmac.New(h, []byte(passphrase)), nil
}

func (p Prf) valid() bool {
	return p.Hash() != nil
}
