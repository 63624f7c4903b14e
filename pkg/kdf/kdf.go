// Package kdf derives symmetric keys from passphrases for keystore
// encryption, via PBKDF2 (RFC 2898) or scrypt (RFC 7914).
package kdf

import (
	"fmt"
	"math"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Kdf is a key-derivation algorithm with its cost parameters bound.
// Derive returns exactly dkLen bytes and is deterministic: identical
// inputs always produce identical output.
type Kdf interface {
	Derive(dkLen int, salt []byte, passphrase string) ([]byte, error)
}

// Pbkdf2 is the PBKDF2 algorithm: C iterations of the HMAC selected
// by Prf. CPU cost grows linearly with C; there is no memory hardness.
type Pbkdf2 struct {
	Prf Prf    `json:"prf"`
	C   uint32 `json:"c"`
}

// Derive implements Kdf.
func (k Pbkdf2) Derive(dkLen int, salt []byte, passphrase string) ([]byte, error) {
	if dkLen <= 0 {
		return nil, fmt.Errorf("%w: dklen must be positive", ErrInvalidParams)
	}
	if k.C == 0 {
		return nil, fmt.Errorf("%w: iteration count must be positive", ErrInvalidParams)
	}
	h := k.Prf.Hash()
	if h == nil {
		return nil, fmt.Errorf("%w: unknown prf %q", ErrInvalidParams, string(k.Prf))
	}

	return pbkdf2.Key([]byte(passphrase), salt, int(k.C), dkLen, h), nil
}

// Scrypt is the scrypt algorithm: N work factor (a power of two),
// R block size, P parallelization.
type Scrypt struct {
	N uint32 `json:"n"`
	R uint32 `json:"r"`
	P uint32 `json:"p"`
}

// Derive implements Kdf. The work factor is normalized to the nearest
// power of two, as persisted records may carry an inexact N.
func (k Scrypt) Derive(dkLen int, salt []byte, passphrase string) ([]byte, error) {
	if dkLen <= 0 {
		return nil, fmt.Errorf("%w: dklen must be positive", ErrInvalidParams)
	}
	if k.N == 0 || k.R == 0 || k.P == 0 {
		return nil, fmt.Errorf("%w: scrypt n, r, p must be positive", ErrInvalidParams)
	}

	logN := int(math.Round(math.Log2(float64(k.N))))
	if logN < 1 || logN > 30 {
		return nil, fmt.Errorf("%w: scrypt work factor %d out of range", ErrInvalidParams, k.N)
	}

	key, err := scrypt.Key([]byte(passphrase), salt, 1<<logN, int(k.R), int(k.P), dkLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecution, err)
	}
	return key, nil
}
