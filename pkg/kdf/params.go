package kdf

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SaltBytes is the fixed salt length in bytes.
const SaltBytes = 32

// DefaultDKLen is the default derived-key length in bytes.
const DefaultDKLen = 32

// Salt is the fixed-size KDF salt. It is hex-encoded in JSON.
type Salt [SaltBytes]byte

// NewSalt copies b into a Salt; b must be exactly SaltBytes long.
func NewSalt(b []byte) (Salt, error) {
	var s Salt
	if len(b) != SaltBytes {
		return s, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrInvalidParams, SaltBytes, len(b))
	}
	copy(s[:], b)
	return s, nil
}

// IsZero reports whether the salt is all zero bytes.
func (s Salt) IsZero() bool {
	return s == Salt{}
}

// MarshalJSON encodes the salt as a hex string.
func (s Salt) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(s[:]))
}

// UnmarshalJSON decodes a hex string of exactly SaltBytes bytes.
func (s *Salt) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("kdf: salt: %w", err)
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		return fmt.Errorf("kdf: salt: %w", err)
	}
	if len(b) != SaltBytes {
		return fmt.Errorf("%w: salt must be %d bytes, got %d", ErrInvalidParams, SaltBytes, len(b))
	}
	copy(s[:], b)
	return nil
}

// KdfParams bundles a Kdf with its output length and salt. This is the
// unit persisted in keystore records.
type KdfParams struct {
	Kdf   Kdf
	DKLen int
	Salt  Salt
}

// Default returns placeholder parameters: LevelNormal scrypt with a
// zero salt. The zero salt makes the value unusable for real
// encryption; production code must go through New with a random salt.
func Default() KdfParams {
	return KdfParams{
		Kdf:   LevelNormal.Scrypt(),
		DKLen: DefaultDKLen,
	}
}

// New constructs production parameters. The salt must be exactly
// SaltBytes of caller-supplied random data; an all-zero salt is
// rejected so the placeholder default cannot leak into real use.
func New(k Kdf, dkLen int, salt []byte) (KdfParams, error) {
	if k == nil {
		return KdfParams{}, fmt.Errorf("%w: no kdf configured", ErrInvalidParams)
	}
	if dkLen <= 0 {
		return KdfParams{}, fmt.Errorf("%w: dklen must be positive", ErrInvalidParams)
	}
	s, err := NewSalt(salt)
	if err != nil {
		return KdfParams{}, err
	}
	if s.IsZero() {
		return KdfParams{}, fmt.Errorf("%w: salt must be randomized", ErrInvalidParams)
	}

	return KdfParams{Kdf: k, DKLen: dkLen, Salt: s}, nil
}

// Derive derives DKLen bytes from passphrase using the held Kdf and salt.
func (p KdfParams) Derive(passphrase string) ([]byte, error) {
	if p.Kdf == nil {
		return nil, fmt.Errorf("%w: no kdf configured", ErrInvalidParams)
	}
	return p.Kdf.Derive(p.DKLen, p.Salt[:], passphrase)
}

// Persisted shapes. The algorithm carries no discriminant field: the
// {prf, c} pair implies PBKDF2 and {n, r, p} implies scrypt.
type pbkdf2JSON struct {
	Prf   Prf    `json:"prf"`
	C     uint32 `json:"c"`
	DKLen int    `json:"dklen"`
	Salt  Salt   `json:"salt"`
}

type scryptJSON struct {
	N     uint32 `json:"n"`
	R     uint32 `json:"r"`
	P     uint32 `json:"p"`
	DKLen int    `json:"dklen"`
	Salt  Salt   `json:"salt"`
}

// MarshalJSON flattens the algorithm parameters alongside dklen and salt.
func (p KdfParams) MarshalJSON() ([]byte, error) {
	switch k := p.Kdf.(type) {
	case Pbkdf2:
		return json.Marshal(pbkdf2JSON{Prf: k.Prf, C: k.C, DKLen: p.DKLen, Salt: p.Salt})
	case Scrypt:
		return json.Marshal(scryptJSON{N: k.N, R: k.R, P: k.P, DKLen: p.DKLen, Salt: p.Salt})
	default:
		return nil, fmt.Errorf("%w: unsupported kdf %T", ErrInvalidParams, p.Kdf)
	}
}

// UnmarshalJSON detects the algorithm by field presence.
func (p *KdfParams) UnmarshalJSON(data []byte) error {
	var probe struct {
		Prf *Prf    `json:"prf"`
		C   *uint32 `json:"c"`
		N   *uint32 `json:"n"`
		R   *uint32 `json:"r"`
		P   *uint32 `json:"p"`

		DKLen int  `json:"dklen"`
		Salt  Salt `json:"salt"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("kdf: params: %w", err)
	}

	switch {
	case probe.Prf != nil && probe.C != nil:
		if !probe.Prf.valid() {
			return fmt.Errorf("%w: unknown prf %q", ErrInvalidParams, string(*probe.Prf))
		}
		p.Kdf = Pbkdf2{Prf: *probe.Prf, C: *probe.C}
	case probe.N != nil && probe.R != nil && probe.P != nil:
		p.Kdf = Scrypt{N: *probe.N, R: *probe.R, P: *probe.P}
	default:
		return fmt.Errorf("%w: record matches neither pbkdf2 nor scrypt", ErrInvalidParams)
	}

	p.DKLen = probe.DKLen
	p.Salt = probe.Salt
	return nil
}
