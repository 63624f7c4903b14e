// Package keygen derives secp256k1 private keys from a seed and a
// BIP-32 derivation path.
package keygen

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/tyler-smith/go-bip32"

	"github.com/olehkaliuzhnyi/hdwallet-kit/pkg/hdpath"
)

// BIP-32 bounds the master seed to 128..512 bits.
const (
	minSeedBytes = 16
	maxSeedBytes = 64
)

// SecretKey is a derived private key: a 32-byte scalar validated to be
// non-zero and below the secp256k1 group order.
type SecretKey struct {
	priv *btcec.PrivateKey
}

// Bytes returns a copy of the 32-byte scalar.
func (k *SecretKey) Bytes() []byte {
	b := k.priv.Serialize()
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// PublicKey returns the corresponding secp256k1 public key.
func (k *SecretKey) PublicKey() *btcec.PublicKey {
	return k.priv.PubKey()
}

// DerivePrivateKey walks path against seed using the standard BIP-32
// derivation rules and returns the resulting private key.
//
// The master extended key comes from the two-output HMAC-SHA-512
// construction over seed; each path element then derives the next
// (scalar, chain code) pair, with hardened children offset by 2^31.
// The function is pure: identical inputs always produce the same key.
func DerivePrivateKey(path hdpath.HDPath, seed []byte) (*SecretKey, error) {
	if len(seed) < minSeedBytes || len(seed) > maxSeedBytes {
		return nil, ErrInvalidSeed
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, &DerivationError{Err: err}
	}

	for _, child := range path {
		key, err = key.NewChildKey(child.Raw())
		if err != nil {
			return nil, &DerivationError{Child: child.String(), Err: err}
		}
	}

	return secretKeyFromScalar(key.Key)
}

// secretKeyFromScalar validates the raw scalar against the curve order.
// An out-of-range result is possible but astronomically rare; it is
// surfaced to the caller rather than retried with an adjusted index.
func secretKeyFromScalar(raw []byte) (*SecretKey, error) {
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(raw); overflow || s.IsZero() {
		return nil, ErrInvalidSecretKey
	}

	priv, _ := btcec.PrivKeyFromBytes(raw)
	return &SecretKey{priv: priv}, nil
}
