// Package address renders blockchain addresses from secp256k1 public keys.
package address

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is required by the Bitcoin protocol (Hash160)
	"golang.org/x/crypto/sha3"
)

// p2pkhVersion is the Bitcoin mainnet pay-to-pubkey-hash version byte.
const p2pkhVersion = 0x00

// Ethereum returns the EIP-55 checksummed address for pub.
// The address is the last 20 bytes of Keccak256 over the uncompressed
// public key without its 0x04 prefix.
func Ethereum(pub *btcec.PublicKey) string {
	raw := pub.SerializeUncompressed()
	hash := keccak256(raw[1:])
	return "0x" + checksumHex(hash[12:])
}

// BitcoinP2PKH returns the legacy Base58Check mainnet address for pub,
// using the compressed public key encoding.
func BitcoinP2PKH(pub *btcec.PublicKey) string {
	return base58.CheckEncode(hash160(pub.SerializeCompressed()), p2pkhVersion)
}

// --- helpers ---

// checksumHex hex-encodes addr with EIP-55 mixed-case checksumming:
// a hex letter is uppercased when the matching nibble of
// Keccak256(lowercase address) is >= 8.
func checksumHex(addr []byte) string {
	buf := []byte(hex.EncodeToString(addr))
	hash := keccak256(buf)

	for i, c := range buf {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := hash[i/2] >> (4 * uint(1-i%2)) & 0x0f
		if nibble >= 8 {
			buf[i] = c - ('a' - 'A')
		}
	}
	return string(buf)
}

func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
