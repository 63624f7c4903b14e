// Package mnemonic converts BIP-39 mnemonic sentences into master seeds.
package mnemonic

import (
	"errors"

	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic is returned when the sentence fails word-list or
// checksum validation.
var ErrInvalidMnemonic = errors.New("mnemonic: invalid mnemonic sentence")

// Seed validates the mnemonic and derives the 64-byte BIP-39 seed.
// The passphrase may be empty.
func Seed(mnemonic, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}
