package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/olehkaliuzhnyi/hdwallet-kit/pkg/kdf"
)

// Config holds the configurable KDF parameters used when encrypting
// keystore secrets. Salts are never configured here; callers supply
// fresh random salt bytes per encryption.
type Config struct {
	// Scrypt settings
	Level   kdf.DepthLevel
	ScryptR uint32
	ScryptP uint32

	// PBKDF2 settings
	Prf              kdf.Prf
	Pbkdf2Iterations uint32

	// Derived key length in bytes
	DKLen int
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Level:   kdf.LevelNormal,
		ScryptR: 8,
		ScryptP: 1,

		Prf:              kdf.PrfHmacSha256,
		Pbkdf2Iterations: 262_144,

		DKLen: kdf.DefaultDKLen,
	}
}

// FromEnv returns a Config populated from environment variables,
// falling back to defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	switch strings.ToLower(os.Getenv("KDF_LEVEL")) {
	case "normal":
		cfg.Level = kdf.LevelNormal
	case "high":
		cfg.Level = kdf.LevelHigh
	case "ultra":
		cfg.Level = kdf.LevelUltra
	}
	if v := os.Getenv("KDF_SCRYPT_R"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.ScryptR = uint32(n)
		}
	}
	if v := os.Getenv("KDF_SCRYPT_P"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.ScryptP = uint32(n)
		}
	}
	if v := os.Getenv("KDF_PRF"); v != "" {
		switch kdf.Prf(v) {
		case kdf.PrfHmacSha256, kdf.PrfHmacSha512:
			cfg.Prf = kdf.Prf(v)
		}
	}
	if v := os.Getenv("KDF_PBKDF2_ITERATIONS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
			cfg.Pbkdf2Iterations = uint32(n)
		}
	}
	if v := os.Getenv("KDF_DKLEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DKLen = n
		}
	}

	return cfg
}

// Scrypt builds the scrypt Kdf from the resolved settings.
func (c Config) Scrypt() kdf.Scrypt {
	return kdf.Scrypt{N: uint32(c.Level), R: c.ScryptR, P: c.ScryptP}
}

// Pbkdf2 builds the PBKDF2 Kdf from the resolved settings.
func (c Config) Pbkdf2() kdf.Pbkdf2 {
	return kdf.Pbkdf2{Prf: c.Prf, C: c.Pbkdf2Iterations}
}

// Params builds production KdfParams around the configured scrypt
// settings and the supplied random salt.
func (c Config) Params(salt []byte) (kdf.KdfParams, error) {
	return kdf.New(c.Scrypt(), c.DKLen, salt)
}
