package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/olehkaliuzhnyi/hdwallet-kit/pkg/kdf"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, kdf.LevelNormal, cfg.Level)
	require.Equal(t, kdf.Scrypt{N: 1024, R: 8, P: 1}, cfg.Scrypt())
	require.Equal(t, kdf.Pbkdf2{Prf: kdf.PrfHmacSha256, C: 262_144}, cfg.Pbkdf2())
	require.Equal(t, kdf.DefaultDKLen, cfg.DKLen)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("KDF_LEVEL", "ultra")
	t.Setenv("KDF_SCRYPT_P", "2")
	t.Setenv("KDF_PRF", "hmac-sha512")
	t.Setenv("KDF_PBKDF2_ITERATIONS", "4096")
	t.Setenv("KDF_DKLEN", "64")

	cfg := FromEnv()
	require.Equal(t, kdf.LevelUltra, cfg.Level)
	require.Equal(t, kdf.Scrypt{N: 262144, R: 8, P: 2}, cfg.Scrypt())
	require.Equal(t, kdf.Pbkdf2{Prf: kdf.PrfHmacSha512, C: 4096}, cfg.Pbkdf2())
	require.Equal(t, 64, cfg.DKLen)
}

func TestFromEnv_IgnoresInvalid(t *testing.T) {
	t.Setenv("KDF_LEVEL", "paranoid")
	t.Setenv("KDF_PRF", "hmac-md5")
	t.Setenv("KDF_PBKDF2_ITERATIONS", "0")
	t.Setenv("KDF_DKLEN", "-1")

	cfg := FromEnv()
	require.Equal(t, Default(), cfg)
}

func TestParams(t *testing.T) {
	salt := make([]byte, kdf.SaltBytes)
	for i := range salt {
		salt[i] = byte(i + 1)
	}

	params, err := Default().Params(salt)
	require.NoError(t, err)
	require.Equal(t, kdf.Scrypt{N: 1024, R: 8, P: 1}, params.Kdf)

	// Config never supplies a salt; a zero salt is rejected.
	_, err = Default().Params(make([]byte, kdf.SaltBytes))
	require.ErrorIs(t, err, kdf.ErrInvalidParams)
}
