package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/maxvyquincy9393/alliv-security/internal/crypto/domain"
)

func TestNewAEAD(t *testing.T) {
	validKey := make([]byte, 32)
	_, err := rand.Read(validKey)
	require.NoError(t, err)

	t.Run("create AES-GCM cipher", func(t *testing.T) {
		cipher, err := NewAEAD(validKey, cryptoDomain.AESGCM)
		require.NoError(t, err)

		_, ok := cipher.(*AESGCMCipher)
		assert.True(t, ok, "cipher should be of type *AESGCMCipher")
		assert.Equal(t, 16, cipher.NonceSize())
	})

	t.Run("create XChaCha20-Poly1305 cipher", func(t *testing.T) {
		cipher, err := NewAEAD(validKey, cryptoDomain.XChaCha20)
		require.NoError(t, err)

		_, ok := cipher.(*XChaCha20Poly1305Cipher)
		assert.True(t, ok, "cipher should be of type *XChaCha20Poly1305Cipher")
		assert.Equal(t, 24, cipher.NonceSize())
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		_, err := NewAEAD(validKey, cryptoDomain.Algorithm("unsupported"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})

	t.Run("key too short", func(t *testing.T) {
		_, err := NewAEAD(make([]byte, 16), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("key too long", func(t *testing.T) {
		_, err := NewAEAD(make([]byte, 64), cryptoDomain.XChaCha20)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("nil key", func(t *testing.T) {
		_, err := NewAEAD(nil, cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}

func TestParseAlgorithm(t *testing.T) {
	t.Run("aes-gcm", func(t *testing.T) {
		alg, err := cryptoDomain.ParseAlgorithm("aes-gcm")
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.AESGCM, alg)
	})

	t.Run("xchacha20-poly1305", func(t *testing.T) {
		alg, err := cryptoDomain.ParseAlgorithm("xchacha20-poly1305")
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.XChaCha20, alg)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := cryptoDomain.ParseAlgorithm("des")
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}
