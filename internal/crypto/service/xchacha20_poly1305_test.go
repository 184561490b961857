package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/maxvyquincy9393/alliv-security/internal/crypto/domain"
)

func TestXChaCha20Poly1305Cipher(t *testing.T) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	cipher, err := NewXChaCha20Poly1305(key)
	require.NoError(t, err)

	t.Run("encrypt and decrypt", func(t *testing.T) {
		plaintext := []byte("secret message")
		aad := []byte("profile-42")

		ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
		require.NoError(t, err)
		assert.Len(t, nonce, 24)

		decrypted, err := cipher.Decrypt(ciphertext, nonce, aad)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	})

	t.Run("decrypt with wrong AAD fails", func(t *testing.T) {
		ciphertext, nonce, err := cipher.Encrypt([]byte("data"), []byte("aad-1"))
		require.NoError(t, err)

		_, err = cipher.Decrypt(ciphertext, nonce, []byte("aad-2"))
		assert.Error(t, err)
	})

	t.Run("nonces are unique per encryption", func(t *testing.T) {
		_, nonce1, err := cipher.Encrypt([]byte("same"), nil)
		require.NoError(t, err)
		_, nonce2, err := cipher.Encrypt([]byte("same"), nil)
		require.NoError(t, err)
		assert.NotEqual(t, nonce1, nonce2)
	})

	t.Run("invalid key size", func(t *testing.T) {
		_, err := NewXChaCha20Poly1305(make([]byte, 31))
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})
}
