package service

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/maxvyquincy9393/alliv-security/internal/crypto/domain"
)

// XChaCha20Poly1305Cipher implements the AEAD interface using XChaCha20-Poly1305.
//
// XChaCha20-Poly1305 combines the ChaCha20 stream cipher with the Poly1305 MAC
// and is particularly efficient on platforms without hardware AES acceleration.
// The extended 24-byte nonce keeps random IV generation collision-free and
// satisfies the stored envelope format's 16-byte IV floor.
type XChaCha20Poly1305Cipher struct {
	aead cipher.AEAD
}

// NewXChaCha20Poly1305 creates a new XChaCha20-Poly1305 cipher instance.
//
// The key must be exactly 32 bytes (256 bits). Returns
// domain.ErrInvalidKeySize otherwise.
func NewXChaCha20Poly1305(key []byte) (*XChaCha20Poly1305Cipher, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create XChaCha20-Poly1305 cipher: %w", err)
	}

	return &XChaCha20Poly1305Cipher{aead: aead}, nil
}

// Encrypt encrypts plaintext using XChaCha20-Poly1305 with optional additional
// authenticated data. A unique 24-byte nonce is randomly generated per call.
func (c *XChaCha20Poly1305Cipher) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext = c.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt decrypts ciphertext using XChaCha20-Poly1305 with the provided nonce
// and AAD, verifying the Poly1305 tag before returning plaintext.
func (c *XChaCha20Poly1305Cipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

// NonceSize returns the nonce length in bytes (24).
func (c *XChaCha20Poly1305Cipher) NonceSize() int {
	return c.aead.NonceSize()
}
