// Package service implements authenticated field encryption.
// Provides AEAD ciphers (AES-256-GCM, XChaCha20-Poly1305) and the FieldCipher
// built on top of them for storing sensitive values in single text columns.
package service

import (
	cryptoDomain "github.com/maxvyquincy9393/alliv-security/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext
	// (with the authentication tag appended) and the freshly generated nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt verifies the authentication tag and decrypts ciphertext using
	// the provided nonce and AAD. Tag comparison is constant time.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize returns the nonce length in bytes this cipher expects.
	NonceSize() int
}

// FieldCipher defines the symmetric cipher operations exposed to callers.
// Implementations are stateless apart from the process-wide key and safe for
// concurrent use.
type FieldCipher interface {
	// Encrypt encrypts plaintext under the process key with a fresh IV.
	Encrypt(plaintext []byte) (cryptoDomain.Envelope, error)

	// Decrypt verifies and decrypts an envelope. Returns
	// domain.ErrAuthenticationFailed when the tag does not match.
	Decrypt(envelope cryptoDomain.Envelope) ([]byte, error)

	// EncryptField serializes a value to its canonical string form, encrypts
	// it, and returns the envelope as a single opaque string for storage.
	EncryptField(value any) (string, error)

	// DecryptField reverses EncryptField, parsing the decrypted string back
	// into structured data where possible and falling back to the raw string.
	DecryptField(serialized string) (any, error)

	// Hash returns the SHA-256 digest of data as a hex string. Deterministic;
	// suitable for deduplication keys, never for passwords.
	Hash(data string) string

	// SecureToken returns length random bytes hex-encoded from the secure
	// random source, e.g. for password-reset nonces.
	SecureToken(length int) (string, error)
}
