package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	cryptoDomain "github.com/maxvyquincy9393/alliv-security/internal/crypto/domain"
	apperrors "github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// tagSize is the authentication tag size in bytes. Both supported AEAD
// algorithms produce a 128-bit tag.
const tagSize = 16

// fieldCipher implements FieldCipher on top of an AEAD instance.
type fieldCipher struct {
	aead AEAD
}

// NewFieldCipher creates a FieldCipher backed by the given AEAD cipher.
func NewFieldCipher(aead AEAD) FieldCipher {
	return &fieldCipher{aead: aead}
}

// Encrypt encrypts plaintext with a fresh IV and splits the AEAD output into
// ciphertext and authentication tag.
func (f *fieldCipher) Encrypt(plaintext []byte) (cryptoDomain.Envelope, error) {
	sealed, nonce, err := f.aead.Encrypt(plaintext, nil)
	if err != nil {
		return cryptoDomain.Envelope{}, apperrors.Wrap(err, "encrypt")
	}

	split := len(sealed) - tagSize
	return cryptoDomain.Envelope{
		Encrypted: sealed[:split],
		IV:        nonce,
		AuthTag:   sealed[split:],
	}, nil
}

// Decrypt recombines ciphertext and tag and verifies them under the process
// key. Any verification failure is reported as ErrAuthenticationFailed
// without detail: the caller learns that the envelope cannot be trusted, not
// why.
func (f *fieldCipher) Decrypt(envelope cryptoDomain.Envelope) ([]byte, error) {
	// An IV of the wrong length would panic inside the AEAD; a corrupted
	// envelope is an authentication failure like any other.
	if len(envelope.IV) != f.aead.NonceSize() || len(envelope.AuthTag) != tagSize {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}

	sealed := make([]byte, 0, len(envelope.Encrypted)+tagSize)
	sealed = append(sealed, envelope.Encrypted...)
	sealed = append(sealed, envelope.AuthTag...)

	plaintext, err := f.aead.Decrypt(sealed, envelope.IV, nil)
	if err != nil {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// EncryptField canonicalizes a value, encrypts it, and serializes the
// envelope into a single opaque string suitable for one database column.
func (f *fieldCipher) EncryptField(value any) (string, error) {
	plaintext, err := canonicalize(value)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "value is not serializable")
	}

	envelope, err := f.Encrypt(plaintext)
	if err != nil {
		return "", err
	}
	return envelope.String(), nil
}

// DecryptField parses a serialized envelope, decrypts it, and attempts to
// restore structured data. A plaintext that is not valid JSON is returned as
// the raw string.
func (f *fieldCipher) DecryptField(serialized string) (any, error) {
	envelope, err := cryptoDomain.ParseEnvelope(serialized)
	if err != nil {
		return nil, err
	}

	plaintext, err := f.Decrypt(envelope)
	if err != nil {
		return nil, err
	}

	var structured any
	if err := json.Unmarshal(plaintext, &structured); err != nil {
		return string(plaintext), nil
	}
	return structured, nil
}

// Hash computes the SHA-256 digest of data and returns it as a hex string.
func (f *fieldCipher) Hash(data string) string {
	digest := sha256.Sum256([]byte(data))
	return hex.EncodeToString(digest[:])
}

// SecureToken returns length random bytes hex-encoded.
func (f *fieldCipher) SecureToken(length int) (string, error) {
	if length < 1 {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "token length must be positive")
	}

	randomBytes := make([]byte, length)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate random token")
	}
	return hex.EncodeToString(randomBytes), nil
}

// canonicalize converts a value into its canonical byte form: strings pass
// through unchanged, everything else becomes JSON.
func canonicalize(value any) ([]byte, error) {
	if s, ok := value.(string); ok {
		return []byte(s), nil
	}
	return json.Marshal(value)
}
