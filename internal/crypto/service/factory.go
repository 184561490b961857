package service

import (
	cryptoDomain "github.com/maxvyquincy9393/alliv-security/internal/crypto/domain"
)

// NewAEAD creates an AEAD cipher instance for the specified algorithm.
// Returns domain.ErrUnsupportedAlgorithm for unknown algorithms and
// domain.ErrInvalidKeySize when the key is not 32 bytes.
func NewAEAD(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key)
	case cryptoDomain.XChaCha20:
		return NewXChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
