package domain

import (
	"github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// Cryptographic operation error definitions.
//
// All messages are generic: they never echo the offending input and never
// disclose which part of an envelope or tag failed verification.
var (
	// ErrAuthenticationFailed indicates the authentication tag did not match
	// during decryption. The ciphertext was tampered with, decrypted with the
	// wrong key, or corrupted; the specific cause is deliberately not disclosed.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrMalformedEnvelope indicates a serialized envelope could not be parsed.
	// Distinct from ErrAuthenticationFailed: the envelope never reached the cipher.
	ErrMalformedEnvelope = errors.Wrap(errors.ErrInvalidInput, "malformed encrypted envelope")

	// ErrInvalidKeySize indicates the cipher key is not exactly 32 bytes.
	// An uninitialized or truncated key is a fatal misconfiguration.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "invalid key size")

	// ErrUnsupportedAlgorithm indicates the configured cipher algorithm is unknown.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrConfiguration, "unsupported algorithm")
)
