package domain

// Algorithm identifies an AEAD cipher implementation.
type Algorithm string

// Supported AEAD algorithms.
const (
	// AESGCM is AES-256-GCM, the default algorithm.
	AESGCM Algorithm = "aes-gcm"
	// XChaCha20 is XChaCha20-Poly1305, preferred on CPUs without AES acceleration.
	XChaCha20 Algorithm = "xchacha20-poly1305"
)

// ParseAlgorithm converts a configuration string into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM:
		return AESGCM, nil
	case XChaCha20:
		return XChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
