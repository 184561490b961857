package service

import (
	"context"
	"time"

	cryptoDomain "github.com/maxvyquincy9393/alliv-security/internal/crypto/domain"
	"github.com/maxvyquincy9393/alliv-security/internal/metrics"
)

// fieldCipherWithMetrics decorates FieldCipher with metrics instrumentation.
type fieldCipherWithMetrics struct {
	next    FieldCipher
	metrics metrics.BusinessMetrics
}

// NewFieldCipherWithMetrics wraps a FieldCipher with metrics recording.
func NewFieldCipherWithMetrics(fc FieldCipher, m metrics.BusinessMetrics) FieldCipher {
	return &fieldCipherWithMetrics{
		next:    fc,
		metrics: m,
	}
}

// record emits the counter and duration for one operation.
func (f *fieldCipherWithMetrics) record(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ctx := context.Background()
	f.metrics.RecordOperation(ctx, "crypto", operation, status)
	f.metrics.RecordDuration(ctx, "crypto", operation, time.Since(start), status)
}

// Encrypt records metrics for envelope encryption.
func (f *fieldCipherWithMetrics) Encrypt(plaintext []byte) (cryptoDomain.Envelope, error) {
	start := time.Now()
	envelope, err := f.next.Encrypt(plaintext)
	f.record("encrypt", start, err)
	return envelope, err
}

// Decrypt records metrics for envelope decryption.
func (f *fieldCipherWithMetrics) Decrypt(envelope cryptoDomain.Envelope) ([]byte, error) {
	start := time.Now()
	plaintext, err := f.next.Decrypt(envelope)
	f.record("decrypt", start, err)
	return plaintext, err
}

// EncryptField records metrics for field encryption.
func (f *fieldCipherWithMetrics) EncryptField(value any) (string, error) {
	start := time.Now()
	serialized, err := f.next.EncryptField(value)
	f.record("encrypt_field", start, err)
	return serialized, err
}

// DecryptField records metrics for field decryption.
func (f *fieldCipherWithMetrics) DecryptField(serialized string) (any, error) {
	start := time.Now()
	value, err := f.next.DecryptField(serialized)
	f.record("decrypt_field", start, err)
	return value, err
}

// Hash passes through; digests are too cheap to be worth a histogram entry.
func (f *fieldCipherWithMetrics) Hash(data string) string {
	return f.next.Hash(data)
}

// SecureToken records metrics for secure token generation.
func (f *fieldCipherWithMetrics) SecureToken(length int) (string, error) {
	start := time.Now()
	token, err := f.next.SecureToken(length)
	f.record("secure_token", start, err)
	return token, err
}
