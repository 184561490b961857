package service

import (
	"context"
	"time"

	"github.com/maxvyquincy9393/alliv-security/internal/metrics"
)

// serviceWithMetrics decorates Service with metrics instrumentation.
type serviceWithMetrics struct {
	next    Service
	metrics metrics.BusinessMetrics
}

// NewServiceWithMetrics wraps a password Service with metrics recording.
func NewServiceWithMetrics(svc Service, m metrics.BusinessMetrics) Service {
	return &serviceWithMetrics{
		next:    svc,
		metrics: m,
	}
}

// Hash records metrics for password hashing operations. The duration
// histogram is the interesting part here: hashing is CPU-bound by design.
func (s *serviceWithMetrics) Hash(password string) (string, error) {
	start := time.Now()
	hash, err := s.next.Hash(password)

	status := "success"
	if err != nil {
		status = "error"
	}

	ctx := context.Background()
	s.metrics.RecordOperation(ctx, "password", "hash_password", status)
	s.metrics.RecordDuration(ctx, "password", "hash_password", time.Since(start), status)

	return hash, err
}

// Verify records metrics for password verification operations.
func (s *serviceWithMetrics) Verify(password, hash string) bool {
	start := time.Now()
	ok := s.next.Verify(password, hash)

	status := "success"
	if !ok {
		status = "error"
	}

	ctx := context.Background()
	s.metrics.RecordOperation(ctx, "password", "verify_password", status)
	s.metrics.RecordDuration(ctx, "password", "verify_password", time.Since(start), status)

	return ok
}

// CheckStrength records metrics for strength checks.
func (s *serviceWithMetrics) CheckStrength(password string) StrengthResult {
	result := s.next.CheckStrength(password)

	status := "success"
	if !result.IsValid {
		status = "error"
	}
	s.metrics.RecordOperation(context.Background(), "password", "check_strength", status)

	return result
}

// GeneratePassword records metrics for password generation.
func (s *serviceWithMetrics) GeneratePassword(length int) (string, error) {
	password, err := s.next.GeneratePassword(length)

	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.RecordOperation(context.Background(), "password", "generate_password", status)

	return password, err
}
