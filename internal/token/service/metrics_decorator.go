package service

import (
	"context"
	"time"

	"github.com/maxvyquincy9393/alliv-security/internal/metrics"
)

// signerWithMetrics decorates Signer with metrics instrumentation.
type signerWithMetrics struct {
	next    Signer
	metrics metrics.BusinessMetrics
}

// NewSignerWithMetrics wraps a Signer with metrics recording.
func NewSignerWithMetrics(signer Signer, m metrics.BusinessMetrics) Signer {
	return &signerWithMetrics{
		next:    signer,
		metrics: m,
	}
}

// Issue records metrics for token issuance.
func (s *signerWithMetrics) Issue(payload map[string]any, expiresIn time.Duration) (string, error) {
	start := time.Now()
	token, err := s.next.Issue(payload, expiresIn)

	status := "success"
	if err != nil {
		status = "error"
	}

	ctx := context.Background()
	s.metrics.RecordOperation(ctx, "token", "issue_token", status)
	s.metrics.RecordDuration(ctx, "token", "issue_token", time.Since(start), status)

	return token, err
}

// Verify records metrics for token verification.
func (s *signerWithMetrics) Verify(token string) (map[string]any, error) {
	start := time.Now()
	claims, err := s.next.Verify(token)

	status := "success"
	if err != nil {
		status = "error"
	}

	ctx := context.Background()
	s.metrics.RecordOperation(ctx, "token", "verify_token", status)
	s.metrics.RecordDuration(ctx, "token", "verify_token", time.Since(start), status)

	return claims, err
}
