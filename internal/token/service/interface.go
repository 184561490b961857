// Package service implements compact signed tokens: a minimal authenticated
// claims envelope verified with HMAC rather than encryption. The wire shape
// matches industry-standard compact tokens (three dot-joined URL-safe
// segments) for familiarity, with no interoperability guarantee.
package service

import "time"

// Reserved claim keys written by the signer. Caller payload cannot override
// them: reserved claims are applied after the payload is copied.
const (
	ClaimIssuedAt  = "issuedAt"
	ClaimExpiresAt = "expiresAt"
	ClaimTokenID   = "jti"
)

// Signer issues and verifies compact signed tokens. It is an interface so a
// standards-based implementation can replace the built-in one without
// touching callers.
type Signer interface {
	// Issue mints a token carrying payload plus the reserved claims
	// (issuedAt, expiresAt, jti). Verification is all-or-nothing: a token is
	// never partially valid.
	Issue(payload map[string]any, expiresIn time.Duration) (string, error)

	// Verify checks structure, signature, and expiry in that order and
	// returns the full claims map. Failures map to domain.ErrMalformedToken,
	// domain.ErrInvalidSignature, and domain.ErrTokenExpired.
	Verify(token string) (map[string]any, error)
}
