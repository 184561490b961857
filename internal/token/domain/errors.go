// Package domain defines the error kinds of the compact token module.
package domain

import (
	"github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// Token verification errors. All three are non-retryable; callers should
// treat any of them as "re-authenticate". Messages are generic and never
// echo the offending token.
var (
	// ErrMalformedToken indicates the token does not have the expected
	// three-segment structure or its claims cannot be decoded.
	ErrMalformedToken = errors.Wrap(errors.ErrUnauthorized, "malformed token")

	// ErrInvalidSignature indicates the signature does not match the header
	// and claims. The token was tampered with or signed with a different secret.
	ErrInvalidSignature = errors.Wrap(errors.ErrUnauthorized, "invalid token signature")

	// ErrTokenExpired indicates the token's expiry timestamp is in the past.
	// Expiry is terminal: a token never becomes valid again.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token expired")
)
