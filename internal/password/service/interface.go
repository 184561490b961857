// Package service implements password hardening: Argon2id hashing with an
// application-wide pepper, strength scoring, and secure password generation.
package service

// StrengthResult is the structured verdict of a password strength check.
// Strength checking never fails: a result is always returned.
type StrengthResult struct {
	// IsValid is true only when every criterion passed and no denylist entry matched.
	IsValid bool
	// Errors lists the human-readable reasons the password was rejected.
	Errors []string
	// Score rates the password from 0 (unusable) to 10 (strong).
	Score int
}

// Service defines the password hardening operations.
//
// Hash and Verify are deliberately expensive (memory-hard cost function) and
// block the calling goroutine; schedule them off any latency-critical path.
// Implementations hold no mutable state and are safe for concurrent use.
type Service interface {
	// Hash hashes password mixed with the application pepper. The returned
	// hash string is self-describing: it embeds its own salt and cost.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash, using the hashing
	// primitive's constant-time comparison. It never reveals why
	// verification failed.
	Verify(password, hash string) bool

	// CheckStrength evaluates password against the strength criteria and the
	// common-password denylist.
	CheckStrength(password string) StrengthResult

	// GeneratePassword builds a random password of the given length containing
	// at least one uppercase letter, one lowercase letter, one digit, and one
	// special character. All randomness comes from the secure random source.
	GeneratePassword(length int) (string, error)
}
