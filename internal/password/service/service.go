package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// passwordService implements Service using Argon2id for password hashing.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
	pepper string
}

// NewService creates a password Service using Argon2id hashing with the
// Moderate policy for a balance between security and performance. The pepper
// is a second process-wide secret, distinct from the cipher key, mixed into
// every hash in addition to the per-password salt.
func NewService(pepper string) Service {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with a valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
		pepper: pepper,
	}
}

// Hash hashes the peppered password using Argon2id.
func (p *passwordService) Hash(password string) (string, error) {
	hashed, err := p.hasher.Hash([]byte(password + p.pepper))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

// Verify performs a constant-time comparison between the peppered password
// and its stored hash.
func (p *passwordService) Verify(password, hash string) bool {
	ok, err := p.hasher.Verify([]byte(password+p.pepper), hash)
	if err != nil {
		return false
	}
	return ok
}

// CheckStrength evaluates the password against the strength criteria.
func (p *passwordService) CheckStrength(password string) StrengthResult {
	return checkStrength(password)
}

// GeneratePassword builds a random password of the given length.
func (p *passwordService) GeneratePassword(length int) (string, error) {
	return generatePassword(length)
}
