package service

import (
	"crypto/rand"
	"math/big"

	apperrors "github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// Character classes for generated passwords.
const (
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{};:,.<>?"
)

// generatePassword builds a password with at least one character from each
// class, fills the rest uniformly from the union of all classes, and shuffles
// the result so the guaranteed characters are not predictably positioned.
// Every random choice comes from crypto/rand.
func generatePassword(length int) (string, error) {
	if length < 4 {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "password length must be at least 4")
	}

	classes := []string{upperChars, lowerChars, digitChars, specialChars}
	allChars := upperChars + lowerChars + digitChars + specialChars

	password := make([]byte, 0, length)
	for _, class := range classes {
		c, err := randomChar(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < length {
		c, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// randomChar picks one character from set using the secure random source.
func randomChar(set string) (byte, error) {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read random source")
	}
	return set[i.Int64()], nil
}

// shuffle permutes b in place with a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return apperrors.Wrap(err, "failed to read random source")
		}
		b[i], b[j.Int64()] = b[j.Int64()], b[i]
	}
	return nil
}
