package service

import (
	"crypto/rand"
	"encoding/hex"

	apperrors "github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// refreshTokenSize is the number of random bytes in a refresh token.
const refreshTokenSize = 64

// GenerateRefreshToken returns a long opaque random string with no embedded
// structure. It carries no claims and cannot be verified standalone: the
// caller stores it server-side and looks it up on use.
func GenerateRefreshToken() (string, error) {
	randomBytes := make([]byte, refreshTokenSize)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", apperrors.Wrap(err, "failed to generate refresh token")
	}
	return hex.EncodeToString(randomBytes), nil
}
