package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/maxvyquincy9393/alliv-security/internal/errors"
	tokenDomain "github.com/maxvyquincy9393/alliv-security/internal/token/domain"
)

// segmentEncoding is URL-safe base64 without padding, the compact token
// segment encoding.
var segmentEncoding = base64.RawURLEncoding

// tokenHeader describes the signing algorithm of a compact token.
type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// hmacSigner implements Signer using HMAC-SHA256.
type hmacSigner struct {
	secret []byte
	now    func() time.Time
}

// NewHMACSigner creates a Signer that signs tokens with HMAC-SHA256 under the
// given signing secret. The secret is read once and shared read-only across
// concurrent callers.
func NewHMACSigner(secret string) Signer {
	return &hmacSigner{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue mints a compact signed token.
//
// The claims are the caller payload merged with issuedAt (current time),
// expiresAt (issuedAt + expiresIn), and a fresh jti. Header and claims are
// encoded independently and the signature is computed over
// encodedHeader + "." + encodedClaims.
func (s *hmacSigner) Issue(payload map[string]any, expiresIn time.Duration) (string, error) {
	issuedAt := s.now()

	claims := make(map[string]any, len(payload)+3)
	for k, v := range payload {
		claims[k] = v
	}
	claims[ClaimIssuedAt] = issuedAt.Unix()
	claims[ClaimExpiresAt] = issuedAt.Add(expiresIn).Unix()
	claims[ClaimTokenID] = uuid.NewString()

	headerJSON, err := json.Marshal(tokenHeader{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode token header")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "payload is not serializable")
	}

	signingInput := segmentEncoding.EncodeToString(headerJSON) +
		"." +
		segmentEncoding.EncodeToString(claimsJSON)
	signature := s.sign(signingInput)

	return signingInput + "." + segmentEncoding.EncodeToString(signature), nil
}

// Verify checks a compact signed token and returns its claims.
//
// Order matters: structure first, then signature over the raw segments, then
// expiry from the decoded claims. The signature comparison is constant time.
func (s *hmacSigner) Verify(token string) (map[string]any, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return nil, tokenDomain.ErrMalformedToken
	}

	signature, err := segmentEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, tokenDomain.ErrInvalidSignature
	}
	expected := s.sign(parts[0] + "." + parts[1])
	if !hmac.Equal(signature, expected) {
		return nil, tokenDomain.ErrInvalidSignature
	}

	claimsJSON, err := segmentEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, tokenDomain.ErrMalformedToken
	}
	var claims map[string]any
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, tokenDomain.ErrMalformedToken
	}

	expiresAt, ok := claims[ClaimExpiresAt].(float64)
	if !ok {
		return nil, tokenDomain.ErrMalformedToken
	}
	if s.now().Unix() >= int64(expiresAt) {
		return nil, tokenDomain.ErrTokenExpired
	}

	return claims, nil
}

// sign computes the HMAC-SHA256 of the signing input.
func (s *hmacSigner) sign(signingInput string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(signingInput))
	return mac.Sum(nil)
}
