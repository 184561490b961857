// Package domain defines the value objects of the field-encryption module.
package domain

import (
	"encoding/hex"
	"encoding/json"

	"github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// Envelope represents the result of one authenticated encryption operation.
//
// An envelope is immutable once produced. Re-encrypting the same plaintext
// yields a different envelope because the initialization vector is freshly
// generated per operation and never reused.
//
// Fields:
//   - Encrypted: the raw ciphertext without the authentication tag
//   - IV: the initialization vector (nonce) used for this encryption
//   - AuthTag: the 16-byte authentication tag over (IV, ciphertext)
type Envelope struct {
	Encrypted []byte
	IV        []byte
	AuthTag   []byte
}

// envelopeJSON is the persisted wire form of an Envelope. The field names and
// hex encoding are part of the storage contract: changing either breaks
// ciphertext already stored in a database column.
type envelopeJSON struct {
	Encrypted string `json:"encrypted"`
	IV        string `json:"iv"`
	AuthTag   string `json:"authTag"`
}

// ParseEnvelope deserializes an Envelope from its single-string storage form.
//
// The input must be a JSON object {"encrypted":hex,"iv":hex,"authTag":hex}.
// The encrypted field may be empty (an empty plaintext still carries a tag);
// the iv and authTag fields must not be. Any structural or encoding problem
// is reported as ErrMalformedEnvelope.
func ParseEnvelope(serialized string) (Envelope, error) {
	var raw envelopeJSON
	if err := json.Unmarshal([]byte(serialized), &raw); err != nil {
		return Envelope{}, errors.Wrap(ErrMalformedEnvelope, "invalid JSON")
	}
	if raw.IV == "" || raw.AuthTag == "" {
		return Envelope{}, errors.Wrap(ErrMalformedEnvelope, "missing field")
	}

	encrypted, err := hex.DecodeString(raw.Encrypted)
	if err != nil {
		return Envelope{}, errors.Wrap(ErrMalformedEnvelope, "invalid ciphertext encoding")
	}
	iv, err := hex.DecodeString(raw.IV)
	if err != nil {
		return Envelope{}, errors.Wrap(ErrMalformedEnvelope, "invalid iv encoding")
	}
	authTag, err := hex.DecodeString(raw.AuthTag)
	if err != nil {
		return Envelope{}, errors.Wrap(ErrMalformedEnvelope, "invalid authTag encoding")
	}

	return Envelope{
		Encrypted: encrypted,
		IV:        iv,
		AuthTag:   authTag,
	}, nil
}

// String serializes the Envelope for storage in a single text column.
//
// Round trip holds: ParseEnvelope(e.String()) equals e.
func (e Envelope) String() string {
	raw := envelopeJSON{
		Encrypted: hex.EncodeToString(e.Encrypted),
		IV:        hex.EncodeToString(e.IV),
		AuthTag:   hex.EncodeToString(e.AuthTag),
	}
	// Marshal cannot fail on a struct of strings.
	out, _ := json.Marshal(raw)
	return string(out)
}
