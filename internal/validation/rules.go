// Package validation provides custom validation rules for configuration values.
package validation

import (
	"encoding/hex"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrConfiguration.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrConfiguration, err.Error())
}

// HexKey validates that a string is valid hexadecimal decoding to exactly
// keySize bytes. Used for the encryption key supplied via the environment.
func HexKey(keySize int) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return validation.NewError("validation_hex_key", "must be a string")
		}
		decoded, err := hex.DecodeString(s)
		if err != nil {
			return validation.NewError("validation_hex_key", "must be a valid hex string")
		}
		if len(decoded) != keySize {
			return validation.NewError("validation_hex_key_size", "must decode to the expected key size")
		}
		return nil
	})
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
