package validation

import (
	"strings"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/maxvyquincy9393/alliv-security/internal/errors"
)

func TestHexKey(t *testing.T) {
	rule := HexKey(32)

	t.Run("valid 32-byte hex key", func(t *testing.T) {
		key := strings.Repeat("ab", 32)
		assert.NoError(t, validation.Validate(key, rule))
	})

	t.Run("not hex", func(t *testing.T) {
		assert.Error(t, validation.Validate(strings.Repeat("zz", 32), rule))
	})

	t.Run("wrong size", func(t *testing.T) {
		assert.Error(t, validation.Validate("abcd", rule))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Error(t, validation.Validate("", rule))
	})
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, validation.Validate("secret", NotBlank))
	assert.Error(t, validation.Validate("   ", NotBlank))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as configuration error", func(t *testing.T) {
		err := WrapValidationError(validation.NewError("code", "bad value"))
		assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))
	})
}
