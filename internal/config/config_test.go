package config

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/maxvyquincy9393/alliv-security/internal/errors"
)

// testKey is a valid 64-char hex encoding of a 32-byte key.
var testKey = strings.Repeat("0f", 32)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.EncryptionKey)
				assert.Empty(t, cfg.TokenSecret)
				assert.Empty(t, cfg.PasswordPepper)
				assert.Equal(t, AlgorithmAESGCM, cfg.CipherAlgorithm)
				assert.Equal(t, 3600*time.Second, cfg.TokenExpiration)
				assert.False(t, cfg.DevMode)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "security", cfg.MetricsNamespace)
			},
		},
		{
			name: "load custom configuration",
			envVars: map[string]string{
				"SECURITY_ENCRYPTION_KEY":           testKey,
				"SECURITY_TOKEN_SECRET":             "signing-secret",
				"SECURITY_PASSWORD_PEPPER":          "pepper",
				"SECURITY_CIPHER_ALGORITHM":         AlgorithmXChaCha20,
				"SECURITY_TOKEN_EXPIRATION_SECONDS": "60",
				"SECURITY_DEV_MODE":                 "true",
				"LOG_LEVEL":                         "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, testKey, cfg.EncryptionKey)
				assert.Equal(t, "signing-secret", cfg.TokenSecret)
				assert.Equal(t, "pepper", cfg.PasswordPepper)
				assert.Equal(t, AlgorithmXChaCha20, cfg.CipherAlgorithm)
				assert.Equal(t, 60*time.Second, cfg.TokenExpiration)
				assert.True(t, cfg.DevMode)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			EncryptionKey:   testKey,
			TokenSecret:     "signing-secret",
			PasswordPepper:  "pepper",
			CipherAlgorithm: AlgorithmAESGCM,
		}
	}

	t.Run("valid configuration", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing encryption key", func(t *testing.T) {
		cfg := valid()
		cfg.EncryptionKey = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))
	})

	t.Run("encryption key with wrong size", func(t *testing.T) {
		cfg := valid()
		cfg.EncryptionKey = "abcd"
		assert.Error(t, cfg.Validate())
	})

	t.Run("encryption key with invalid hex", func(t *testing.T) {
		cfg := valid()
		cfg.EncryptionKey = strings.Repeat("zz", 32)
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing token secret", func(t *testing.T) {
		cfg := valid()
		cfg.TokenSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing pepper", func(t *testing.T) {
		cfg := valid()
		cfg.PasswordPepper = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown cipher algorithm", func(t *testing.T) {
		cfg := valid()
		cfg.CipherAlgorithm = "rot13"
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_ApplyDevDefaults(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("generates missing secrets in dev mode", func(t *testing.T) {
		cfg := &Config{DevMode: true, CipherAlgorithm: AlgorithmAESGCM}
		cfg.ApplyDevDefaults(logger)
		assert.NoError(t, cfg.Validate())
		assert.Len(t, cfg.EncryptionKey, 64)
		assert.NotEmpty(t, cfg.TokenSecret)
		assert.NotEmpty(t, cfg.PasswordPepper)
	})

	t.Run("keeps provided secrets", func(t *testing.T) {
		cfg := &Config{
			DevMode:        true,
			EncryptionKey:  testKey,
			TokenSecret:    "signing-secret",
			PasswordPepper: "pepper",
		}
		cfg.ApplyDevDefaults(logger)
		assert.Equal(t, testKey, cfg.EncryptionKey)
		assert.Equal(t, "signing-secret", cfg.TokenSecret)
		assert.Equal(t, "pepper", cfg.PasswordPepper)
	})

	t.Run("does nothing outside dev mode", func(t *testing.T) {
		cfg := &Config{}
		cfg.ApplyDevDefaults(logger)
		assert.Empty(t, cfg.EncryptionKey)
	})
}

func TestConfig_EncryptionKeyBytes(t *testing.T) {
	cfg := &Config{EncryptionKey: testKey}
	key, err := cfg.EncryptionKeyBytes()
	require.NoError(t, err)
	assert.Len(t, key, 32)
}
