// Package config provides application configuration through environment variables.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	appvalidation "github.com/maxvyquincy9393/alliv-security/internal/validation"
)

// Supported cipher algorithm names.
const (
	AlgorithmAESGCM    = "aes-gcm"
	AlgorithmXChaCha20 = "xchacha20-poly1305"
)

// encryptionKeySize is the required decoded size of the encryption key in bytes.
const encryptionKeySize = 32

// Config holds all application configuration.
//
// The three secrets (EncryptionKey, TokenSecret, PasswordPepper) are read once
// at startup and treated as read-only for the life of the process. They are
// never logged.
type Config struct {
	// EncryptionKey is the hex-encoded 256-bit key for field encryption.
	EncryptionKey string
	// TokenSecret is the signing secret for compact tokens.
	TokenSecret string
	// PasswordPepper is the application-wide secret mixed into password hashing.
	PasswordPepper string

	// CipherAlgorithm selects the AEAD implementation ("aes-gcm" or "xchacha20-poly1305").
	CipherAlgorithm string
	// TokenExpiration is the default lifetime of issued tokens.
	TokenExpiration time.Duration

	// DevMode enables throwaway secret generation when secrets are unset.
	// Never enable this in production: generated keys do not survive a restart,
	// so previously stored ciphertext becomes unreadable.
	DevMode bool

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Secrets
		EncryptionKey:  env.GetString("SECURITY_ENCRYPTION_KEY", ""),
		TokenSecret:    env.GetString("SECURITY_TOKEN_SECRET", ""),
		PasswordPepper: env.GetString("SECURITY_PASSWORD_PEPPER", ""),

		// Cipher
		CipherAlgorithm: env.GetString("SECURITY_CIPHER_ALGORITHM", AlgorithmAESGCM),

		// Tokens
		TokenExpiration: env.GetDuration("SECURITY_TOKEN_EXPIRATION_SECONDS", 3600, time.Second),

		// Development mode
		DevMode: env.GetBool("SECURITY_DEV_MODE", false),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "security"),
	}
}

// Validate checks that the configuration is complete and well-formed.
// Missing or malformed secrets are a fatal misconfiguration: the process
// should refuse to start rather than fall back to a weak default.
func (c *Config) Validate() error {
	err := validation.Errors{
		"SECURITY_ENCRYPTION_KEY": validation.Validate(
			c.EncryptionKey,
			validation.Required,
			appvalidation.HexKey(encryptionKeySize),
		),
		"SECURITY_TOKEN_SECRET": validation.Validate(
			c.TokenSecret,
			validation.Required,
			appvalidation.NotBlank,
		),
		"SECURITY_PASSWORD_PEPPER": validation.Validate(
			c.PasswordPepper,
			validation.Required,
			appvalidation.NotBlank,
		),
		"SECURITY_CIPHER_ALGORITHM": validation.Validate(
			c.CipherAlgorithm,
			validation.Required,
			validation.In(AlgorithmAESGCM, AlgorithmXChaCha20),
		),
	}.Filter()

	return appvalidation.WrapValidationError(err)
}

// ApplyDevDefaults generates throwaway values for any unset secret when
// DevMode is enabled. Each generated secret is announced with a warning so a
// misconfigured deployment cannot silently run on ephemeral keys.
func (c *Config) ApplyDevDefaults(logger *slog.Logger) {
	if !c.DevMode {
		return
	}

	if c.EncryptionKey == "" {
		c.EncryptionKey = randomHex(encryptionKeySize)
		logger.Warn(
			"SECURITY_ENCRYPTION_KEY is unset; generated a throwaway key, stored ciphertext will not survive a restart",
			slog.String("env", "SECURITY_ENCRYPTION_KEY"),
		)
	}
	if c.TokenSecret == "" {
		c.TokenSecret = randomHex(encryptionKeySize)
		logger.Warn(
			"SECURITY_TOKEN_SECRET is unset; generated a throwaway signing secret, issued tokens will not survive a restart",
			slog.String("env", "SECURITY_TOKEN_SECRET"),
		)
	}
	if c.PasswordPepper == "" {
		c.PasswordPepper = randomHex(encryptionKeySize)
		logger.Warn(
			"SECURITY_PASSWORD_PEPPER is unset; generated a throwaway pepper, stored password hashes will not verify after a restart",
			slog.String("env", "SECURITY_PASSWORD_PEPPER"),
		)
	}
}

// EncryptionKeyBytes decodes the hex-encoded encryption key.
func (c *Config) EncryptionKeyBytes() ([]byte, error) {
	key, err := hex.DecodeString(c.EncryptionKey)
	if err != nil {
		return nil, appvalidation.WrapValidationError(err)
	}
	return key, nil
}

// randomHex returns n random bytes hex-encoded from the secure random source.
func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
