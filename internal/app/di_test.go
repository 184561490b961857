package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/maxvyquincy9393/alliv-security/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		CipherAlgorithm:  config.AlgorithmAESGCM,
		TokenExpiration:  time.Hour,
		DevMode:          true,
		LogLevel:         "error",
		MetricsEnabled:   false,
		MetricsNamespace: "security_test",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.ApplyDevDefaults(logger)
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestContainer(t *testing.T) {
	t.Run("returns configuration", func(t *testing.T) {
		cfg := testConfig(t)
		container := NewContainer(cfg)

		assert.Equal(t, cfg, container.Config())
	})

	t.Run("returns logger", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		logger := container.Logger()
		require.NotNil(t, logger)
		assert.Same(t, logger, container.Logger())
	})

	t.Run("builds field cipher", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		fieldCipher, err := container.FieldCipher()
		require.NoError(t, err)

		serialized, err := fieldCipher.EncryptField("secret value")
		require.NoError(t, err)

		value, err := fieldCipher.DecryptField(serialized)
		require.NoError(t, err)
		assert.Equal(t, "secret value", value)
	})

	t.Run("builds password service", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		passwordSvc, err := container.PasswordService()
		require.NoError(t, err)

		hash, err := passwordSvc.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, passwordSvc.Verify("correct horse battery staple", hash))
	})

	t.Run("builds token signer", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		signer, err := container.TokenSigner()
		require.NoError(t, err)

		token, err := signer.Issue(map[string]any{"sub": "user-1"}, container.Config().TokenExpiration)
		require.NoError(t, err)

		claims, err := signer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims["sub"])
	})

	t.Run("fails on invalid cipher algorithm", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.CipherAlgorithm = "rot13"
		container := NewContainer(cfg)

		_, err := container.FieldCipher()
		require.Error(t, err)

		// The first failure is cached and returned on later calls.
		_, cachedErr := container.FieldCipher()
		assert.Equal(t, err, cachedErr)
	})

	t.Run("metrics disabled uses no-op recorder", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		require.NotNil(t, businessMetrics)
	})

	t.Run("metrics enabled builds provider", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.MetricsEnabled = true
		container := NewContainer(cfg)

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)
		assert.NotNil(t, provider.Handler())

		require.NoError(t, container.Shutdown(context.Background()))
	})

	t.Run("shutdown without initialized components", func(t *testing.T) {
		container := NewContainer(testConfig(t))

		assert.NoError(t, container.Shutdown(context.Background()))
	})
}
