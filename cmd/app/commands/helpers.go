// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/maxvyquincy9393/alliv-security/internal/app"
	"github.com/maxvyquincy9393/alliv-security/internal/config"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// newContainer loads configuration from the environment and assembles the
// dependency injection container. Dev-mode secret generation runs before
// validation so a local shell can use the CLI without exporting secrets.
func newContainer() (*app.Container, error) {
	cfg := config.Load()

	bootstrapLogger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	cfg.ApplyDevDefaults(bootstrapLogger)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return app.NewContainer(cfg), nil
}

// closeContainer closes all resources in the container and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
