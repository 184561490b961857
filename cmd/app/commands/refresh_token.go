package commands

import (
	"fmt"

	tokenService "github.com/maxvyquincy9393/alliv-security/internal/token/service"
)

// RunCreateRefreshToken generates an opaque refresh token and prints it.
func RunCreateRefreshToken(ioTuple IOTuple) error {
	token, err := tokenService.GenerateRefreshToken()
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, token)
	return nil
}
