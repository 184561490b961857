package commands

import (
	"encoding/json"
	"fmt"
)

// RunVerifyToken verifies a compact signed token and prints its claims as
// JSON. Any verification failure is returned as an error.
func RunVerifyToken(ioTuple IOTuple, token string) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	signer, err := container.TokenSigner()
	if err != nil {
		return fmt.Errorf("failed to create token signer: %w", err)
	}

	claims, err := signer.Verify(token)
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	encoded, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("failed to encode claims: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, string(encoded))
	return nil
}
