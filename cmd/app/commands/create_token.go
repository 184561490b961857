package commands

import (
	"encoding/json"
	"fmt"
	"time"
)

// RunCreateToken issues a compact signed token carrying the claims parsed
// from claimsJSON. When expiresIn is zero the configured default lifetime is
// used.
func RunCreateToken(ioTuple IOTuple, claimsJSON string, expiresIn time.Duration) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	payload := map[string]any{}
	if claimsJSON != "" {
		if err := json.Unmarshal([]byte(claimsJSON), &payload); err != nil {
			return fmt.Errorf("failed to parse claims JSON: %w", err)
		}
	}

	if expiresIn <= 0 {
		expiresIn = container.Config().TokenExpiration
	}

	signer, err := container.TokenSigner()
	if err != nil {
		return fmt.Errorf("failed to create token signer: %w", err)
	}

	token, err := signer.Issue(payload, expiresIn)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, token)
	return nil
}
