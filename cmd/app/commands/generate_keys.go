package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// secretSize is the number of random bytes behind each generated secret.
const secretSize = 32

// RunGenerateKeys generates a fresh set of application secrets and prints them
// as environment variable assignments ready to paste into a .env file. The
// raw key material is never logged, only written to the command output.
func RunGenerateKeys(ioTuple IOTuple) error {
	names := []string{
		"SECURITY_ENCRYPTION_KEY",
		"SECURITY_TOKEN_SECRET",
		"SECURITY_PASSWORD_PEPPER",
	}

	fmt.Fprintln(ioTuple.Writer, "# Generated application secrets. Store them in your secret manager.")
	for _, name := range names {
		secret := make([]byte, secretSize)
		if _, err := rand.Read(secret); err != nil {
			return fmt.Errorf("failed to generate secret for %s: %w", name, err)
		}
		fmt.Fprintf(ioTuple.Writer, "%s=%s\n", name, hex.EncodeToString(secret))
	}

	return nil
}
