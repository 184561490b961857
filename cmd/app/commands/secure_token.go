package commands

import (
	"fmt"
)

// RunSecureToken generates random bytes from the secure random source and
// prints them hex-encoded.
func RunSecureToken(ioTuple IOTuple, length int) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	fieldCipher, err := container.FieldCipher()
	if err != nil {
		return fmt.Errorf("failed to create field cipher: %w", err)
	}

	token, err := fieldCipher.SecureToken(length)
	if err != nil {
		return fmt.Errorf("failed to generate secure token: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, token)
	return nil
}
