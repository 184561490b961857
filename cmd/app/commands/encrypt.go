package commands

import (
	"fmt"
)

// RunEncrypt encrypts a single field value with the configured cipher and
// prints the serialized envelope.
func RunEncrypt(ioTuple IOTuple, value string) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	fieldCipher, err := container.FieldCipher()
	if err != nil {
		return fmt.Errorf("failed to create field cipher: %w", err)
	}

	serialized, err := fieldCipher.EncryptField(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, serialized)
	return nil
}
