package commands

import (
	"fmt"
)

// RunDecrypt decrypts a serialized envelope produced by the encrypt command
// and prints the recovered value.
func RunDecrypt(ioTuple IOTuple, serialized string) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	fieldCipher, err := container.FieldCipher()
	if err != nil {
		return fmt.Errorf("failed to create field cipher: %w", err)
	}

	value, err := fieldCipher.DecryptField(serialized)
	if err != nil {
		return fmt.Errorf("failed to decrypt value: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, value)
	return nil
}
