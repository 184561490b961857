package commands

import (
	"fmt"
)

// RunGeneratePassword generates a random password of the requested length
// and prints it.
func RunGeneratePassword(ioTuple IOTuple, length int) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	passwordSvc, err := container.PasswordService()
	if err != nil {
		return fmt.Errorf("failed to create password service: %w", err)
	}

	password, err := passwordSvc.GeneratePassword(length)
	if err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, password)
	return nil
}
