package commands

import (
	"fmt"
)

// RunHashPassword hashes a password with the configured memory-hard hasher
// and prints the encoded hash.
func RunHashPassword(ioTuple IOTuple, password string) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	passwordSvc, err := container.PasswordService()
	if err != nil {
		return fmt.Errorf("failed to create password service: %w", err)
	}

	hash, err := passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, hash)
	return nil
}

// RunVerifyPassword checks a password against a stored hash and prints the
// outcome. A mismatch is a normal result, not an error.
func RunVerifyPassword(ioTuple IOTuple, password, hash string) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	passwordSvc, err := container.PasswordService()
	if err != nil {
		return fmt.Errorf("failed to create password service: %w", err)
	}

	if passwordSvc.Verify(password, hash) {
		fmt.Fprintln(ioTuple.Writer, "password matches")
	} else {
		fmt.Fprintln(ioTuple.Writer, "password does not match")
	}
	return nil
}
