package commands

import (
	"fmt"
)

// RunCheckPassword evaluates password strength and prints the score, the
// validity verdict, and any unmet criteria.
func RunCheckPassword(ioTuple IOTuple, password string) error {
	container, err := newContainer()
	if err != nil {
		return err
	}
	defer closeContainer(container, container.Logger())

	passwordSvc, err := container.PasswordService()
	if err != nil {
		return fmt.Errorf("failed to create password service: %w", err)
	}

	result := passwordSvc.CheckStrength(password)

	fmt.Fprintf(ioTuple.Writer, "score: %d\n", result.Score)
	fmt.Fprintf(ioTuple.Writer, "valid: %t\n", result.IsValid)
	for _, message := range result.Errors {
		fmt.Fprintf(ioTuple.Writer, "- %s\n", message)
	}
	return nil
}
