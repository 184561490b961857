package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/maxvyquincy9393/alliv-security/internal/sanitize"
)

// RunSanitize reads a JSON document from the command input, strips sensitive
// fields, and prints the sanitized document. Extra field names are stripped
// in addition to the default sensitive set.
func RunSanitize(ioTuple IOTuple, extraFields []string) error {
	raw, err := io.ReadAll(ioTuple.Reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var document any
	if err := json.Unmarshal(raw, &document); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}

	fields := append([]string{}, sanitize.DefaultSensitiveFields...)
	fields = append(fields, extraFields...)

	sanitized := sanitize.Sanitize(document, fields...)

	encoded, err := json.Marshal(sanitized)
	if err != nil {
		return fmt.Errorf("failed to encode sanitized JSON: %w", err)
	}

	fmt.Fprintln(ioTuple.Writer, string(encoded))
	return nil
}
