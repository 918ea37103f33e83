package resumes

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("resume not found")

// ValidationError reports required fields missing from a create payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(e.Fields, ", "))
}
