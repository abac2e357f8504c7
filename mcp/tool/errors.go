package tool

import (
	"errors"
	"fmt"
)

// ErrUnknownTool is returned for tool names outside the registry.
var ErrUnknownTool = errors.New("unknown tool")

// ValidationError reports a missing or malformed tool argument.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field == "":
		return "invalid arguments: " + e.Reason
	case e.Reason == "":
		return fmt.Sprintf("%s is required", e.Field)
	default:
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
}

func missing(field string) error {
	return &ValidationError{Field: field}
}
