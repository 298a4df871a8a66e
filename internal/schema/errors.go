// Package schema defines the request shapes accepted by the HTTP API
// and the validation rules that turn them into entities. Validation is
// explicit rather than tag-driven so failures can report a per-field
// message map to the client.
package schema

import (
	"sort"
	"strings"
)

// ValidationError maps field names to human-readable constraint
// violations. It is surfaced to clients as the `details` object of a
// 400 response.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) hasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, f := range fields {
		b.WriteString(": ")
		b.WriteString(f)
		b.WriteString(" ")
		b.WriteString(e.Fields[f])
	}
	return b.String()
}
