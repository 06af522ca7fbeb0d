// Package apperrors defines the structured error taxonomy shared by the
// service and handler layers. Storage-level failures are translated into
// these types before they reach the HTTP boundary.
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound marks lookups by id that matched nothing. Handlers render it
// as a 404.
var ErrNotFound = errors.New("not found")

// ValidationError carries per-field messages. Uniqueness conflicts are
// reported through the same type (and the same 400 status) as plain field
// errors.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
	return e
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on: %s", strings.Join(fields, ", "))
}

// ProtectedError rejects a delete that would orphan dependent records.
type ProtectedError struct {
	Message string
}

func (e *ProtectedError) Error() string {
	return e.Message
}
