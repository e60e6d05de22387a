// Package types contains shared request types and validation helpers for
// the v1 API.
package types

import (
	"fmt"
	"strings"
)

// FieldError describes a single validation failure on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every violation found in one
// validation pass, so a caller sees the complete set of problems in a
// single round trip instead of one at a time.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// Fields groups the violation messages by field name for the wire format.
func (v ValidationErrors) Fields() map[string][]string {
	fields := make(map[string][]string, len(v))
	for _, fe := range v {
		fields[fe.Field] = append(fields[fe.Field], fe.Message)
	}
	return fields
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}
