package shared

import (
	"fmt"
	"strings"
	"time"
)

// FieldError describes a single violated constraint on a named input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validation field error codes
const (
	FieldRequired   = "REQUIRED"
	FieldFormat     = "FORMAT"
	FieldRange      = "RANGE"
	FieldFuture     = "DATE_IN_FUTURE"
	FieldReference  = "UNKNOWN_REFERENCE"
	FieldDuplicate  = "DUPLICATE"
	FieldRequiredIf = "REQUIRED_IF"
)

// ValidationError accumulates every violated field of one submission.
// Callers collect all violations and report them together; a submission is
// never rejected on the first failing field alone.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// NewValidationError creates an empty ValidationError ready to accumulate
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records a violation for the given field
func (e *ValidationError) Add(field, code, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

// Addf records a violation with a formatted message
func (e *ValidationError) Addf(field, code, format string, args ...any) {
	e.Add(field, code, fmt.Sprintf(format, args...))
}

// Merge appends all violations from another ValidationError
func (e *ValidationError) Merge(other *ValidationError) {
	if other != nil {
		e.Fields = append(e.Fields, other.Fields...)
	}
}

// HasErrors returns true if at least one violation was recorded
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns the error itself when violations exist, nil otherwise.
// Returning the typed nil directly would yield a non-nil error interface.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// ValidateDateNotFuture records a violation when the date is missing or
// lies after today. Comparison is on the calendar day, not the clock.
func ValidateDateNotFuture(verr *ValidationError, field string, date time.Time) {
	if date.IsZero() {
		verr.Add(field, FieldRequired, "La date est requise")
		return
	}
	now := time.Now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
	if date.After(endOfToday) {
		verr.Add(field, FieldFuture, "La date ne peut pas être dans le futur")
	}
}

// Error implements the error interface, listing every violated field
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
