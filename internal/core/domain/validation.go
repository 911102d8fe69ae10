package domain

import "strings"

// FieldError describes one rejected field.
type FieldError struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError is a client-side rejection. It never reaches the gateway.
type ValidationError struct {
	Fields []FieldError
	// Cause is a more specific sentinel, e.g. ErrMissingID.
	Cause error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(msgs, "; ")
}

// Message returns the field messages without the sentinel prefix.
func (e *ValidationError) Message() string {
	return strings.TrimPrefix(e.Error(), ErrValidationFailed.Error()+": ")
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
