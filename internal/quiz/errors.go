package quiz

import (
	"errors"
	"strings"
)

var ErrQuizNotFound = errors.New("no such quiz")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation. Nothing is
// persisted when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// StoreError wraps an unexpected store failure together with the notice shown
// to the user.
type StoreError struct {
	Op     string
	Notice string
	Err    error
}

func (e *StoreError) Error() string {
	return e.Op + " quiz: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
