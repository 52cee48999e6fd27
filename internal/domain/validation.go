package domain

import (
	"fmt"
	"strings"
)

// EventDtoObjectName is the object name reported in field errors raised for an EventDto.
const EventDtoObjectName = "eventDto"

// Field error codes.
const (
	CodeWrongValue    = "wrongValue"
	CodeInvalidFormat = "invalidFormat"
)

// FieldError describes one rejected value.
// swagger:model FieldError
type FieldError struct {
	ObjectName     string `json:"objectName"`
	Field          string `json:"field,omitempty"`
	Code           string `json:"code"`
	DefaultMessage string `json:"defaultMessage"`
	RejectedValue  any    `json:"rejectedValue,omitempty"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.ObjectName, e.DefaultMessage)
	}
	return fmt.Sprintf("%s.%s: %s", e.ObjectName, e.Field, e.DefaultMessage)
}

// FieldErrors is an ordered collection of field errors. An empty collection means valid.
type FieldErrors []FieldError

// HasErrors reports whether the collection holds at least one error.
func (fe FieldErrors) HasErrors() bool { return len(fe) > 0 }

// Reject appends an error for field of an EventDto.
func (fe *FieldErrors) Reject(field, code, message string, rejected any) {
	*fe = append(*fe, FieldError{
		ObjectName:     EventDtoObjectName,
		Field:          field,
		Code:           code,
		DefaultMessage: message,
		RejectedValue:  rejected,
	})
}

// ValidationError wraps a non-empty FieldErrors so it can travel as an error value.
type ValidationError struct {
	Errors FieldErrors
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
