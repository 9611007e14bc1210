package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// ErrorType classifies a DomainError
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeInternal   ErrorType = "internal"
)

// DomainError is the single error type returned by this module's packages.
// Context carries key/value details for diagnostics.
type DomainError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]string
}

func newDomainError(errorType ErrorType, message string, cause error) *DomainError {
	return &DomainError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError reports a missing, empty, duplicated or otherwise invalid value
func NewValidationError(message string, cause error) *DomainError {
	return newDomainError(ErrorTypeValidation, message, cause)
}

// NewParseError reports a structurally malformed configuration source
func NewParseError(message string, cause error) *DomainError {
	return newDomainError(ErrorTypeParse, message, cause)
}

func NewIOError(message string, cause error) *DomainError {
	return newDomainError(ErrorTypeIO, message, cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return newDomainError(ErrorTypeInternal, message, cause)
}

// WithContext attaches a key/value pair and returns the same error for chaining
func (e *DomainError) WithContext(key, value string) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

func (e *DomainError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Type))
	sb.WriteString(" error: ")
	sb.WriteString(e.Message)

	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString(" [")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s=%s", k, e.Context[k])
		}
		sb.WriteString("]")
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError of the same type, so errors.Is(err, &DomainError{Type: ErrorTypeParse}) works
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Type == e.Type && (t.Message == "" || t.Message == e.Message)
}

// IsType reports whether any DomainError in the cause chain has the given type.
// Outer wrappers of a different type do not hide an inner one.
func IsType(err error, errorType ErrorType) bool {
	for err != nil {
		var de *DomainError
		if !stderrors.As(err, &de) {
			return false
		}
		if de.Type == errorType {
			return true
		}
		err = de.Cause
	}
	return false
}

func IsValidationError(err error) bool {
	return IsType(err, ErrorTypeValidation)
}

func IsParseError(err error) bool {
	return IsType(err, ErrorTypeParse)
}

func IsIOError(err error) bool {
	return IsType(err, ErrorTypeIO)
}

func IsInternalError(err error) bool {
	return IsType(err, ErrorTypeInternal)
}

// Issues returns the individual errors combined into the cause of err.
// A DomainError whose cause is not a combined error yields itself.
func Issues(err error) []error {
	if err == nil {
		return nil
	}

	var de *DomainError
	if stderrors.As(err, &de) && de.Cause != nil {
		if combined := multierr.Errors(de.Cause); len(combined) > 1 {
			return combined
		}
		if IsType(de.Cause, de.Type) {
			return Issues(de.Cause)
		}
	}

	return []error{err}
}
