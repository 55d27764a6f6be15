package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrUnknownRule      = new(ErrCodeUnknownRule, "unknown rule")
	ErrUnknownParameter = new(ErrCodeUnknownParameter, "unknown parameter")
	ErrRuleConstruction = new(ErrCodeRuleConstruction, "rule construction failed")
	ErrInvalidSchema    = new(ErrCodeInvalidSchema, "invalid schema")
	ErrSystem           = new(ErrCodeSystemError, "system error")

	// configurationErrors are fatal at startup: the processor cannot be built
	configurationErrors = []error{
		ErrUnknownRule,
		ErrUnknownParameter,
		ErrRuleConstruction,
		ErrInvalidSchema,
	}
)

const (
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeValidation       = "validation_error"
	ErrCodeUnknownRule      = "unknown_rule"
	ErrCodeUnknownParameter = "unknown_parameter"
	ErrCodeRuleConstruction = "rule_construction"
	ErrCodeInvalidSchema    = "invalid_schema"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// New creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnknownRule checks if an error is an unknown rule error
func IsUnknownRule(err error) bool {
	return errors.Is(err, ErrUnknownRule)
}

// IsUnknownParameter checks if an error is an unknown parameter error
func IsUnknownParameter(err error) bool {
	return errors.Is(err, ErrUnknownParameter)
}

// IsRuleConstruction checks if an error is a rule construction error
func IsRuleConstruction(err error) bool {
	return errors.Is(err, ErrRuleConstruction)
}

// IsInvalidSchema checks if an error is a malformed schema error
func IsInvalidSchema(err error) bool {
	return errors.Is(err, ErrInvalidSchema)
}

// IsConfiguration reports whether err is any of the startup configuration errors
func IsConfiguration(err error) bool {
	for _, ref := range configurationErrors {
		if errors.Is(err, ref) {
			return true
		}
	}
	return false
}

// Code returns the machine-readable code of the first sentinel err is marked with
func Code(err error) string {
	for _, ref := range append([]error{ErrNotFound, ErrValidation, ErrSystem}, configurationErrors...) {
		if errors.Is(err, ref) {
			return ref.(*InternalError).Code
		}
	}
	return ErrCodeSystemError
}
