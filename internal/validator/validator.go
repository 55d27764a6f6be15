package validator

import (
	"sync"

	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// GetValidator returns the shared validator, built on first use
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest checks the validate tags of req. Failures are marked
// ErrValidation with one reportable detail per offending field.
func ValidateRequest(req interface{}) error {
	err := GetValidator().Struct(req)
	if err == nil {
		return nil
	}

	details := make(map[string]any)
	var fieldErrs validator.ValidationErrors
	if ierr.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Error()
		}
	}
	return ierr.WithError(err).
		WithHint("Request validation failed").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
