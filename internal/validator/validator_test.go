package validator

import (
	"testing"

	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Carrier string `validate:"required"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sample{Carrier: "LP"}))

	err := ValidateRequest(sample{})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
	assert.False(t, ierr.Is(err, ierr.ErrSystem))
	assert.Contains(t, ierr.GetHints(err), "Request validation failed")
}

func TestGetValidator_IsShared(t *testing.T) {
	v := GetValidator()
	require.NotNil(t, v)
	assert.Same(t, v, GetValidator())
}
