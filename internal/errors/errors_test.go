package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorBuilder_Mark(t *testing.T) {
	err := NewError("rule not registered").
		WithHint("Rule FreeShipping is not registered").
		WithReportableDetails(map[string]any{"name": "FreeShipping"}).
		Mark(ErrUnknownRule)

	assert.True(t, IsUnknownRule(err))
	assert.True(t, IsConfiguration(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, ErrCodeUnknownRule, Code(err))
	assert.Contains(t, GetHints(err), "Rule FreeShipping is not registered")
}

func TestErrorBuilder_WrapsUnderlying(t *testing.T) {
	cause := fmt.Errorf("strconv: bad input")
	err := WithError(cause).
		WithHint("Parameter n must be an integer").
		Mark(ErrValidation)

	assert.True(t, IsValidation(err))
	assert.False(t, IsConfiguration(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "strconv: bad input")
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "unknown rule", err: NewError("x").Mark(ErrUnknownRule), want: true},
		{name: "unknown parameter", err: NewError("x").Mark(ErrUnknownParameter), want: true},
		{name: "rule construction", err: NewError("x").Mark(ErrRuleConstruction), want: true},
		{name: "invalid schema", err: NewError("x").Mark(ErrInvalidSchema), want: true},
		{name: "validation", err: NewError("x").Mark(ErrValidation), want: false},
		{name: "not found", err: NewError("x").Mark(ErrNotFound), want: false},
		{name: "plain", err: fmt.Errorf("x"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConfiguration(tt.err))
		})
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, Code(NewErrorf("no plan for %s", "LP/S").Mark(ErrNotFound)))
	assert.Equal(t, ErrCodeSystemError, Code(fmt.Errorf("unmarked")))
}
