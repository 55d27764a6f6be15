package rule

import (
	"fmt"
	"sort"
	"strings"

	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Params are casted and validated rule construction parameters
type Params map[types.FieldName]any

// Only fails when params carry a field outside of allowed
func (p Params) Only(ruleName string, allowed ...types.FieldName) error {
	var unexpected []string
	for field := range p {
		if !lo.Contains(allowed, field) {
			unexpected = append(unexpected, field.String())
		}
	}
	if len(unexpected) == 0 {
		return nil
	}

	sort.Strings(unexpected)
	return ierr.NewErrorf("%s got unexpected parameters: %s", ruleName, strings.Join(unexpected, ", ")).
		WithHintf("Rule %s does not accept parameters %s", ruleName, strings.Join(unexpected, ", ")).
		WithReportableDetails(map[string]any{
			"rule":       ruleName,
			"unexpected": unexpected,
		}).
		Mark(ierr.ErrRuleConstruction)
}

// Int returns a required integer parameter
func (p Params) Int(ruleName string, field types.FieldName) (int, error) {
	raw, err := p.required(ruleName, field)
	if err != nil {
		return 0, err
	}
	v, ok := raw.(int)
	if !ok {
		return 0, wrongType(ruleName, field, "integer", raw)
	}
	return v, nil
}

// Decimal returns a required decimal parameter
func (p Params) Decimal(ruleName string, field types.FieldName) (decimal.Decimal, error) {
	raw, err := p.required(ruleName, field)
	if err != nil {
		return decimal.Zero, err
	}
	v, ok := raw.(decimal.Decimal)
	if !ok {
		return decimal.Zero, wrongType(ruleName, field, "decimal", raw)
	}
	return v, nil
}

// Matcher builds the match filter from the match fields present in params.
// At least one match field is required.
func (p Params) Matcher(ruleName string) (Matcher, error) {
	m := Matcher{}
	for field, raw := range p {
		if !field.IsMatchField() {
			continue
		}
		v, ok := raw.(string)
		if !ok {
			return nil, wrongType(ruleName, field, "string", raw)
		}
		m[field] = v
	}

	if len(m) == 0 {
		return nil, ierr.NewErrorf("%s requires a match filter", ruleName).
			WithHintf("Rule %s needs at least one of: carrier, package_size", ruleName).
			Mark(ierr.ErrRuleConstruction)
	}
	return m, nil
}

func (p Params) required(ruleName string, field types.FieldName) (any, error) {
	raw, ok := p[field]
	if !ok {
		return nil, ierr.NewErrorf("%s missing required parameter %s", ruleName, field).
			WithHintf("Rule %s requires parameter %s", ruleName, field).
			WithReportableDetails(map[string]any{
				"rule":      ruleName,
				"parameter": field.String(),
			}).
			Mark(ierr.ErrRuleConstruction)
	}
	return raw, nil
}

func wrongType(ruleName string, field types.FieldName, want string, got any) error {
	return ierr.NewErrorf("%s parameter %s must be %s, got %T", ruleName, field, want, got).
		WithHintf("Parameter %s of rule %s must be %s", field, ruleName, want).
		Mark(ierr.ErrRuleConstruction)
}

func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, p[types.FieldName(k)]))
	}
	return strings.Join(parts, ",")
}
