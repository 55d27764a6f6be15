package schema

import (
	"sort"

	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/types"
)

// ParamType casts and validates one named field
type ParamType struct {
	Field      types.FieldName
	Cast       CastFunc
	Validators []ValidateFunc
}

// Coerce casts raw and runs every validator on the result
func (p ParamType) Coerce(raw any) (any, error) {
	value, err := p.Cast(raw)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Failed to cast %s", p.Field).
			WithReportableDetails(map[string]any{
				"field": p.Field.String(),
				"value": raw,
			}).
			Mark(ierr.ErrValidation)
	}

	for _, validate := range p.Validators {
		if err := validate(value); err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Invalid value for %s", p.Field).
				WithReportableDetails(map[string]any{
					"field": p.Field.String(),
					"value": raw,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return value, nil
}

// ParamTypes maps field aliases to their cast and validation
type ParamTypes map[types.FieldName]ParamType

// Categories are the allowed values of the categorical fields
type Categories struct {
	Carrier     []string
	PackageSize []string
}

// NewFieldTypes returns the cast and validation of every known field
func NewFieldTypes(categories Categories) (ParamTypes, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}

	all := []ParamType{
		{Field: types.FieldCarrier, Cast: CastString, Validators: []ValidateFunc{InCategory("carrier", categories.Carrier)}},
		{Field: types.FieldPackageSize, Cast: CastString, Validators: []ValidateFunc{InCategory("package_size", categories.PackageSize)}},
		{Field: types.FieldPrice, Cast: CastDecimal, Validators: []ValidateFunc{Positive}},
		{Field: types.FieldXTimes, Cast: CastInt, Validators: []ValidateFunc{Positive}},
		{Field: types.FieldN, Cast: CastInt, Validators: []ValidateFunc{Positive}},
		{Field: types.FieldLimit, Cast: CastDecimal, Validators: []ValidateFunc{Positive}},
		{Field: types.FieldDate, Cast: CastDate},
	}

	out := make(ParamTypes, len(all))
	for _, p := range all {
		out[p.Field] = p
	}
	return out, nil
}

// Subset keeps only the given fields
func (pt ParamTypes) Subset(fields ...types.FieldName) ParamTypes {
	out := make(ParamTypes, len(fields))
	for _, f := range fields {
		if p, ok := pt[f]; ok {
			out[f] = p
		}
	}
	return out
}

// RuleParams are the fields a rule schema may carry
func (pt ParamTypes) RuleParams() ParamTypes {
	return pt.Subset(types.FieldLimit, types.FieldXTimes, types.FieldN, types.FieldPackageSize, types.FieldCarrier)
}

// PlanFields are the fields of a shipping plan entry
func (pt ParamTypes) PlanFields() ParamTypes {
	return pt.Subset(types.FieldCarrier, types.FieldPackageSize, types.FieldPrice)
}

// TransactionFields are the fields of a transaction input
func (pt ParamTypes) TransactionFields() ParamTypes {
	return pt.Subset(types.FieldDate, types.FieldCarrier, types.FieldPackageSize)
}

// CoerceAll casts and validates every value. A key without a ParamType is an
// unknown parameter.
func (pt ParamTypes) CoerceAll(values map[string]any) (map[types.FieldName]any, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[types.FieldName]any, len(values))
	for _, key := range keys {
		field := types.FieldName(key)
		p, ok := pt[field]
		if !ok {
			return nil, ierr.NewErrorf("missing validator for parameter %q", key).
				WithHintf("Unknown parameter %s", key).
				WithReportableDetails(map[string]any{
					"parameter": key,
				}).
				Mark(ierr.ErrUnknownParameter)
		}

		value, err := p.Coerce(values[key])
		if err != nil {
			return nil, err
		}
		out[field] = value
	}
	return out, nil
}

func validateCategories(c Categories) error {
	for name, elements := range map[string][]string{"carrier": c.Carrier, "package_size": c.PackageSize} {
		if len(elements) == 0 {
			return ierr.NewErrorf("category %s has no elements", name).
				WithHintf("Category %s must list at least one value", name).
				Mark(ierr.ErrInvalidSchema)
		}
		for _, e := range elements {
			if e == "" {
				return ierr.NewErrorf("category %s has an empty element", name).
					WithHintf("Category %s must not contain empty values", name).
					Mark(ierr.ErrInvalidSchema)
			}
		}
	}
	return nil
}
