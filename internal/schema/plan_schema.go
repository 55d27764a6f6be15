package schema

import (
	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/shopspring/decimal"
)

// InitShippingPlans casts and validates the raw plan entries. Every entry
// must carry carrier, package_size and price, and nothing else.
func InitShippingPlans(raw []map[string]any, fieldTypes ParamTypes) ([]shipping.ShippingPlan, error) {
	planTypes := fieldTypes.PlanFields()

	plans := make([]shipping.ShippingPlan, 0, len(raw))
	for i, entry := range raw {
		values, err := planTypes.CoerceAll(entry)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessagef("shipping plan %d", i).
				Mark(ierr.ErrInvalidSchema)
		}

		for _, field := range []types.FieldName{types.FieldCarrier, types.FieldPackageSize, types.FieldPrice} {
			if _, ok := values[field]; !ok {
				return nil, ierr.NewErrorf("shipping plan %d is missing %s", i, field).
					WithHintf("Shipping plan must define %s", field).
					Mark(ierr.ErrInvalidSchema)
			}
		}

		plans = append(plans, shipping.ShippingPlan{
			Carrier:     values[types.FieldCarrier].(string),
			PackageSize: values[types.FieldPackageSize].(string),
			Price:       values[types.FieldPrice].(decimal.Decimal),
		})
	}
	return plans, nil
}
