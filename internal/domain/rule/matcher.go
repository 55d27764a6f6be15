package rule

import (
	"fmt"
	"strings"

	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/samber/lo"
)

// Matcher is a match filter: every field must equal the expected value
type Matcher map[types.FieldName]string

// Matches reports whether the record carries every expected field value
func (m Matcher) Matches(record shipping.Matchable) bool {
	for field, want := range m {
		got, ok := record.FieldValue(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// FilterPlans returns the plans matching m, keeping their order
func (m Matcher) FilterPlans(plans []shipping.ShippingPlan) []shipping.ShippingPlan {
	return lo.Filter(plans, func(p shipping.ShippingPlan, _ int) bool {
		return m.Matches(p)
	})
}

// FilterHistory returns the history records matching m, keeping their order
func (m Matcher) FilterHistory(history []*shipping.DiscountTransaction) []*shipping.DiscountTransaction {
	return lo.Filter(history, func(r *shipping.DiscountTransaction, _ int) bool {
		return m.Matches(r)
	})
}

// String renders the filter in a stable field order, e.g. carrier="LP",package_size="L"
func (m Matcher) String() string {
	parts := make([]string, 0, len(m))
	for _, field := range types.MatchFields {
		if v, ok := m[field]; ok {
			parts = append(parts, fmt.Sprintf("%s=%q", field, v))
		}
	}
	return strings.Join(parts, ",")
}
