package rule

import (
	"context"

	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	"github.com/shopspring/decimal"
)

// DiscountRule decides whether a transaction qualifies for a discount and how much.
// A rule that does not apply returns zero.
type DiscountRule interface {
	Name() string
	CalculateDiscount(
		ctx context.Context,
		tx shipping.Transaction,
		plans []shipping.ShippingPlan,
		history []*shipping.DiscountTransaction,
	) decimal.Decimal
}

// CorrectionRule adjusts an already computed, non-zero discount using the history.
// Correction rules are chained: the output of one is the input of the next.
type CorrectionRule interface {
	Name() string
	CorrectDiscount(
		ctx context.Context,
		tx shipping.Transaction,
		discount decimal.Decimal,
		plans []shipping.ShippingPlan,
		history []*shipping.DiscountTransaction,
	) decimal.Decimal
}
