package rules

import (
	"context"
	"fmt"

	"github.com/flexprice/shipdiscount/internal/domain/rule"
	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const MatchLowestPackagePriceName = "MatchLowestPackagePrice"

// MatchLowestPackagePrice charges a matching shipment the lowest price any
// plan matching the same filter offers.
type MatchLowestPackagePrice struct {
	matcher rule.Matcher
	log     *logger.Logger
}

func NewMatchLowestPackagePrice(params rule.Params, log *logger.Logger) (*MatchLowestPackagePrice, error) {
	if err := params.Only(MatchLowestPackagePriceName, types.MatchFields...); err != nil {
		return nil, err
	}
	matcher, err := params.Matcher(MatchLowestPackagePriceName)
	if err != nil {
		return nil, err
	}

	r := &MatchLowestPackagePrice{matcher: matcher}
	r.log = ruleLogger(log, r.String())
	r.log.Infow("initiated rule")
	return r, nil
}

func (r *MatchLowestPackagePrice) Name() string {
	return MatchLowestPackagePriceName
}

func (r *MatchLowestPackagePrice) String() string {
	return fmt.Sprintf("%s(%s)", MatchLowestPackagePriceName, r.matcher)
}

func (r *MatchLowestPackagePrice) CalculateDiscount(
	_ context.Context,
	tx shipping.Transaction,
	plans []shipping.ShippingPlan,
	_ []*shipping.DiscountTransaction,
) decimal.Decimal {
	if !r.matcher.Matches(tx) {
		return decimal.Zero
	}

	matching := r.matcher.FilterPlans(plans)
	if len(matching) == 0 {
		r.log.Debugw(RuleNotApplied, "reason", "no shipping plan matches the filter")
		return decimal.Zero
	}

	lowest := lo.MinBy(matching, func(a, b shipping.ShippingPlan) bool {
		return a.Price.LessThan(b.Price)
	})
	return tx.Price.Sub(lowest.Price)
}
