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

const EveryNShipmentIsFreeXTimesInAMonthName = "EveryNShipmentIsFreeXTimesInAMonth"

// EveryNShipmentIsFreeXTimesInAMonth makes every n-th matching shipment free,
// at most xTimes a calendar month.
type EveryNShipmentIsFreeXTimesInAMonth struct {
	n       int
	xTimes  int
	matcher rule.Matcher
	log     *logger.Logger
}

func NewEveryNShipmentIsFreeXTimesInAMonth(params rule.Params, log *logger.Logger) (*EveryNShipmentIsFreeXTimesInAMonth, error) {
	allowed := append([]types.FieldName{types.FieldN, types.FieldXTimes}, types.MatchFields...)
	if err := params.Only(EveryNShipmentIsFreeXTimesInAMonthName, allowed...); err != nil {
		return nil, err
	}

	n, err := params.Int(EveryNShipmentIsFreeXTimesInAMonthName, types.FieldN)
	if err != nil {
		return nil, err
	}
	xTimes, err := params.Int(EveryNShipmentIsFreeXTimesInAMonthName, types.FieldXTimes)
	if err != nil {
		return nil, err
	}
	matcher, err := params.Matcher(EveryNShipmentIsFreeXTimesInAMonthName)
	if err != nil {
		return nil, err
	}

	r := &EveryNShipmentIsFreeXTimesInAMonth{n: n, xTimes: xTimes, matcher: matcher}
	r.log = ruleLogger(log, r.String())
	r.log.Infow("initiated rule")
	return r, nil
}

func (r *EveryNShipmentIsFreeXTimesInAMonth) Name() string {
	return EveryNShipmentIsFreeXTimesInAMonthName
}

func (r *EveryNShipmentIsFreeXTimesInAMonth) String() string {
	return fmt.Sprintf("%s(n=%d,x_times=%d,%s)", EveryNShipmentIsFreeXTimesInAMonthName, r.n, r.xTimes, r.matcher)
}

func (r *EveryNShipmentIsFreeXTimesInAMonth) CalculateDiscount(
	_ context.Context,
	tx shipping.Transaction,
	_ []shipping.ShippingPlan,
	history []*shipping.DiscountTransaction,
) decimal.Decimal {
	if !r.matcher.Matches(tx) {
		return decimal.Zero
	}

	similar := r.matcher.FilterHistory(history)
	ordinal := len(similar) + 1
	if ordinal%r.n != 0 {
		r.log.Tracew(RuleNotApplied,
			"reason", fmt.Sprintf("discount applies to every %d transaction, this is transaction %d", r.n, ordinal))
		return decimal.Zero
	}

	// Every n-th matching record counting from the first one, minus the first
	// element of that sequence. These count as free shipments already granted.
	granted := lo.Filter(similar, func(_ *shipping.DiscountTransaction, i int) bool {
		return i%r.n == 0
	})
	if len(granted) > 0 {
		granted = granted[1:]
	}

	grantedThisMonth := lo.CountBy(granted, func(record *shipping.DiscountTransaction) bool {
		return types.SameMonth(record.Date, tx.Date)
	})
	if grantedThisMonth >= r.xTimes {
		r.log.Tracew(RuleNotApplied,
			"reason", "monthly allowance used up",
			"granted_this_month", grantedThisMonth,
			"x_times", r.xTimes)
		return decimal.Zero
	}

	r.log.Tracew("rule met all requirements for a free shipping", "ordinal", ordinal)
	return tx.Price
}
