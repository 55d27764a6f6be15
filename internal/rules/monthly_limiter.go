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

const MonthlyAccumulatedDiscountLimiterName = "MonthlyAccumulatedDiscountLimiter"

// MonthlyAccumulatedDiscountLimiter caps the total discount granted within a
// calendar month. A discount that would cross the cap is reduced so the month
// total lands exactly on it.
//
// The result is not clamped: when the month is already above the cap the
// returned value is negative and callers must treat it as no discount.
type MonthlyAccumulatedDiscountLimiter struct {
	limit decimal.Decimal
	log   *logger.Logger
}

func NewMonthlyAccumulatedDiscountLimiter(params rule.Params, log *logger.Logger) (*MonthlyAccumulatedDiscountLimiter, error) {
	if err := params.Only(MonthlyAccumulatedDiscountLimiterName, types.FieldLimit); err != nil {
		return nil, err
	}
	limit, err := params.Decimal(MonthlyAccumulatedDiscountLimiterName, types.FieldLimit)
	if err != nil {
		return nil, err
	}

	r := &MonthlyAccumulatedDiscountLimiter{limit: limit}
	r.log = ruleLogger(log, r.String())
	r.log.Infow("initiated rule")
	return r, nil
}

func (r *MonthlyAccumulatedDiscountLimiter) Name() string {
	return MonthlyAccumulatedDiscountLimiterName
}

func (r *MonthlyAccumulatedDiscountLimiter) String() string {
	return fmt.Sprintf("%s(limit=%s)", MonthlyAccumulatedDiscountLimiterName, r.limit)
}

func (r *MonthlyAccumulatedDiscountLimiter) CorrectDiscount(
	_ context.Context,
	tx shipping.Transaction,
	discount decimal.Decimal,
	_ []shipping.ShippingPlan,
	history []*shipping.DiscountTransaction,
) decimal.Decimal {
	if discount.IsZero() {
		return decimal.Zero
	}

	monthTotal := lo.Reduce(history, func(acc decimal.Decimal, record *shipping.DiscountTransaction, _ int) decimal.Decimal {
		if !types.SameMonth(record.Date, tx.Date) {
			return acc
		}
		return acc.Add(record.Discount)
	}, decimal.Zero)

	exceeds := monthTotal.Add(discount).Sub(r.limit)
	if exceeds.IsPositive() {
		discount = discount.Sub(exceeds)
		r.log.Debugw("discount reduced", "by", exceeds.String(), "month_total", monthTotal.String())
	}
	return discount
}
