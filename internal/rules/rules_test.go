package rules

import (
	"context"
	"time"

	"github.com/flexprice/shipdiscount/internal/domain/rule"
	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/shopspring/decimal"
)

var testCtx = context.Background()

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(d time.Time, carrier, size, price string) shipping.Transaction {
	return shipping.Transaction{Date: d, Carrier: carrier, PackageSize: size, Price: dec(price)}
}

func record(d time.Time, carrier, size, price, discount string) *shipping.DiscountTransaction {
	return shipping.NewDiscountTransaction(tx(d, carrier, size, price), dec(discount))
}

// repeat returns one zero-discount history record per date
func repeat(carrier, size string, dates ...time.Time) []*shipping.DiscountTransaction {
	out := make([]*shipping.DiscountTransaction, 0, len(dates))
	for _, d := range dates {
		out = append(out, record(d, carrier, size, "6.90", "0"))
	}
	return out
}

func nop() *logger.Logger {
	return logger.NewNopLogger()
}

var _ rule.DiscountRule = (*MatchLowestPackagePrice)(nil)
var _ rule.DiscountRule = (*EveryNShipmentIsFreeXTimesInAMonth)(nil)
var _ rule.CorrectionRule = (*MonthlyAccumulatedDiscountLimiter)(nil)
