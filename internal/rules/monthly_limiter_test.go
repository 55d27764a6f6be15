package rules

import (
	"testing"
	"time"

	"github.com/flexprice/shipdiscount/internal/domain/rule"
	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyAccumulatedDiscountLimiter_CorrectDiscount(t *testing.T) {
	feb := func(day int) time.Time { return date(2015, time.February, day) }

	tests := []struct {
		name     string
		limit    string
		history  []*shipping.DiscountTransaction
		discount string
		want     string
	}{
		{
			name:  "caps at the limit exactly",
			limit: "20",
			history: []*shipping.DiscountTransaction{
				record(feb(1), "LP", "L", "6.90", "6.90"),
				record(feb(2), "LP", "L", "6.90", "8.10"),
			},
			discount: "10",
			want:     "5",
		},
		{
			name:     "zero discount stays zero",
			limit:    "20",
			history:  []*shipping.DiscountTransaction{record(feb(1), "LP", "L", "6.90", "19")},
			discount: "0",
			want:     "0",
		},
		{
			name:     "below the limit is unchanged",
			limit:    "20",
			history:  []*shipping.DiscountTransaction{record(feb(1), "LP", "L", "6.90", "5")},
			discount: "10",
			want:     "10",
		},
		{
			name:     "reaching the limit exactly is unchanged",
			limit:    "20",
			history:  []*shipping.DiscountTransaction{record(feb(1), "LP", "L", "6.90", "10")},
			discount: "10",
			want:     "10",
		},
		{
			name:  "other months do not count",
			limit: "10",
			history: []*shipping.DiscountTransaction{
				record(date(2015, time.January, 31), "LP", "L", "6.90", "9"),
				record(date(2014, time.February, 3), "LP", "L", "6.90", "9"),
			},
			discount: "6.90",
			want:     "6.90",
		},
		{
			name:     "discount alone above the limit",
			limit:    "5",
			discount: "6.90",
			want:     "5",
		},
		{
			name:     "month already above the limit goes negative",
			limit:    "20",
			history:  []*shipping.DiscountTransaction{record(feb(1), "LP", "L", "6.90", "25")},
			discount: "3",
			want:     "-5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewMonthlyAccumulatedDiscountLimiter(rule.Params{types.FieldLimit: dec(tt.limit)}, nop())
			require.NoError(t, err)

			got := r.CorrectDiscount(testCtx, tx(feb(10), "LP", "L", "6.90"), dec(tt.discount), nil, tt.history)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestMonthlyAccumulatedDiscountLimiter_Construction(t *testing.T) {
	_, err := NewMonthlyAccumulatedDiscountLimiter(rule.Params{}, nop())
	assert.True(t, ierr.IsRuleConstruction(err))

	_, err = NewMonthlyAccumulatedDiscountLimiter(rule.Params{types.FieldLimit: dec("10"), types.FieldCarrier: "LP"}, nop())
	assert.True(t, ierr.IsRuleConstruction(err))

	_, err = NewMonthlyAccumulatedDiscountLimiter(rule.Params{types.FieldLimit: 10}, nop())
	assert.True(t, ierr.IsRuleConstruction(err), "limit must already be casted to decimal")

	r, err := NewMonthlyAccumulatedDiscountLimiter(rule.Params{types.FieldLimit: dec("10")}, nop())
	require.NoError(t, err)
	assert.Equal(t, "MonthlyAccumulatedDiscountLimiter(limit=10)", r.String())
}

func TestRegistries(t *testing.T) {
	discounts := NewDiscountRegistry()
	assert.Equal(t, []string{MatchLowestPackagePriceName, EveryNShipmentIsFreeXTimesInAMonthName}, discounts.Names())

	ctor, ok := discounts.Get(MatchLowestPackagePriceName)
	require.True(t, ok)
	inst, err := ctor(rule.Params{types.FieldPackageSize: "S"}, nop())
	require.NoError(t, err)
	assert.Equal(t, MatchLowestPackagePriceName, inst.Name())

	inst, err = ctor(rule.Params{}, nop())
	assert.Error(t, err)
	assert.Nil(t, inst, "failed construction must not leak a typed nil")

	corrections := NewCorrectionRegistry()
	assert.Equal(t, []string{MonthlyAccumulatedDiscountLimiterName}, corrections.Names())

	// each call builds an independent registry
	assert.NotSame(t, discounts, NewDiscountRegistry())
}
