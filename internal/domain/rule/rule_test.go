package rule

import (
	"testing"

	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/logger"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher(t *testing.T) {
	plans := []shipping.ShippingPlan{
		{Carrier: "A", PackageSize: "small", Price: decimal.NewFromInt(10)},
		{Carrier: "A", PackageSize: "large", Price: decimal.NewFromInt(8)},
		{Carrier: "B", PackageSize: "small", Price: decimal.NewFromInt(5)},
	}

	m := Matcher{types.FieldCarrier: "A"}
	assert.True(t, m.Matches(plans[0]))
	assert.False(t, m.Matches(plans[2]))
	assert.Len(t, m.FilterPlans(plans), 2)

	both := Matcher{types.FieldCarrier: "A", types.FieldPackageSize: "small"}
	filtered := both.FilterPlans(plans)
	require.Len(t, filtered, 1)
	assert.Equal(t, plans[0], filtered[0])
	assert.Equal(t, `carrier="A",package_size="small"`, both.String())

	history := []*shipping.DiscountTransaction{
		shipping.NewDiscountTransaction(shipping.Transaction{Carrier: "B", PackageSize: "small"}, decimal.Zero),
		shipping.NewDiscountTransaction(shipping.Transaction{Carrier: "A", PackageSize: "small"}, decimal.Zero),
	}
	got := m.FilterHistory(history)
	require.Len(t, got, 1)
	assert.Equal(t, history[1].ID, got[0].ID)
}

func TestMatcher_UnknownField(t *testing.T) {
	m := Matcher{types.FieldDate: "2015-02-01"}
	assert.False(t, m.Matches(shipping.Transaction{Carrier: "A"}))
}

func TestParams(t *testing.T) {
	p := Params{
		types.FieldN:       3,
		types.FieldLimit:   decimal.NewFromInt(10),
		types.FieldCarrier: "LP",
	}

	n, err := p.Int("Rule", types.FieldN)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	limit, err := p.Decimal("Rule", types.FieldLimit)
	require.NoError(t, err)
	assert.Equal(t, "10", limit.String())

	_, err = p.Int("Rule", types.FieldXTimes)
	assert.True(t, ierr.IsRuleConstruction(err))

	_, err = p.Int("Rule", types.FieldLimit)
	assert.True(t, ierr.IsRuleConstruction(err), "decimal is not an integer")

	m, err := p.Matcher("Rule")
	require.NoError(t, err)
	assert.Equal(t, Matcher{types.FieldCarrier: "LP"}, m)

	assert.NoError(t, p.Only("Rule", types.FieldN, types.FieldLimit, types.FieldCarrier))
	err = p.Only("Rule", types.FieldCarrier)
	require.Error(t, err)
	assert.True(t, ierr.IsRuleConstruction(err))
	assert.Contains(t, err.Error(), "limit, n")

	_, err = Params{types.FieldN: 1}.Matcher("Rule")
	assert.True(t, ierr.IsRuleConstruction(err))

	assert.Equal(t, "carrier=LP,limit=10,n=3", p.String())
}

type namedRule string

func (n namedRule) Name() string { return string(n) }

func TestRegistry(t *testing.T) {
	r := NewRegistry[namedRule]()
	ctor := func(name string) Constructor[namedRule] {
		return func(Params, *logger.Logger) (namedRule, error) { return namedRule(name), nil }
	}

	r.Register("B", ctor("B")).Register("A", ctor("A"))

	assert.Equal(t, []string{"B", "A"}, r.Names())
	assert.Equal(t, 2, r.Len())

	got, ok := r.Get("A")
	require.True(t, ok)
	inst, err := got(nil, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "A", inst.Name())

	_, ok = r.Get("C")
	assert.False(t, ok)

	assert.Panics(t, func() { r.Register("A", ctor("A")) })

	names := r.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"B", "A"}, r.Names())
}
