package shipping

import (
	"time"

	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/shopspring/decimal"
)

// Matchable is implemented by every record a match filter can be evaluated against
type Matchable interface {
	// FieldValue returns the value of a match field, false if the record has no such field
	FieldValue(field types.FieldName) (string, bool)
}

// ShippingPlan is the reference price of a carrier and package size combination
type ShippingPlan struct {
	Carrier     string          `json:"carrier"`
	PackageSize string          `json:"package_size"`
	Price       decimal.Decimal `json:"price"`
}

func (p ShippingPlan) FieldValue(field types.FieldName) (string, bool) {
	return matchFieldValue(field, p.Carrier, p.PackageSize)
}

// Transaction is a validated shipment with its base price resolved from the plans
type Transaction struct {
	Date        time.Time       `json:"date"`
	Carrier     string          `json:"carrier"`
	PackageSize string          `json:"package_size"`
	Price       decimal.Decimal `json:"price"`
}

func (t Transaction) FieldValue(field types.FieldName) (string, bool) {
	return matchFieldValue(field, t.Carrier, t.PackageSize)
}

// DiscountTransaction is a history record: a processed transaction and the discount it got.
// Records are appended once and never mutated.
type DiscountTransaction struct {
	ID string `json:"id"`
	Transaction
	Discount decimal.Decimal `json:"discount"`
}

// NewDiscountTransaction builds the history record of a processed transaction
func NewDiscountTransaction(tx Transaction, discount decimal.Decimal) *DiscountTransaction {
	return &DiscountTransaction{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SHIPPING_TRANSACTION),
		Transaction: tx,
		Discount:    discount,
	}
}

// ShippingPrice is the outcome of processing one transaction.
// AppliedDiscount is nil when no discount was granted.
type ShippingPrice struct {
	ReducedPrice    decimal.Decimal  `json:"reduced_price"`
	AppliedDiscount *decimal.Decimal `json:"applied_discount"`
}

func matchFieldValue(field types.FieldName, carrier, packageSize string) (string, bool) {
	switch field {
	case types.FieldCarrier:
		return carrier, true
	case types.FieldPackageSize:
		return packageSize, true
	default:
		return "", false
	}
}
