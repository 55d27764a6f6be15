package dto

import (
	"fmt"
	"strings"

	"github.com/flexprice/shipdiscount/internal/domain/shipping"
	ierr "github.com/flexprice/shipdiscount/internal/errors"
	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/flexprice/shipdiscount/internal/validator"
	"github.com/shopspring/decimal"
)

// TransactionInput is a raw, not yet casted, shipment
type TransactionInput struct {
	Date        string `json:"date" validate:"required"`
	Carrier     string `json:"carrier" validate:"required"`
	PackageSize string `json:"package_size" validate:"required"`
}

func (r *TransactionInput) Validate() error {
	return validator.ValidateRequest(r)
}

// Values returns the input keyed by field alias
func (r *TransactionInput) Values() map[string]any {
	return map[string]any{
		types.FieldDate.String():        r.Date,
		types.FieldCarrier.String():     r.Carrier,
		types.FieldPackageSize.String(): r.PackageSize,
	}
}

// ParseTransactionLine reads a whitespace separated `<date> <package_size> <carrier>` line
func ParseTransactionLine(line string) (*TransactionInput, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, ierr.NewErrorf("expected 3 fields, got %d", len(fields)).
			WithHint("Transaction line must be formatted as <date> <package_size> <carrier>").
			WithReportableDetails(map[string]any{
				"line": line,
			}).
			Mark(ierr.ErrValidation)
	}

	return &TransactionInput{
		Date:        fields[0],
		PackageSize: fields[1],
		Carrier:     fields[2],
	}, nil
}

// FormatShippingPrice renders `<reduced_price> <discount>`, with `-` when no discount applied
func FormatShippingPrice(p *shipping.ShippingPrice) string {
	discount := "-"
	if p.AppliedDiscount != nil {
		discount = formatMoney(*p.AppliedDiscount)
	}
	return fmt.Sprintf("%s %s", formatMoney(p.ReducedPrice), discount)
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
