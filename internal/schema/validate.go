package schema

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateFunc checks an already casted value
type ValidateFunc func(value any) error

// Positive accepts integers and decimals strictly greater than zero
func Positive(value any) error {
	switch v := value.(type) {
	case int:
		if v <= 0 {
			return fmt.Errorf("expected positive number, got %d", v)
		}
	case decimal.Decimal:
		if !v.IsPositive() {
			return fmt.Errorf("expected positive number, got %s", v)
		}
	default:
		return fmt.Errorf("expected a number, not %T", value)
	}
	return nil
}

// InCategory accepts only the listed string values
func InCategory(name string, elements []string) ValidateFunc {
	allowed := make(map[string]struct{}, len(elements))
	for _, e := range elements {
		allowed[e] = struct{}{}
	}

	return func(value any) error {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected a string, not %T", value)
		}
		if _, ok := allowed[v]; !ok {
			return fmt.Errorf("element %q does not belong to category %s %v", v, name, elements)
		}
		return nil
	}
}
