package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/shopspring/decimal"
)

// CastFunc converts a raw configuration or input value to its typed form
type CastFunc func(raw any) (any, error)

// CastDecimal accepts decimal strings and integers. Floats are refused since
// they cannot represent most prices exactly; quote the value instead.
func CastDecimal(raw any) (any, error) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid decimal %q: %w", v, err)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return nil, fmt.Errorf("number must be a string or an integer to cast as decimal, not %T", raw)
	}
}

// CastInt accepts integers, integral floats (as produced by JSON decoding) and digit strings
func CastInt(raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("expected an integer, got %v", v)
		}
		return int(v), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", v, err)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("expected an integer, not %T", raw)
	}
}

// CastDate parses ISO 8601 dates
func CastDate(raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		return types.ParseDate(v)
	default:
		return nil, fmt.Errorf("date must be a string, not %T", raw)
	}
}

// CastString trims surrounding whitespace and refuses empty values
func CastString(raw any) (any, error) {
	v, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("expected a string, not %T", raw)
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, fmt.Errorf("expected a non-empty string")
	}
	return v, nil
}
