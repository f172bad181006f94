package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/piggybank/internal/domain"
)

// MaxAmount is the largest amount accepted in a single operation. It keeps
// balances well inside BIGINT.
const MaxAmount int64 = 1_000_000_000_000

// Exponent window for decimal input. Floor and comparisons rescale through a
// power of ten of the exponent's size, so it is bounded before either runs.
const (
	minExponent = -30
	maxExponent = 18
)

var maxAmount = decimal.NewFromInt(MaxAmount)

// ParseAmount coerces a loosely typed amount (JSON number or numeric string)
// into whole currency units. Fractions are floored; non-finite, non-numeric
// and non-positive results, and anything above MaxAmount, are rejected with
// domain.ErrInvalidAmount.
func ParseAmount(v any) (int64, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch val := v.(type) {
	case int:
		d = decimal.NewFromInt(int64(val))
	case int64:
		d = decimal.NewFromInt(val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, fmt.Errorf("%w: not finite", domain.ErrInvalidAmount)
		}
		d = decimal.NewFromFloat(val)
	case json.Number:
		d, err = decimal.NewFromString(val.String())
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(val))
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", domain.ErrInvalidAmount, v)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, err)
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return 0, fmt.Errorf("%w: exponent out of range", domain.ErrInvalidAmount)
	}

	d = d.Floor()
	if !d.IsPositive() || d.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, d.String())
	}
	return d.IntPart(), nil
}
