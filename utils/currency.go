package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseCurrency normalizes a backend amount field into a float64.
//
// The chit and gold backends are inconsistent about numeric fields: the same
// field may arrive as a number, a plain numeric string, or a currency-formatted
// string such as "₹4,500.00". Everything except digits, '.' and '-' is
// stripped before parsing. ParseCurrency never fails; any value that still
// does not parse is 0.
func ParseCurrency(value interface{}) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		return parseCurrencyString(v)
	default:
		return 0
	}
}

func parseCurrencyString(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}
