package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ResolvePrice turns a loosely typed stored price into a positive amount.
// Numbers are used as-is; strings lose "$", "," and whitespace before parsing.
// Anything else, or a result that is not a positive finite number, falls back
// to the category default. The second return value reports whether the
// fallback was used.
func ResolvePrice(raw any, category Category) (Money, bool) {
	amount, ok := priceAmount(raw)
	if !ok || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return category.DefaultPrice(), true
	}

	price := MoneyFromFloat(amount)
	if price <= 0 {
		return category.DefaultPrice(), true
	}

	return price, false
}

func priceAmount(raw any) (float64, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case Money:
		return v.Float64(), true
	case json.Number:
		f, err := v.Float64()

		return f, err == nil
	case *float64:
		if v == nil {
			return 0, false
		}

		return *v, true
	case string:
		return parsePriceString(v)
	default:
		return 0, false
	}
}

func parsePriceString(s string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '$' || r == ',' || unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
	if cleaned == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// ParsePrice parses an admin-entered price. Unlike ResolvePrice it rejects
// bad input instead of falling back.
func ParsePrice(s string) (Money, error) {
	amount, ok := parsePriceString(s)
	if !ok || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	price := MoneyFromFloat(amount)
	if price <= 0 {
		return 0, fmt.Errorf("price must be positive, got %q", s)
	}

	return price, nil
}
