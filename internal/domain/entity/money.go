package entity

import (
	"encoding/json"
	"fmt"
	"math"
)

// Money is an amount in cents. Cart and order arithmetic never touches floats.
type Money int64

// MoneyFromFloat rounds a decimal amount to the nearest cent.
func MoneyFromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Float64 returns the amount in major units.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return m + other
}

// Times returns m multiplied by a quantity.
func (m Money) Times(quantity int) Money {
	return m * Money(quantity)
}

// String formats the amount as "12.99".
func (m Money) String() string {
	sign := ""
	cents := int64(m)
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON writes the amount as a JSON number in major units.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number in major units.
func (m *Money) UnmarshalJSON(data []byte) error {
	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return fmt.Errorf("money must be a number: %w", err)
	}
	*m = MoneyFromFloat(amount)

	return nil
}
