package entity

import "fmt"

// PizzaSize is a size tier with its surcharge over the base price.
type PizzaSize struct {
	Label string
	Delta Money
}

// PizzaSizes lists the tiers in menu order (choices 1-4).
var PizzaSizes = []PizzaSize{
	{Label: `Small (10")`, Delta: 0},
	{Label: `Medium (12")`, Delta: 400},
	{Label: `Large (14")`, Delta: 800},
	{Label: `Extra Large (16")`, Delta: 1200},
}

// PriceOption is one numbered purchase option on a product details screen.
type PriceOption struct {
	Choice int    `json:"choice"`
	Label  string `json:"label"`
	Price  Money  `json:"price"`
}

// PizzaSizeOptions prices every tier from a base price.
func PizzaSizeOptions(base Money) []PriceOption {
	options := make([]PriceOption, 0, len(PizzaSizes))
	for i, size := range PizzaSizes {
		options = append(options, PriceOption{
			Choice: i + 1,
			Label:  size.Label,
			Price:  base + size.Delta,
		})
	}

	return options
}

// SizedItemName is the cart line name for a pizza in a given size.
func SizedItemName(name, sizeLabel string) string {
	return fmt.Sprintf("%s - %s", name, sizeLabel)
}
