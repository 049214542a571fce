package entity

// Category classifies catalog items. The legacy retail values are still accepted
// by the admin API so older catalog rows stay valid.
type Category string

const (
	CategoryPizzas     Category = "pizzas"
	CategorySalads     Category = "salads"
	CategoryBeverages  Category = "beverages"
	CategorySpecials   Category = "specials"
	CategoryPasta      Category = "pasta"
	CategoryAppetizers Category = "appetizers"
	CategoryDesserts   Category = "desserts"
	CategorySandwiches Category = "sandwiches"
	CategorySides      Category = "sides"
	CategoryEntrees    Category = "entrees"
	CategorySoups      Category = "soups"

	CategoryFlowers Category = "flowers"
	CategoryCakes   Category = "cakes"
	CategoryGifts   Category = "gifts"
	CategoryCombos  Category = "combos"
	CategoryPlants  Category = "plants"
)

var validCategories = map[Category]struct{}{
	CategoryPizzas: {}, CategorySalads: {}, CategoryBeverages: {}, CategorySpecials: {},
	CategoryPasta: {}, CategoryAppetizers: {}, CategoryDesserts: {}, CategorySandwiches: {},
	CategorySides: {}, CategoryEntrees: {}, CategorySoups: {},
	CategoryFlowers: {}, CategoryCakes: {}, CategoryGifts: {}, CategoryCombos: {}, CategoryPlants: {},
}

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is one of the known values.
func (c Category) IsValid() bool {
	_, ok := validCategories[c]

	return ok
}

// MainMenuCategories are the browse targets of main menu options 1-4, in order.
// The empty-cart shortcut menu uses the same order.
var MainMenuCategories = []Category{
	CategoryPizzas,
	CategorySalads,
	CategoryBeverages,
	CategorySpecials,
}

// Category default prices in cents, used when a stored price cannot be trusted.
const (
	defaultPizzaPrice     Money = 999
	defaultSaladPrice     Money = 1299
	defaultBeveragePrice  Money = 299
	defaultSpecialPrice   Money = 1999
	defaultPastaPrice     Money = 1499
	defaultAppetizerPrice Money = 799
	defaultGenericPrice   Money = 999
)

// DefaultPrice is the fallback price for items of this category.
func (c Category) DefaultPrice() Money {
	switch c {
	case CategoryPizzas:
		return defaultPizzaPrice
	case CategorySalads:
		return defaultSaladPrice
	case CategoryBeverages:
		return defaultBeveragePrice
	case CategorySpecials:
		return defaultSpecialPrice
	case CategoryPasta:
		return defaultPastaPrice
	case CategoryAppetizers:
		return defaultAppetizerPrice
	default:
		return defaultGenericPrice
	}
}

// MenuPageSize is how many items a browse menu lists for the category.
func (c Category) MenuPageSize() int {
	switch c {
	case CategoryPizzas:
		return 20
	case CategorySalads, CategoryBeverages:
		return 15
	default:
		return 8
	}
}
