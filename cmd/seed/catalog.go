package main

import (
	"orderbot/internal/domain/entity"
	"orderbot/internal/usecase"
)

func stock(n int) *int {
	return &n
}

// starterCatalog is a small restaurant menu covering every chat category.
func starterCatalog() []*usecase.ProductInput {
	return []*usecase.ProductInput{
		{
			Name:        "Margherita",
			Category:    entity.CategoryPizzas,
			Description: "Tomato sauce, fresh mozzarella and basil",
			Price:       12.99,
			Stock:       stock(50),
			Featured:    true,
			MenuSection: entity.MenuSectionMains,
			Specifications: entity.Specifications{
				Ingredients:     []string{"Tomato", "Mozzarella", "Basil"},
				PreparationTime: "15 min",
				DietaryInfo:     []string{"Vegetarian"},
			},
			Tags: []string{"classic", "vegetarian"},
		},
		{
			Name:        "Pepperoni",
			Category:    entity.CategoryPizzas,
			Description: "Loaded with pepperoni and mozzarella",
			Price:       14.99,
			Stock:       stock(50),
			MenuSection: entity.MenuSectionMains,
			Specifications: entity.Specifications{
				Ingredients:     []string{"Tomato", "Mozzarella", "Pepperoni"},
				PreparationTime: "15 min",
				SpiceLevel:      "mild",
			},
			Tags: []string{"classic"},
		},
		{
			Name:        "BBQ Chicken",
			Category:    entity.CategoryPizzas,
			Description: "Grilled chicken, red onion and smoky BBQ sauce",
			Price:       16.99,
			Stock:       stock(40),
			MenuSection: entity.MenuSectionMains,
			Specifications: entity.Specifications{
				Ingredients:     []string{"BBQ sauce", "Chicken", "Red onion", "Mozzarella"},
				PreparationTime: "18 min",
			},
		},
		{
			Name:        "Caesar Salad",
			Category:    entity.CategorySalads,
			Description: "Romaine, parmesan, croutons and Caesar dressing",
			Price:       9.99,
			Stock:       stock(30),
			MenuSection: entity.MenuSectionStarters,
			Specifications: entity.Specifications{
				Servings:  "1",
				Allergens: []string{"Dairy", "Gluten", "Egg"},
			},
		},
		{
			Name:        "Greek Salad",
			Category:    entity.CategorySalads,
			Description: "Tomato, cucumber, olives and feta",
			Price:       10.49,
			Stock:       stock(30),
			MenuSection: entity.MenuSectionStarters,
			Specifications: entity.Specifications{
				DietaryInfo: []string{"Vegetarian", "Gluten free"},
			},
		},
		{
			Name:        "Coca-Cola 500ml",
			Category:    entity.CategoryBeverages,
			Description: "Chilled bottle",
			Price:       2.99,
			Stock:       stock(120),
			MenuSection: entity.MenuSectionDrinks,
		},
		{
			Name:        "Fresh Lemonade",
			Category:    entity.CategoryBeverages,
			Description: "Squeezed in house every morning",
			Price:       3.49,
			Stock:       stock(60),
			MenuSection: entity.MenuSectionDrinks,
		},
		{
			Name:          "Family Feast",
			Category:      entity.CategorySpecials,
			Description:   "2 Large Pizzas + Garlic Bread + 2L Soda",
			Price:         39.99,
			OriginalPrice: 51.99,
			Stock:         stock(20),
			Featured:      true,
			MenuSection:   entity.MenuSectionSpecials,
			Specifications: entity.Specifications{
				Servings: "4",
			},
		},
		{
			Name:        "Spaghetti Carbonara",
			Category:    entity.CategoryPasta,
			Description: "Creamy sauce with bacon and parmesan",
			Price:       14.99,
			Stock:       stock(35),
			MenuSection: entity.MenuSectionMains,
		},
		{
			Name:        "Penne Arrabbiata",
			Category:    entity.CategoryPasta,
			Description: "Spicy tomato sauce with Italian herbs",
			Price:       12.99,
			Stock:       stock(35),
			MenuSection: entity.MenuSectionMains,
			Specifications: entity.Specifications{
				SpiceLevel:  "hot",
				DietaryInfo: []string{"Vegan"},
			},
		},
		{
			Name:        "Garlic Bread",
			Category:    entity.CategoryAppetizers,
			Description: "Warm bread with garlic butter and herbs",
			Price:       5.99,
			Stock:       stock(45),
			MenuSection: entity.MenuSectionStarters,
		},
		{
			Name:        "Buffalo Wings",
			Category:    entity.CategoryAppetizers,
			Description: "Spicy wings with ranch dipping sauce",
			Price:       9.99,
			Stock:       stock(45),
			MenuSection: entity.MenuSectionStarters,
			Specifications: entity.Specifications{
				SpiceLevel: "hot",
			},
		},
	}
}
