package impl

import (
	"context"
	"fmt"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
)

// menuPage is the list a category menu renders and a later reply resolves against.
type menuPage struct {
	Category entity.Category
	Items    []entity.ItemSnapshot
	Fallback bool
}

// menuBuilder reads a category page from the catalog, substituting a fixed list
// for categories that must never show up empty.
type menuBuilder struct {
	productRepo repository.ProductRepository
}

func newMenuBuilder(productRepo repository.ProductRepository) *menuBuilder {
	return &menuBuilder{productRepo: productRepo}
}

func (b *menuBuilder) Build(ctx context.Context, category entity.Category) (*menuPage, error) {
	products, err := b.productRepo.FindForMenu(ctx, repository.CatalogQuery{
		Category:        category,
		AvailableOnly:   true,
		Limit:           category.MenuPageSize(),
		IncludeFeatured: category == entity.CategorySpecials,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s menu: %w", category, err)
	}

	page := &menuPage{Category: category, Items: make([]entity.ItemSnapshot, 0, len(products))}
	for _, product := range products {
		page.Items = append(page.Items, product.Snapshot())
	}

	if len(page.Items) == 0 {
		if fallback, ok := fallbackMenus[category]; ok {
			page.Items = fallbackItems(category, fallback)
			page.Fallback = true
		}
	}

	return page, nil
}

// menuLinks are the trailing cross-links numbered after the n listed items.
func menuLinks(category entity.Category, n int) []entity.MenuLink {
	switch category {
	case entity.CategoryPizzas:
		return []entity.MenuLink{
			{Choice: n + 1, Label: "Pasta Menu", Target: entity.CategoryPasta},
			{Choice: n + 2, Label: "Appetizers Menu", Target: entity.CategoryAppetizers},
		}
	case entity.CategoryPasta, entity.CategoryAppetizers:
		return []entity.MenuLink{
			{Choice: n + 1, Label: "Back to Pizza Menu", Target: entity.CategoryPizzas},
		}
	default:
		return nil
	}
}

type fallbackItem struct {
	name        string
	description string
	details     string
	price       float64
}

var fallbackMenus = map[entity.Category][]fallbackItem{
	entity.CategorySpecials: {
		{"Family Feast", "2 Large Pizzas + Garlic Bread + 2L Soda", "Perfect for family dinner! Save $12 vs individual items", 39.99},
		{"Lunch Express", "Personal Pizza + Side Salad + Drink", "Quick lunch ready in 15 minutes!", 12.99},
		{"Date Night Special", "Medium Pizza + Pasta + 2 Desserts", "Romantic dining made easy!", 24.99},
		{"Game Day Bundle", "2 Large Pizzas + 20 Wings + 2L Soda", "Perfect for watching the game!", 49.99},
	},
	entity.CategoryPasta: {
		{"Spaghetti Carbonara", "Creamy sauce with bacon & parmesan cheese", "", 14.99},
		{"Fettuccine Alfredo", "Rich garlic cream sauce with fresh herbs", "", 13.99},
		{"Penne Arrabbiata", "Spicy tomato sauce with Italian herbs", "", 12.99},
		{"Lasagna Classic", "Layered with meat sauce & three cheeses", "", 16.99},
	},
	entity.CategoryAppetizers: {
		{"Garlic Bread", "Warm bread with garlic butter and herbs", "", 5.99},
		{"Cheese Breadsticks", "Mozzarella-filled breadsticks with marinara", "", 7.99},
		{"Buffalo Wings", "Spicy wings with ranch dipping sauce", "", 9.99},
		{"Mozzarella Sticks", "Crispy fried cheese sticks with marinara", "", 6.99},
	},
}

func fallbackItems(category entity.Category, items []fallbackItem) []entity.ItemSnapshot {
	snapshots := make([]entity.ItemSnapshot, 0, len(items))
	for i, item := range items {
		snapshots = append(snapshots, entity.ItemSnapshot{
			ID:          fmt.Sprintf("fallback-%s-%d", category, i+1),
			Name:        item.name,
			Category:    category,
			Description: item.description,
			Details:     item.details,
			Price:       item.price,
		})
	}

	return snapshots
}
