package whatsapp

import (
	"fmt"
	"strings"

	"orderbot/config"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/service"
)

var categoryTitles = map[entity.Category]string{
	entity.CategoryPizzas:     "Signature Pizzas",
	entity.CategorySalads:     "Fresh Salads & Starters",
	entity.CategoryBeverages:  "Beverages & Desserts",
	entity.CategorySpecials:   "Today's Hot Deals",
	entity.CategoryPasta:      "Pasta",
	entity.CategoryAppetizers: "Appetizers",
}

func categoryTitle(category entity.Category) string {
	if title, ok := categoryTitles[category]; ok {
		return title
	}
	if category == "" {
		return "Menu"
	}

	return strings.ToUpper(category.String()[:1]) + category.String()[1:]
}

type textRenderer struct {
	shop *config.ShopConfig
}

// NewTextRenderer renders replies as WhatsApp-flavoured plain text.
func NewTextRenderer(cfg *config.Config) service.ReplyRenderer {
	shop := &config.ShopConfig{}
	if cfg != nil && cfg.Shop != nil {
		shop = cfg.Shop
	}

	return &textRenderer{shop: shop}
}

func (r *textRenderer) Render(reply *entity.Reply) string {
	if reply == nil {
		return ""
	}

	var b strings.Builder
	switch reply.Kind {
	case entity.ReplyWelcome:
		fmt.Fprintf(&b, "*Welcome to %s!*\n\n", r.shop.Name)
		r.writeMainMenu(&b)
	case entity.ReplyMainMenu:
		r.writeMainMenu(&b)
	case entity.ReplyCategoryMenu:
		writeCategoryMenu(&b, reply)
	case entity.ReplyProductDetails:
		writeProductDetails(&b, reply)
	case entity.ReplyItemAdded:
		writeItemAdded(&b, reply)
	case entity.ReplyCart:
		writeCart(&b, reply)
	case entity.ReplyCartCleared:
		b.WriteString("Your cart is now empty.\n\n")
		r.writeMainMenu(&b)
	case entity.ReplyContactInfo:
		r.writeContactInfo(&b)
	case entity.ReplyDeliveryRequest:
		writeDeliveryRequest(&b, reply)
	case entity.ReplyOrderConfirmed:
		r.writeOrderConfirmed(&b, reply)
	case entity.ReplyOrderFailed, entity.ReplyError:
		b.WriteString("Sorry, there was an error processing your order. Please try again!\n\n")
		b.WriteString(`Type "0" to return to the main menu.`)
	case entity.ReplyInvalidChoice:
		writeInvalidChoice(&b, reply)
	case entity.ReplyUnavailable:
		b.WriteString("This menu is unavailable right now. Please try again in a moment.\n\n")
		b.WriteString(`Type "0" to return to the main menu.`)
	default:
		r.writeMainMenu(&b)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *textRenderer) writeMainMenu(b *strings.Builder) {
	fmt.Fprintf(b, "*%s*\nWhat would you like today?\n\n", r.shop.Name)
	for i, category := range entity.MainMenuCategories {
		fmt.Fprintf(b, "%d. %s\n", i+1, categoryTitle(category))
	}
	choice := len(entity.MainMenuCategories) + 1
	fmt.Fprintf(b, "%d. My Cart & Checkout\n", choice)
	fmt.Fprintf(b, "%d. Contact & Hours\n\n", choice+1)
	fmt.Fprintf(b, "Reply with a number. Free delivery on orders over $%s.\n", entity.FreeDeliveryThreshold)
	b.WriteString(`Type "0" anytime to return to this menu.`)
}

func writeCategoryMenu(b *strings.Builder, reply *entity.Reply) {
	fmt.Fprintf(b, "*%s*\n\n", categoryTitle(reply.Category))
	if len(reply.Items) == 0 && len(reply.Links) == 0 {
		b.WriteString("Nothing is available here right now.\n\n")
		b.WriteString(`Type "0" to return to the main menu.`)

		return
	}

	for i, item := range reply.Items {
		price, _ := item.ResolvedPriceIn(reply.Category)
		fmt.Fprintf(b, "%d. *%s* - $%s\n", i+1, item.Name, price)
		if item.Description != "" {
			fmt.Fprintf(b, "   %s\n", item.Description)
		}
		if item.Details != "" {
			fmt.Fprintf(b, "   %s\n", item.Details)
		}
	}
	if len(reply.Links) > 0 {
		b.WriteString("\n")
		for _, link := range reply.Links {
			fmt.Fprintf(b, "%d. %s\n", link.Choice, link.Label)
		}
	}
	b.WriteString("\nReply with a number to choose.\n")
	b.WriteString(`Type "0" for the main menu.`)
}

func writeProductDetails(b *strings.Builder, reply *entity.Reply) {
	item := reply.Item
	if item == nil {
		b.WriteString(`Type "0" to return to the main menu.`)

		return
	}

	fmt.Fprintf(b, "*%s*\n", item.Name)
	if item.Description != "" {
		fmt.Fprintf(b, "%s\n", item.Description)
	}
	if len(item.Ingredients) > 0 {
		fmt.Fprintf(b, "Ingredients: %s\n", strings.Join(item.Ingredients, ", "))
	}
	if item.Servings != "" {
		fmt.Fprintf(b, "Serves: %s\n", item.Servings)
	}
	if item.PrepTime != "" {
		fmt.Fprintf(b, "Ready in: %s\n", item.PrepTime)
	}
	if item.SpiceLevel != "" {
		fmt.Fprintf(b, "Spice: %s\n", item.SpiceLevel)
	}

	menu := reply.Category
	if menu == "" {
		menu = item.Category
	}

	b.WriteString("\n")
	if menu == entity.CategoryPizzas {
		b.WriteString("Choose your size:\n")
	}
	for _, option := range reply.Options {
		fmt.Fprintf(b, "%d. %s - $%s\n", option.Choice, option.Label, option.Price)
	}
	if menu == entity.CategoryPizzas {
		fmt.Fprintf(b, "%d. Back to Pizza Menu\n", len(reply.Options)+1)
	} else if menu.IsBrowsable() {
		fmt.Fprintf(b, "%d. Back to %s\n", len(reply.Options)+1, categoryTitle(menu))
	} else {
		fmt.Fprintf(b, "%d. Back to Main Menu\n", len(reply.Options)+1)
	}
}

func writeItemAdded(b *strings.Builder, reply *entity.Reply) {
	fmt.Fprintf(b, "Added to your cart: *%s*\n", reply.LastAddedItem)
	fmt.Fprintf(b, "Cart total: $%s\n\n", reply.Totals.Subtotal)
	b.WriteString("1. Continue Shopping\n")
	b.WriteString("2. Proceed to Checkout\n")
	b.WriteString("3. View Full Cart")
}

func writeCart(b *strings.Builder, reply *entity.Reply) {
	if len(reply.CartItems) == 0 {
		b.WriteString("*Your cart is empty.*\n\nStart with one of these:\n")
		for i, category := range entity.MainMenuCategories {
			fmt.Fprintf(b, "%d. %s\n", i+1, categoryTitle(category))
		}
		b.WriteString("\n")
		b.WriteString(`Type "0" for the main menu.`)

		return
	}

	b.WriteString("*Your cart*\n\n")
	for i, item := range reply.CartItems {
		fmt.Fprintf(b, "%d. %s x%d - $%s\n", i+1, item.ProductName, item.Quantity, item.Subtotal())
	}
	writeTotals(b, reply.Totals)
	b.WriteString("\n1. Checkout\n")
	b.WriteString("2. Clear Cart\n")
	b.WriteString("3. Add More Items")
}

func writeTotals(b *strings.Builder, totals entity.CartTotals) {
	fmt.Fprintf(b, "\nSubtotal: $%s\n", totals.Subtotal)
	if totals.DeliveryFee == 0 {
		b.WriteString("Delivery: FREE\n")
	} else {
		fmt.Fprintf(b, "Delivery: $%s\n", totals.DeliveryFee)
	}
	fmt.Fprintf(b, "*Total: $%s*\n", totals.Total)
}

func writeDeliveryRequest(b *strings.Builder, reply *entity.Reply) {
	b.WriteString("*Checkout*\n")
	writeTotals(b, reply.Totals)
	b.WriteString("\nPlease reply with your full delivery address.\n")
	b.WriteString(`Type "0" to cancel and return to the main menu.`)
}

func (r *textRenderer) writeOrderConfirmed(b *strings.Builder, reply *entity.Reply) {
	order := reply.Order
	if order == nil {
		b.WriteString("*Order confirmed!*")

		return
	}

	b.WriteString("*Order confirmed!*\n\n")
	fmt.Fprintf(b, "Order ID: %s\n", order.OrderID)
	fmt.Fprintf(b, "Total: $%s\n", order.TotalAmount)
	fmt.Fprintf(b, "Phone: %s\n", order.CustomerPhone)
	fmt.Fprintf(b, "Address: %s\n", order.DeliveryInfo.Address)
	if order.DeliveryInfo.DeliveryTime != "" {
		fmt.Fprintf(b, "Estimated delivery: %s\n", order.DeliveryInfo.DeliveryTime)
	}
	b.WriteString("Payment: Cash on Delivery\n\n")
	fmt.Fprintf(b, "Thank you for ordering from %s! ", r.shop.Name)
	b.WriteString(`Type "0" to order again.`)
}

func (r *textRenderer) writeContactInfo(b *strings.Builder) {
	fmt.Fprintf(b, "*%s*\n\n", r.shop.Name)
	if r.shop.Address != "" {
		fmt.Fprintf(b, "Address: %s\n", r.shop.Address)
	}
	if r.shop.Phone != "" {
		fmt.Fprintf(b, "Phone: %s\n", r.shop.Phone)
	}
	if r.shop.Hours != "" {
		fmt.Fprintf(b, "Hours: %s\n", r.shop.Hours)
	}
	if r.shop.Website != "" {
		fmt.Fprintf(b, "Web: %s\n", r.shop.Website)
	}
	b.WriteString("\n")
	b.WriteString(`Type "0" to return to the main menu.`)
}

func writeInvalidChoice(b *strings.Builder, reply *entity.Reply) {
	if reply.MaxChoice == 0 {
		b.WriteString("Please send your delivery address as a text message.")

		return
	}

	fmt.Fprintf(b, "Please select a valid option (%d-%d)\n", reply.MinChoice, reply.MaxChoice)
	b.WriteString(`Type "0" for the main menu.`)
}
