package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"orderbot/internal/domain/entity"
)

// turn is the working state for one inbound message.
type turn struct {
	customer *entity.Customer
	// input is trimmed and lowercased for command matching.
	input string
	// raw is trimmed but keeps the customer's casing.
	raw string
}

type effectKind int

const (
	effectAddToCart effectKind = iota
	effectClearCart
	effectPlaceOrder
)

type effect struct {
	kind    effectKind
	item    entity.LineItem
	address string
}

// transition is the outcome of one state handler. context always replaces the
// customer's current context.
type transition struct {
	state   entity.ConversationState
	context entity.ConversationContext
	reply   *entity.Reply
	effects []effect
}

type stateHandler func(ctx context.Context, t *turn) (*transition, error)

func (srv *conversationService) transitionTable() map[entity.ConversationState]stateHandler {
	return map[entity.ConversationState]stateHandler{
		entity.StateMainMenu:           srv.handleMainMenu,
		entity.StateBrowsingPizzas:     srv.handleBrowsing,
		entity.StateBrowsingSalads:     srv.handleBrowsing,
		entity.StateBrowsingBeverages:  srv.handleBrowsing,
		entity.StateBrowsingSpecials:   srv.handleBrowsing,
		entity.StateBrowsingPasta:      srv.handleBrowsing,
		entity.StateBrowsingAppetizers: srv.handleBrowsing,
		entity.StateProductDetails:     srv.handleProductDetails,
		entity.StateCustomization:      srv.handlePostAdd,
		entity.StateCartView:           srv.handleCartView,
		entity.StateDeliveryDetails:    srv.handleDeliveryDetails,
	}
}

// parseChoice accepts a plain base-10 integer only.
func parseChoice(input string) (int, bool) {
	choice, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}

	return choice, true
}

func toMainMenu() *transition {
	return &transition{
		state:   entity.StateMainMenu,
		context: entity.EmptyContext{},
		reply:   entity.NewReply(entity.ReplyMainMenu),
	}
}

// stay keeps state and context and only replies.
func stay(t *turn, reply *entity.Reply) *transition {
	return &transition{
		state:   t.customer.ConversationState,
		context: t.customer.CurrentContext,
		reply:   reply,
	}
}

func showCart(cart entity.Cart) *transition {
	return &transition{
		state:   entity.StateCartView,
		context: entity.CartReviewContext{CartWasEmpty: cart.IsEmpty()},
		reply:   entity.CartReply(cart),
	}
}

func requestDelivery(cart entity.Cart) *transition {
	return &transition{
		state:   entity.StateDeliveryDetails,
		context: entity.CheckoutContext{},
		reply:   &entity.Reply{Kind: entity.ReplyDeliveryRequest, Totals: cart.Totals()},
	}
}

// browse renders a category menu and stores its list in the new context. A
// catalog failure keeps the customer where they are.
func (srv *conversationService) browse(ctx context.Context, t *turn, category entity.Category) *transition {
	state, ok := entity.BrowsingStateFor(category)
	if !ok {
		return toMainMenu()
	}

	page, err := srv.menu.Build(ctx, category)
	if err != nil {
		srv.log(ctx).Error("Catalog unavailable",
			slog.String("category", category.String()),
			slog.Any("error", err),
		)

		return stay(t, entity.NewReply(entity.ReplyUnavailable))
	}

	return &transition{
		state: state,
		context: entity.BrowsingContext{
			Category: category,
			Items:    page.Items,
			Fallback: page.Fallback,
		},
		reply: &entity.Reply{
			Kind:     entity.ReplyCategoryMenu,
			Category: category,
			Items:    page.Items,
			Links:    menuLinks(category, len(page.Items)),
			Fallback: page.Fallback,
		},
	}
}

func (srv *conversationService) handleMainMenu(ctx context.Context, t *turn) (*transition, error) {
	choice, _ := parseChoice(t.input)
	switch {
	case choice >= 1 && choice <= len(entity.MainMenuCategories):
		return srv.browse(ctx, t, entity.MainMenuCategories[choice-1]), nil
	case choice == 5:
		return showCart(t.customer.Cart), nil
	case choice == 6:
		return stay(t, entity.NewReply(entity.ReplyContactInfo)), nil
	default:
		return stay(t, entity.InvalidChoiceReply(1, 6)), nil
	}
}

func (srv *conversationService) handleBrowsing(ctx context.Context, t *turn) (*transition, error) {
	category, _ := t.customer.ConversationState.BrowsingCategory()
	browsing, ok := t.customer.CurrentContext.(entity.BrowsingContext)
	if !ok || browsing.Category != category {
		srv.log(ctx).Warn("Browsing list missing from context, rebuilding menu",
			slog.String("customer_id", t.customer.ID.String()),
			slog.String("category", category.String()),
		)

		return srv.browse(ctx, t, category), nil
	}

	choice, valid := parseChoice(t.input)
	links := menuLinks(category, len(browsing.Items))
	if valid {
		if item, found := browsing.ItemAt(choice); found {
			return srv.showProduct(ctx, item, category), nil
		}
		for _, link := range links {
			if link.Choice == choice {
				return srv.browse(ctx, t, link.Target), nil
			}
		}
	}

	return stay(t, entity.InvalidChoiceReply(1, len(browsing.Items)+len(links))), nil
}

func (srv *conversationService) showProduct(ctx context.Context, item entity.ItemSnapshot, menu entity.Category) *transition {
	price := srv.resolvePrice(ctx, item, menu)

	reply := &entity.Reply{Kind: entity.ReplyProductDetails, Category: menu, Item: &item}
	if menu == entity.CategoryPizzas {
		reply.Options = entity.PizzaSizeOptions(price)
	} else {
		reply.Options = []entity.PriceOption{{Choice: 1, Label: "Add to Cart", Price: price}}
	}
	if image, ok := item.PrimaryImage(); ok {
		reply.Image = &entity.ImageAttachment{
			URL:     image.URL,
			Caption: fmt.Sprintf("%s\nStarting at $%s", item.Name, price),
		}
	}

	return &transition{
		state:   entity.StateProductDetails,
		context: entity.ProductSelectedContext{Item: item, Menu: menu},
		reply:   reply,
	}
}

func (srv *conversationService) resolvePrice(ctx context.Context, item entity.ItemSnapshot, menu entity.Category) entity.Money {
	price, fallback := item.ResolvedPriceIn(menu)
	if fallback {
		srv.log(ctx).Warn("Invalid stored price, using category default",
			slog.String("item_id", item.ID),
			slog.String("category", menu.String()),
			slog.Float64("stored_price", item.Price),
			slog.String("default_price", price.String()),
		)
	}

	return price
}

func (srv *conversationService) handleProductDetails(ctx context.Context, t *turn) (*transition, error) {
	selected, ok := t.customer.CurrentContext.(entity.ProductSelectedContext)
	if !ok {
		srv.log(ctx).Warn("Selected item missing from context, returning to main menu",
			slog.String("customer_id", t.customer.ID.String()),
		)

		return toMainMenu(), nil
	}

	item := selected.Item
	menu := selected.MenuCategory()
	price := srv.resolvePrice(ctx, item, menu)
	choice, _ := parseChoice(t.input)

	if menu == entity.CategoryPizzas {
		switch {
		case choice >= 1 && choice <= len(entity.PizzaSizes):
			size := entity.PizzaSizes[choice-1]

			return addToCart(item, entity.SizedItemName(item.Name, size.Label), price+size.Delta), nil
		case choice == len(entity.PizzaSizes)+1:
			return srv.browse(ctx, t, entity.CategoryPizzas), nil
		default:
			return stay(t, entity.InvalidChoiceReply(1, len(entity.PizzaSizes)+1)), nil
		}
	}

	switch choice {
	case 1:
		return addToCart(item, item.Name, price), nil
	case 2:
		if menu.IsBrowsable() {
			return srv.browse(ctx, t, menu), nil
		}

		return toMainMenu(), nil
	default:
		return stay(t, entity.InvalidChoiceReply(1, 2)), nil
	}
}

func addToCart(item entity.ItemSnapshot, name string, price entity.Money) *transition {
	line := entity.LineItem{
		ProductID:   item.ID,
		ProductName: name,
		Price:       price,
		Quantity:    1,
	}
	if image, ok := item.PrimaryImage(); ok {
		line.ImageURL = image.URL
	}

	return &transition{
		state:   entity.StateCustomization,
		context: entity.ItemAddedContext{LastAddedItem: name},
		reply:   &entity.Reply{Kind: entity.ReplyItemAdded, LastAddedItem: name},
		effects: []effect{{kind: effectAddToCart, item: line}},
	}
}

// handlePostAdd handles the menu shown after an item lands in the cart.
func (srv *conversationService) handlePostAdd(_ context.Context, t *turn) (*transition, error) {
	choice, _ := parseChoice(t.input)
	switch choice {
	case 1:
		return toMainMenu(), nil
	case 2:
		return requestDelivery(t.customer.Cart), nil
	case 3:
		return showCart(t.customer.Cart), nil
	default:
		return stay(t, entity.InvalidChoiceReply(1, 3)), nil
	}
}

func (srv *conversationService) handleCartView(ctx context.Context, t *turn) (*transition, error) {
	choice, _ := parseChoice(t.input)

	if t.customer.Cart.IsEmpty() {
		if choice >= 1 && choice <= len(entity.MainMenuCategories) {
			return srv.browse(ctx, t, entity.MainMenuCategories[choice-1]), nil
		}

		return stay(t, entity.InvalidChoiceReply(1, len(entity.MainMenuCategories))), nil
	}

	switch choice {
	case 1:
		return requestDelivery(t.customer.Cart), nil
	case 2:
		return &transition{
			state:   entity.StateMainMenu,
			context: entity.EmptyContext{},
			reply:   entity.NewReply(entity.ReplyCartCleared),
			effects: []effect{{kind: effectClearCart}},
		}, nil
	case 3:
		return toMainMenu(), nil
	default:
		return stay(t, entity.InvalidChoiceReply(1, 3)), nil
	}
}

// handleDeliveryDetails takes any non-empty text as the delivery address.
func (srv *conversationService) handleDeliveryDetails(_ context.Context, t *turn) (*transition, error) {
	if t.customer.Cart.IsEmpty() {
		return showCart(t.customer.Cart), nil
	}
	if t.raw == "" {
		return stay(t, &entity.Reply{Kind: entity.ReplyInvalidChoice}), nil
	}

	return &transition{
		state:   entity.StateMainMenu,
		context: entity.EmptyContext{},
		reply:   entity.NewReply(entity.ReplyOrderConfirmed),
		effects: []effect{{kind: effectPlaceOrder, address: t.raw}},
	}, nil
}
