package entity

// ConversationState is where a customer currently is in the WhatsApp dialogue.
type ConversationState string

const (
	StateMainMenu           ConversationState = "main_menu"
	StateBrowsingPizzas     ConversationState = "browsing_pizzas"
	StateBrowsingSalads     ConversationState = "browsing_salads"
	StateBrowsingBeverages  ConversationState = "browsing_beverages"
	StateBrowsingSpecials   ConversationState = "browsing_specials"
	StateBrowsingPasta      ConversationState = "browsing_pasta"
	StateBrowsingAppetizers ConversationState = "browsing_appetizers"
	StateProductDetails     ConversationState = "product_details"
	// StateCustomization is the menu shown right after an add-to-cart.
	StateCustomization   ConversationState = "customization"
	StateCartView        ConversationState = "cart_view"
	StateDeliveryDetails ConversationState = "delivery_details"
)

var browsingStates = map[Category]ConversationState{
	CategoryPizzas:     StateBrowsingPizzas,
	CategorySalads:     StateBrowsingSalads,
	CategoryBeverages:  StateBrowsingBeverages,
	CategorySpecials:   StateBrowsingSpecials,
	CategoryPasta:      StateBrowsingPasta,
	CategoryAppetizers: StateBrowsingAppetizers,
}

// AllConversationStates lists every state in dialogue order.
func AllConversationStates() []ConversationState {
	return []ConversationState{
		StateMainMenu,
		StateBrowsingPizzas,
		StateBrowsingSalads,
		StateBrowsingBeverages,
		StateBrowsingSpecials,
		StateBrowsingPasta,
		StateBrowsingAppetizers,
		StateProductDetails,
		StateCustomization,
		StateCartView,
		StateDeliveryDetails,
	}
}

// String returns the string representation of the state.
func (s ConversationState) String() string {
	return string(s)
}

// IsValid checks if the state is one of the known values.
func (s ConversationState) IsValid() bool {
	for _, state := range AllConversationStates() {
		if s == state {
			return true
		}
	}

	return false
}

// BrowsingStateFor maps a browsable category to its browsing state.
func BrowsingStateFor(category Category) (ConversationState, bool) {
	state, ok := browsingStates[category]

	return state, ok
}

// BrowsingCategory is the inverse of BrowsingStateFor.
func (s ConversationState) BrowsingCategory() (Category, bool) {
	for category, state := range browsingStates {
		if state == s {
			return category, true
		}
	}

	return "", false
}

// IsBrowsable reports whether the category has its own browse menu.
func (c Category) IsBrowsable() bool {
	_, ok := browsingStates[c]

	return ok
}
