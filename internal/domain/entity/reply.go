package entity

// ReplyKind selects how a reply is rendered.
type ReplyKind string

const (
	ReplyWelcome         ReplyKind = "welcome"
	ReplyMainMenu        ReplyKind = "main_menu"
	ReplyCategoryMenu    ReplyKind = "category_menu"
	ReplyProductDetails  ReplyKind = "product_details"
	ReplyItemAdded       ReplyKind = "item_added"
	ReplyCart            ReplyKind = "cart"
	ReplyCartCleared     ReplyKind = "cart_cleared"
	ReplyContactInfo     ReplyKind = "contact_info"
	ReplyDeliveryRequest ReplyKind = "delivery_request"
	ReplyOrderConfirmed  ReplyKind = "order_confirmed"
	ReplyOrderFailed     ReplyKind = "order_failed"
	ReplyInvalidChoice   ReplyKind = "invalid_choice"
	ReplyUnavailable     ReplyKind = "unavailable"
	ReplyError           ReplyKind = "error"
)

// MenuLink is a trailing numbered option that jumps to another menu.
type MenuLink struct {
	Choice int      `json:"choice"`
	Label  string   `json:"label"`
	Target Category `json:"target"`
}

// ImageAttachment is sent before the reply text.
type ImageAttachment struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Reply is the payload produced for one inbound message. Only the fields
// relevant to Kind are set.
type Reply struct {
	Kind ReplyKind `json:"kind"`

	// Category menus. On product details, the menu the item was picked from.
	Category Category       `json:"category,omitempty"`
	Items    []ItemSnapshot `json:"items,omitempty"`
	Links    []MenuLink     `json:"links,omitempty"`
	Fallback bool           `json:"fallback,omitempty"`

	// Product details.
	Item    *ItemSnapshot `json:"item,omitempty"`
	Options []PriceOption `json:"options,omitempty"`

	// Cart and checkout.
	LastAddedItem string     `json:"lastAddedItem,omitempty"`
	CartItems     []LineItem `json:"cartItems,omitempty"`
	Totals        CartTotals `json:"totals"`
	Order         *Order     `json:"order,omitempty"`

	// Invalid choice guidance. MaxChoice 0 means free text was expected.
	MinChoice int `json:"minChoice,omitempty"`
	MaxChoice int `json:"maxChoice,omitempty"`

	Image *ImageAttachment `json:"image,omitempty"`
}

// NewReply builds a reply with only a kind.
func NewReply(kind ReplyKind) *Reply {
	return &Reply{Kind: kind}
}

// InvalidChoiceReply asks for a number in [minChoice, maxChoice].
func InvalidChoiceReply(minChoice, maxChoice int) *Reply {
	return &Reply{Kind: ReplyInvalidChoice, MinChoice: minChoice, MaxChoice: maxChoice}
}

// CartReply shows the cart with its totals.
func CartReply(cart Cart) *Reply {
	items := make([]LineItem, len(cart.Items))
	copy(items, cart.Items)

	return &Reply{Kind: ReplyCart, CartItems: items, Totals: cart.Totals()}
}
