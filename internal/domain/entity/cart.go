package entity

// Delivery pricing. Orders at or above the threshold ship free.
const (
	FreeDeliveryThreshold Money = 2500
	StandardDeliveryFee   Money = 299
)

// Customization is free-text attached to a line item.
type Customization struct {
	Message             string `json:"message,omitempty"`
	CardMessage         string `json:"cardMessage,omitempty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// LineItem is one cart or order entry. Price is a snapshot taken when the item was added.
type LineItem struct {
	ProductID     string        `json:"productId,omitempty"`
	ProductName   string        `json:"productName"`
	Price         Money         `json:"price"`
	Quantity      int           `json:"quantity"`
	Customization Customization `json:"customization"`
	ImageURL      string        `json:"imageUrl,omitempty"`
}

// Subtotal is price times quantity.
func (li LineItem) Subtotal() Money {
	return li.Price.Times(li.Quantity)
}

// Cart is the customer's running order. TotalAmount always equals the sum of item subtotals.
type Cart struct {
	Items       []LineItem `json:"items"`
	TotalAmount Money      `json:"totalAmount"`
}

// Add appends item as a new line. Repeated products are never merged.
func (c *Cart) Add(item LineItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	c.Items = append(c.Items, item)
	c.TotalAmount += item.Subtotal()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.TotalAmount = 0
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal recomputes the sum of line subtotals.
func (c Cart) Subtotal() Money {
	var total Money
	for _, item := range c.Items {
		total += item.Subtotal()
	}

	return total
}

// ItemCount is the number of units across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// Clone returns a copy that shares no slice memory with c.
func (c Cart) Clone() Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)

	return Cart{Items: items, TotalAmount: c.TotalAmount}
}

// Totals is the priced view of a cart used by the cart screen, the delivery
// request, and order finalization.
func (c Cart) Totals() CartTotals {
	fee := ComputeDeliveryFee(c.TotalAmount)

	return CartTotals{
		Subtotal:    c.TotalAmount,
		DeliveryFee: fee,
		Total:       c.TotalAmount + fee,
	}
}

// CartTotals holds a cart subtotal, its delivery fee and the amount due.
type CartTotals struct {
	Subtotal    Money `json:"subtotal"`
	DeliveryFee Money `json:"deliveryFee"`
	Total       Money `json:"total"`
}

// ComputeDeliveryFee returns zero at or above the free delivery threshold.
func ComputeDeliveryFee(cartTotal Money) Money {
	if cartTotal >= FreeDeliveryThreshold {
		return 0
	}

	return StandardDeliveryFee
}
