package entity

import (
	"encoding/json"
	"fmt"
)

// ContextKind tags the variant stored in a customer's current context.
type ContextKind string

const (
	ContextKindEmpty           ContextKind = "empty"
	ContextKindBrowsing        ContextKind = "browsing"
	ContextKindProductSelected ContextKind = "product_selected"
	ContextKindItemAdded       ContextKind = "item_added"
	ContextKindCartReview      ContextKind = "cart_review"
	ContextKindCheckout        ContextKind = "checkout"
)

// ConversationContext is the transient data carried between two turns.
// Exactly one variant is held at a time and transitions always replace it.
type ConversationContext interface {
	Kind() ContextKind
	conversationContext()
}

// EmptyContext is held on the main menu.
type EmptyContext struct{}

// BrowsingContext keeps the list a category menu was rendered from, so a numeric
// reply resolves against exactly what the customer saw.
type BrowsingContext struct {
	Category Category       `json:"category"`
	Items    []ItemSnapshot `json:"items"`
	Fallback bool           `json:"fallback,omitempty"`
}

// ProductSelectedContext holds the single item whose details are on screen and
// the menu it was picked from.
type ProductSelectedContext struct {
	Item ItemSnapshot `json:"item"`
	Menu Category     `json:"menu,omitempty"`
}

// MenuCategory is the menu the item was picked from. Contexts saved before
// the menu was recorded fall back to the item's own category.
func (p ProductSelectedContext) MenuCategory() Category {
	if p.Menu != "" {
		return p.Menu
	}

	return p.Item.Category
}

// ItemAddedContext follows an add-to-cart.
type ItemAddedContext struct {
	LastAddedItem string `json:"lastAddedItem"`
}

// CartReviewContext records which cart menu was rendered.
type CartReviewContext struct {
	CartWasEmpty bool `json:"cartWasEmpty"`
}

// CheckoutContext is held while waiting for the delivery address.
type CheckoutContext struct{}

func (EmptyContext) Kind() ContextKind           { return ContextKindEmpty }
func (BrowsingContext) Kind() ContextKind        { return ContextKindBrowsing }
func (ProductSelectedContext) Kind() ContextKind { return ContextKindProductSelected }
func (ItemAddedContext) Kind() ContextKind       { return ContextKindItemAdded }
func (CartReviewContext) Kind() ContextKind      { return ContextKindCartReview }
func (CheckoutContext) Kind() ContextKind        { return ContextKindCheckout }

func (EmptyContext) conversationContext()           {}
func (BrowsingContext) conversationContext()        {}
func (ProductSelectedContext) conversationContext() {}
func (ItemAddedContext) conversationContext()       {}
func (CartReviewContext) conversationContext()      {}
func (CheckoutContext) conversationContext()        {}

// ItemAt resolves a 1-based menu choice against the stored list.
func (b BrowsingContext) ItemAt(choice int) (ItemSnapshot, bool) {
	if choice < 1 || choice > len(b.Items) {
		return ItemSnapshot{}, false
	}

	return b.Items[choice-1], true
}

// ItemSnapshot is a copy of a catalog item taken when a menu was built.
// Price is kept as stored and resolved only when the item goes into the cart.
type ItemSnapshot struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    Category       `json:"category"`
	Description string         `json:"description,omitempty"`
	Details     string         `json:"details,omitempty"`
	Price       float64        `json:"price"`
	Original    float64        `json:"originalPrice,omitempty"`
	Featured    bool           `json:"featured,omitempty"`
	SpiceLevel  string         `json:"spiceLevel,omitempty"`
	Servings    string         `json:"servings,omitempty"`
	PrepTime    string         `json:"preparationTime,omitempty"`
	Ingredients []string       `json:"ingredients,omitempty"`
	Images      []ProductImage `json:"images,omitempty"`
}

// PrimaryImage returns the first image, if any.
func (s ItemSnapshot) PrimaryImage() (ProductImage, bool) {
	if len(s.Images) == 0 {
		return ProductImage{}, false
	}

	return s.Images[0], true
}

// ResolvedPrice applies the category price fallback to the stored price.
func (s ItemSnapshot) ResolvedPrice() (Money, bool) {
	return ResolvePrice(s.Price, s.Category)
}

// ResolvedPriceIn applies the fallback of the menu the item is listed under.
// An empty menu uses the item's own category.
func (s ItemSnapshot) ResolvedPriceIn(menu Category) (Money, bool) {
	if menu == "" {
		return s.ResolvedPrice()
	}

	return ResolvePrice(s.Price, menu)
}

type contextEnvelope struct {
	Kind ContextKind     `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalContext encodes a context variant with its kind tag.
func MarshalContext(ctx ConversationContext) ([]byte, error) {
	if ctx == nil {
		ctx = EmptyContext{}
	}

	envelope := contextEnvelope{Kind: ctx.Kind()}
	switch ctx.(type) {
	case EmptyContext, CheckoutContext:
	default:
		data, err := json.Marshal(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s context: %w", ctx.Kind(), err)
		}
		envelope.Data = data
	}

	return json.Marshal(envelope)
}

// UnmarshalContext decodes a tagged context. Empty input yields EmptyContext.
func UnmarshalContext(data []byte) (ConversationContext, error) {
	if len(data) == 0 || string(data) == "null" {
		return EmptyContext{}, nil
	}

	var envelope contextEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal context envelope: %w", err)
	}

	switch envelope.Kind {
	case ContextKindEmpty, "":
		return EmptyContext{}, nil
	case ContextKindCheckout:
		return CheckoutContext{}, nil
	case ContextKindBrowsing:
		return decodeVariant[BrowsingContext](envelope)
	case ContextKindProductSelected:
		return decodeVariant[ProductSelectedContext](envelope)
	case ContextKindItemAdded:
		return decodeVariant[ItemAddedContext](envelope)
	case ContextKindCartReview:
		return decodeVariant[CartReviewContext](envelope)
	default:
		return nil, fmt.Errorf("unknown context kind %q", envelope.Kind)
	}
}

func decodeVariant[T ConversationContext](envelope contextEnvelope) (ConversationContext, error) {
	var variant T
	if len(envelope.Data) == 0 {
		return variant, nil
	}
	if err := json.Unmarshal(envelope.Data, &variant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s context: %w", envelope.Kind, err)
	}

	return variant, nil
}
