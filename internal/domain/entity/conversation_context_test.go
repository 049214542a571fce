package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext_RoundTripKeepsVariant(t *testing.T) {
	browsing := BrowsingContext{
		Category: CategoryPasta,
		Items:    []ItemSnapshot{{ID: "p1", Name: "Lasagna Classic", Category: CategoryPasta, Price: 16.99}},
		Fallback: true,
	}

	data, err := MarshalContext(browsing)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"browsing"`)

	decoded, err := UnmarshalContext(data)
	require.NoError(t, err)
	assert.Equal(t, browsing, decoded)
}

func TestUnmarshalContext_EmptyInputs(t *testing.T) {
	for _, raw := range []string{"", "null", `{"kind":"empty"}`, `{}`} {
		ctx, err := UnmarshalContext([]byte(raw))
		require.NoError(t, err, raw)
		assert.Equal(t, EmptyContext{}, ctx, raw)
	}

	data, err := MarshalContext(nil)
	require.NoError(t, err)
	ctx, err := UnmarshalContext(data)
	require.NoError(t, err)
	assert.Equal(t, EmptyContext{}, ctx)
}

func TestUnmarshalContext_Errors(t *testing.T) {
	_, err := UnmarshalContext([]byte(`{"kind":"teleport"}`))
	require.Error(t, err)

	_, err = UnmarshalContext([]byte(`not json`))
	require.Error(t, err)
}

func TestBrowsingContext_ItemAt(t *testing.T) {
	ctx := BrowsingContext{Items: []ItemSnapshot{{Name: "a"}, {Name: "b"}}}

	item, ok := ctx.ItemAt(2)
	assert.True(t, ok)
	assert.Equal(t, "b", item.Name)

	_, ok = ctx.ItemAt(0)
	assert.False(t, ok)
	_, ok = ctx.ItemAt(3)
	assert.False(t, ok)
}

func TestConversationState_BrowsingRoundTrip(t *testing.T) {
	for _, category := range []Category{CategoryPizzas, CategorySalads, CategoryBeverages, CategorySpecials, CategoryPasta, CategoryAppetizers} {
		state, ok := BrowsingStateFor(category)
		require.True(t, ok)
		back, ok := state.BrowsingCategory()
		require.True(t, ok)
		assert.Equal(t, category, back)
		assert.True(t, state.IsValid())
	}

	_, ok := BrowsingStateFor(CategoryDesserts)
	assert.False(t, ok)
	assert.False(t, ConversationState("lost").IsValid())
}

func TestProductSelectedContext_MenuCategory(t *testing.T) {
	item := ItemSnapshot{ID: "p9", Name: "Truffle Pizza", Category: CategoryPizzas}

	selected := ProductSelectedContext{Item: item, Menu: CategorySpecials}
	data, err := MarshalContext(selected)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"menu":"specials"`)

	decoded, err := UnmarshalContext(data)
	require.NoError(t, err)
	assert.Equal(t, selected, decoded)
	assert.Equal(t, CategorySpecials, decoded.(ProductSelectedContext).MenuCategory())

	legacy, err := UnmarshalContext([]byte(`{"kind":"product_selected","data":{"item":{"id":"p9","name":"Truffle Pizza","category":"pizzas"}}}`))
	require.NoError(t, err)
	assert.Equal(t, CategoryPizzas, legacy.(ProductSelectedContext).MenuCategory())
}

func TestItemSnapshot_ResolvedPriceIn(t *testing.T) {
	item := ItemSnapshot{Name: "Truffle Pizza", Category: CategoryPizzas, Price: 0}

	price, fallback := item.ResolvedPriceIn(CategorySpecials)
	assert.True(t, fallback)
	assert.Equal(t, Money(1999), price)

	price, fallback = item.ResolvedPriceIn("")
	assert.True(t, fallback)
	assert.Equal(t, Money(999), price)

	item.Price = 21.5
	price, fallback = item.ResolvedPriceIn(CategorySpecials)
	assert.False(t, fallback)
	assert.Equal(t, Money(2150), price)
}
