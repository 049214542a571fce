package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
	mockRepo "orderbot/internal/mocks/repository"
	mockService "orderbot/internal/mocks/service"
	mockUsecase "orderbot/internal/mocks/usecase"
	"orderbot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSender = "15551234567"

// memCustomerRepo keeps customers in memory so multi-turn dialogues can be
// replayed against the real state machine.
type memCustomerRepo struct {
	mu        sync.Mutex
	customers map[string]*entity.Customer
	saves     int
	findErr   error
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *memCustomerRepo) FindByPhone(_ context.Context, phoneNumber string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	customer, ok := r.customers[phoneNumber]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}

	return customer.Clone(), nil
}

func (r *memCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, customer := range r.customers {
		if customer.ID == id {
			return customer.Clone(), nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (r *memCustomerRepo) Save(_ context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers[customer.PhoneNumber] = customer.Clone()
	r.saves++

	return nil
}

func (r *memCustomerRepo) List(context.Context, repository.CustomerFilter) ([]*entity.Customer, int64, error) {
	return nil, 0, errors.New("not supported")
}

func (r *memCustomerRepo) Stats(context.Context, time.Time, time.Time, int) (*repository.CustomerStats, error) {
	return nil, errors.New("not supported")
}

func (r *memCustomerRepo) get(t *testing.T, phoneNumber string) *entity.Customer {
	t.Helper()

	customer, err := r.FindByPhone(context.Background(), phoneNumber)
	require.NoError(t, err)

	return customer
}

type conversationServiceFixtures struct {
	service   usecase.ConversationUsecase
	customers *memCustomerRepo
	products  *mockRepo.MockProductRepository
	checkout  *mockUsecase.MockCheckoutUsecase
	presenter *mockService.MockOutboundPresenter
	dedup     *mockService.MockMessageDeduplicator
	metrics   *mockService.MockMetricsRecorder
}

func createTestConversationService(t *testing.T) conversationServiceFixtures {
	customers := newMemCustomerRepo()
	products := mockRepo.NewMockProductRepository(t)
	checkout := mockUsecase.NewMockCheckoutUsecase(t)
	presenter := mockService.NewMockOutboundPresenter(t)
	dedup := mockService.NewMockMessageDeduplicator(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	metrics.EXPECT().MessageHandled(mock.Anything, mock.Anything).Return().Maybe()

	service := NewConversationService(ConversationServiceParams{
		CustomerRepo: customers,
		ProductRepo:  products,
		Checkout:     checkout,
		Presenter:    presenter,
		Deduplicator: dedup,
		Metrics:      metrics,
		Logger:       newDiscardLogger(),
	})

	return conversationServiceFixtures{
		service:   service,
		customers: customers,
		products:  products,
		checkout:  checkout,
		presenter: presenter,
		dedup:     dedup,
		metrics:   metrics,
	}
}

// stockMenu serves the given products for each category and nothing for the rest.
func (f conversationServiceFixtures) stockMenu(menus map[entity.Category][]*entity.Product) {
	f.products.EXPECT().
		FindForMenu(mock.Anything, mock.AnythingOfType("repository.CatalogQuery")).
		RunAndReturn(func(_ context.Context, query repository.CatalogQuery) ([]*entity.Product, error) {
			return menus[query.Category], nil
		}).
		Maybe()
}

func (f conversationServiceFixtures) send(t *testing.T, text string) *entity.Reply {
	t.Helper()

	reply, err := f.service.HandleMessage(context.Background(), &usecase.InboundMessage{
		MessageID: uuid.NewString(),
		From:      testSender,
		Text:      text,
	})
	require.NoError(t, err)
	require.NotNil(t, reply)

	return reply
}

func (f conversationServiceFixtures) seed(t *testing.T, state entity.ConversationState, ctx entity.ConversationContext, items ...entity.LineItem) *entity.Customer {
	t.Helper()

	customer := entity.NewCustomer(testSender, time.Now())
	for _, item := range items {
		customer.Cart.Add(item)
	}
	customer.MoveTo(state, ctx)
	require.NoError(t, f.customers.Save(context.Background(), customer))

	return customer
}

func pizzaMenu() []*entity.Product {
	return []*entity.Product{
		{ID: uuid.New(), Name: "Margherita", Category: entity.CategoryPizzas, Price: 12.99, Availability: true},
		{ID: uuid.New(), Name: "Pepperoni", Category: entity.CategoryPizzas, Price: 14.99, Availability: true,
			Images: []entity.ProductImage{{URL: "https://cdn.example.com/pepperoni.jpg"}}},
	}
}

var garlicBread = entity.LineItem{ProductName: "Garlic Bread", Price: 599, Quantity: 1}

func TestConversationService_FullOrderDialogue(t *testing.T) {
	fx := createTestConversationService(t)
	fx.stockMenu(map[entity.Category][]*entity.Product{entity.CategoryPizzas: pizzaMenu()})

	reply := fx.send(t, "hi")
	assert.Equal(t, entity.ReplyWelcome, reply.Kind)
	assert.Equal(t, entity.StateMainMenu, fx.customers.get(t, testSender).ConversationState)

	reply = fx.send(t, "1")
	require.Equal(t, entity.ReplyCategoryMenu, reply.Kind)
	assert.Len(t, reply.Items, 2)
	assert.Equal(t, []entity.MenuLink{
		{Choice: 3, Label: "Pasta Menu", Target: entity.CategoryPasta},
		{Choice: 4, Label: "Appetizers Menu", Target: entity.CategoryAppetizers},
	}, reply.Links)
	assert.Equal(t, entity.StateBrowsingPizzas, fx.customers.get(t, testSender).ConversationState)

	reply = fx.send(t, "1")
	require.Equal(t, entity.ReplyProductDetails, reply.Kind)
	assert.Equal(t, "Margherita", reply.Item.Name)
	require.Len(t, reply.Options, 4)
	assert.Equal(t, entity.Money(1699), reply.Options[1].Price)
	assert.Nil(t, reply.Image)

	reply = fx.send(t, "2")
	require.Equal(t, entity.ReplyItemAdded, reply.Kind)
	assert.Equal(t, `Margherita - Medium (12")`, reply.LastAddedItem)
	assert.Equal(t, entity.CartTotals{Subtotal: 1699, DeliveryFee: 299, Total: 1998}, reply.Totals)

	stored := fx.customers.get(t, testSender)
	assert.Equal(t, entity.StateCustomization, stored.ConversationState)
	assert.Equal(t, entity.ItemAddedContext{LastAddedItem: `Margherita - Medium (12")`}, stored.CurrentContext)
	require.Len(t, stored.Cart.Items, 1)
	assert.Equal(t, entity.Money(1699), stored.Cart.TotalAmount)

	reply = fx.send(t, "2")
	require.Equal(t, entity.ReplyDeliveryRequest, reply.Kind)
	assert.Equal(t, entity.Money(1998), reply.Totals.Total)
	assert.Equal(t, entity.StateDeliveryDetails, fx.customers.get(t, testSender).ConversationState)

	order := &entity.Order{OrderID: "TP1700000000000", TotalAmount: 1998}
	fx.checkout.EXPECT().
		FinalizeOrder(mock.Anything, mock.AnythingOfType("*entity.Customer"), "12 Main St, Springfield").
		RunAndReturn(func(ctx context.Context, customer *entity.Customer, _ string) (*entity.Order, error) {
			assert.Equal(t, entity.StateMainMenu, customer.ConversationState)
			assert.Equal(t, entity.EmptyContext{}, customer.CurrentContext)
			assert.Len(t, customer.Cart.Items, 1)

			customer.Cart.Clear()

			return order, fx.customers.Save(ctx, customer)
		})
	fx.metrics.EXPECT().OrderPlaced(entity.Money(1998)).Return()

	reply = fx.send(t, "  12 Main St, Springfield ")
	require.Equal(t, entity.ReplyOrderConfirmed, reply.Kind)
	assert.Same(t, order, reply.Order)

	stored = fx.customers.get(t, testSender)
	assert.Equal(t, entity.StateMainMenu, stored.ConversationState)
	assert.True(t, stored.Cart.IsEmpty())
}

func TestConversationService_UnknownSender(t *testing.T) {
	fx := createTestConversationService(t)

	reply, err := fx.service.HandleMessage(context.Background(), &usecase.InboundMessage{From: testSender, Text: "1"})
	require.NoError(t, err)
	assert.Nil(t, reply)
	assert.Zero(t, fx.customers.saves)

	reply = fx.send(t, "  Hello ")
	assert.Equal(t, entity.ReplyWelcome, reply.Kind)

	customer := fx.customers.get(t, testSender)
	assert.Equal(t, entity.StateMainMenu, customer.ConversationState)
	assert.Equal(t, entity.EmptyContext{}, customer.CurrentContext)
	assert.True(t, customer.Cart.IsEmpty())
}

func TestConversationService_EveryGreetingOpensConversation(t *testing.T) {
	for _, token := range []string{"menu", "hi", "hello", "start"} {
		t.Run(token, func(t *testing.T) {
			fx := createTestConversationService(t)

			reply := fx.send(t, token)
			assert.Equal(t, entity.ReplyWelcome, reply.Kind)
			assert.Equal(t, entity.StateMainMenu, fx.customers.get(t, testSender).ConversationState)
		})
	}
}

func TestConversationService_ResetFromEveryState(t *testing.T) {
	contexts := map[entity.ConversationState]entity.ConversationContext{
		entity.StateBrowsingSalads:  entity.BrowsingContext{Category: entity.CategorySalads},
		entity.StateProductDetails:  entity.ProductSelectedContext{Item: entity.ItemSnapshot{Name: "Caesar", Category: entity.CategorySalads}},
		entity.StateCustomization:   entity.ItemAddedContext{LastAddedItem: "Garlic Bread"},
		entity.StateCartView:        entity.CartReviewContext{},
		entity.StateDeliveryDetails: entity.CheckoutContext{},
	}

	for _, token := range []string{"0", "MENU", "start"} {
		for _, state := range entity.AllConversationStates() {
			t.Run(token+"/"+state.String(), func(t *testing.T) {
				fx := createTestConversationService(t)
				fx.seed(t, state, contexts[state], garlicBread)

				reply := fx.send(t, token)
				assert.Equal(t, entity.ReplyMainMenu, reply.Kind)

				customer := fx.customers.get(t, testSender)
				assert.Equal(t, entity.StateMainMenu, customer.ConversationState)
				assert.Equal(t, entity.EmptyContext{}, customer.CurrentContext)
				assert.Len(t, customer.Cart.Items, 1, "reset keeps the cart")
			})
		}
	}
}

func TestConversationService_InvalidChoicesKeepState(t *testing.T) {
	tests := []struct {
		name     string
		state    entity.ConversationState
		ctx      entity.ConversationContext
		cart     []entity.LineItem
		input    string
		min, max int
	}{
		{"main menu out of range", entity.StateMainMenu, entity.EmptyContext{}, nil, "7", 1, 6},
		{"main menu decimal", entity.StateMainMenu, entity.EmptyContext{}, nil, "1.0", 1, 6},
		{"main menu words", entity.StateMainMenu, entity.EmptyContext{}, nil, "pizza please", 1, 6},
		{"browsing past links", entity.StateBrowsingPizzas,
			entity.BrowsingContext{Category: entity.CategoryPizzas, Items: []entity.ItemSnapshot{{Name: "a"}, {Name: "b"}}}, nil, "5", 1, 4},
		{"browsing salads zero links", entity.StateBrowsingSalads,
			entity.BrowsingContext{Category: entity.CategorySalads, Items: []entity.ItemSnapshot{{Name: "a"}}}, nil, "2", 1, 1},
		{"pizza details", entity.StateProductDetails,
			entity.ProductSelectedContext{Item: entity.ItemSnapshot{Name: "Margherita", Category: entity.CategoryPizzas, Price: 12.99}}, nil, "6", 1, 5},
		{"salad details", entity.StateProductDetails,
			entity.ProductSelectedContext{Item: entity.ItemSnapshot{Name: "Caesar", Category: entity.CategorySalads, Price: 9.99}}, nil, "3", 1, 2},
		{"post add", entity.StateCustomization, entity.ItemAddedContext{}, []entity.LineItem{garlicBread}, "4", 1, 3},
		{"empty cart", entity.StateCartView, entity.CartReviewContext{CartWasEmpty: true}, nil, "5", 1, 4},
		{"full cart", entity.StateCartView, entity.CartReviewContext{}, []entity.LineItem{garlicBread}, "4", 1, 3},
		{"hi on full cart", entity.StateCartView, entity.CartReviewContext{}, []entity.LineItem{garlicBread}, "hi", 1, 3},
		{"hello on salad details", entity.StateProductDetails,
			entity.ProductSelectedContext{Item: entity.ItemSnapshot{Name: "Caesar", Category: entity.CategorySalads, Price: 9.99}}, nil, "Hello", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConversationService(t)
			fx.seed(t, tt.state, tt.ctx, tt.cart...)

			reply := fx.send(t, tt.input)
			assert.Equal(t, entity.ReplyInvalidChoice, reply.Kind)
			assert.Equal(t, tt.min, reply.MinChoice)
			assert.Equal(t, tt.max, reply.MaxChoice)

			customer := fx.customers.get(t, testSender)
			assert.Equal(t, tt.state, customer.ConversationState)
			assert.Equal(t, tt.ctx, customer.CurrentContext)
		})
	}
}

func TestConversationService_MainMenuChoices(t *testing.T) {
	t.Run("contact info", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.seed(t, entity.StateMainMenu, entity.EmptyContext{})

		reply := fx.send(t, "6")
		assert.Equal(t, entity.ReplyContactInfo, reply.Kind)
		assert.Equal(t, entity.StateMainMenu, fx.customers.get(t, testSender).ConversationState)
	})

	t.Run("empty cart then shortcut", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.stockMenu(map[entity.Category][]*entity.Product{
			entity.CategorySalads: {{ID: uuid.New(), Name: "Caesar", Category: entity.CategorySalads, Price: 9.99}},
		})
		fx.seed(t, entity.StateMainMenu, entity.EmptyContext{})

		reply := fx.send(t, "5")
		assert.Equal(t, entity.ReplyCart, reply.Kind)
		assert.Empty(t, reply.CartItems)
		assert.Equal(t, entity.CartReviewContext{CartWasEmpty: true}, fx.customers.get(t, testSender).CurrentContext)

		reply = fx.send(t, "2")
		assert.Equal(t, entity.ReplyCategoryMenu, reply.Kind)
		assert.Equal(t, entity.CategorySalads, reply.Category)
		assert.Equal(t, entity.StateBrowsingSalads, fx.customers.get(t, testSender).ConversationState)
	})
}

func TestConversationService_BrowsingLinksAndFallbacks(t *testing.T) {
	fx := createTestConversationService(t)
	fx.stockMenu(map[entity.Category][]*entity.Product{entity.CategoryPizzas: pizzaMenu()})
	fx.seed(t, entity.StateMainMenu, entity.EmptyContext{})

	fx.send(t, "1")
	reply := fx.send(t, "3")
	require.Equal(t, entity.ReplyCategoryMenu, reply.Kind)
	assert.Equal(t, entity.CategoryPasta, reply.Category)
	assert.True(t, reply.Fallback)
	require.Len(t, reply.Items, 4)
	assert.Equal(t, "fallback-pasta-1", reply.Items[0].ID)
	assert.Equal(t, []entity.MenuLink{{Choice: 5, Label: "Back to Pizza Menu", Target: entity.CategoryPizzas}}, reply.Links)

	reply = fx.send(t, "4")
	require.Equal(t, entity.ReplyProductDetails, reply.Kind)
	assert.Equal(t, "Lasagna Classic", reply.Item.Name)
	assert.Equal(t, []entity.PriceOption{{Choice: 1, Label: "Add to Cart", Price: 1699}}, reply.Options)

	reply = fx.send(t, "2")
	assert.Equal(t, entity.CategoryPasta, reply.Category, "back returns to the item's category")

	reply = fx.send(t, "5")
	assert.Equal(t, entity.CategoryPizzas, reply.Category)
	assert.Equal(t, entity.StateBrowsingPizzas, fx.customers.get(t, testSender).ConversationState)
}

func TestConversationService_ProductDetails(t *testing.T) {
	t.Run("image caption and size options", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.stockMenu(map[entity.Category][]*entity.Product{entity.CategoryPizzas: pizzaMenu()})
		fx.seed(t, entity.StateMainMenu, entity.EmptyContext{})

		fx.send(t, "1")
		reply := fx.send(t, "2")
		require.NotNil(t, reply.Image)
		assert.Equal(t, "https://cdn.example.com/pepperoni.jpg", reply.Image.URL)
		assert.Equal(t, "Pepperoni\nStarting at $14.99", reply.Image.Caption)

		reply = fx.send(t, "4")
		assert.Equal(t, `Pepperoni - Extra Large (16")`, reply.LastAddedItem)
		stored := fx.customers.get(t, testSender)
		assert.Equal(t, entity.Money(2699), stored.Cart.Items[0].Price)
		assert.Equal(t, "https://cdn.example.com/pepperoni.jpg", stored.Cart.Items[0].ImageURL)
	})

	t.Run("invalid stored price uses category default", func(t *testing.T) {
		fx := createTestConversationService(t)
		item := entity.ItemSnapshot{ID: "s1", Name: "House Salad", Category: entity.CategorySalads, Price: 0}
		fx.seed(t, entity.StateProductDetails, entity.ProductSelectedContext{Item: item})

		reply := fx.send(t, "1")
		require.Equal(t, entity.ReplyItemAdded, reply.Kind)
		assert.Equal(t, entity.Money(1299), fx.customers.get(t, testSender).Cart.TotalAmount)
	})

	t.Run("pizza back to menu", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.stockMenu(map[entity.Category][]*entity.Product{entity.CategoryPizzas: pizzaMenu()})
		item := entity.ItemSnapshot{Name: "Margherita", Category: entity.CategoryPizzas, Price: 12.99}
		fx.seed(t, entity.StateProductDetails, entity.ProductSelectedContext{Item: item})

		reply := fx.send(t, "5")
		assert.Equal(t, entity.ReplyCategoryMenu, reply.Kind)
		assert.Equal(t, entity.StateBrowsingPizzas, fx.customers.get(t, testSender).ConversationState)
	})

	t.Run("featured pizza from specials keeps the specials menu", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.stockMenu(map[entity.Category][]*entity.Product{
			entity.CategorySpecials: {
				{ID: uuid.New(), Name: "Truffle Pizza", Category: entity.CategoryPizzas, Price: 0, Availability: true, Featured: true},
			},
		})
		fx.seed(t, entity.StateMainMenu, entity.EmptyContext{})

		reply := fx.send(t, "4")
		require.Equal(t, entity.ReplyCategoryMenu, reply.Kind)

		reply = fx.send(t, "1")
		require.Equal(t, entity.ReplyProductDetails, reply.Kind)
		assert.Equal(t, entity.CategorySpecials, reply.Category)
		assert.Equal(t, []entity.PriceOption{{Choice: 1, Label: "Add to Cart", Price: 1999}}, reply.Options)
		selected, ok := fx.customers.get(t, testSender).CurrentContext.(entity.ProductSelectedContext)
		require.True(t, ok)
		assert.Equal(t, entity.CategorySpecials, selected.Menu)

		reply = fx.send(t, "2")
		assert.Equal(t, entity.ReplyCategoryMenu, reply.Kind)
		assert.Equal(t, entity.CategorySpecials, reply.Category)
		assert.Equal(t, entity.StateBrowsingSpecials, fx.customers.get(t, testSender).ConversationState)
	})

	t.Run("featured pizza from specials adds at the specials price", func(t *testing.T) {
		fx := createTestConversationService(t)
		item := entity.ItemSnapshot{ID: "p9", Name: "Truffle Pizza", Category: entity.CategoryPizzas, Price: 0}
		fx.seed(t, entity.StateProductDetails, entity.ProductSelectedContext{Item: item, Menu: entity.CategorySpecials})

		reply := fx.send(t, "1")
		require.Equal(t, entity.ReplyItemAdded, reply.Kind)
		assert.Equal(t, "Truffle Pizza", reply.LastAddedItem)
		assert.Equal(t, entity.Money(1999), fx.customers.get(t, testSender).Cart.TotalAmount)
	})

	t.Run("missing context returns to main menu", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.seed(t, entity.StateProductDetails, entity.EmptyContext{})

		reply := fx.send(t, "1")
		assert.Equal(t, entity.ReplyMainMenu, reply.Kind)
	})
}

func TestConversationService_CartView(t *testing.T) {
	t.Run("clear cart", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.seed(t, entity.StateCartView, entity.CartReviewContext{}, garlicBread, garlicBread)

		reply := fx.send(t, "2")
		assert.Equal(t, entity.ReplyCartCleared, reply.Kind)

		customer := fx.customers.get(t, testSender)
		assert.Equal(t, entity.StateMainMenu, customer.ConversationState)
		assert.True(t, customer.Cart.IsEmpty())
		assert.Zero(t, customer.Cart.TotalAmount)
	})

	t.Run("checkout asks for address", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.seed(t, entity.StateCartView, entity.CartReviewContext{}, garlicBread)

		reply := fx.send(t, "1")
		assert.Equal(t, entity.ReplyDeliveryRequest, reply.Kind)
		assert.Equal(t, entity.CartTotals{Subtotal: 599, DeliveryFee: 299, Total: 898}, reply.Totals)
		assert.Equal(t, entity.CheckoutContext{}, fx.customers.get(t, testSender).CurrentContext)
	})

	t.Run("post add view cart", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.seed(t, entity.StateCustomization, entity.ItemAddedContext{LastAddedItem: "Garlic Bread"}, garlicBread)

		reply := fx.send(t, "3")
		assert.Equal(t, entity.ReplyCart, reply.Kind)
		assert.Len(t, reply.CartItems, 1)
		assert.Equal(t, entity.CartReviewContext{CartWasEmpty: false}, fx.customers.get(t, testSender).CurrentContext)
	})
}

func TestConversationService_DeliveryDetails(t *testing.T) {
	t.Run("empty cart shows cart", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.seed(t, entity.StateDeliveryDetails, entity.CheckoutContext{})

		reply := fx.send(t, "221B Baker Street")
		assert.Equal(t, entity.ReplyCart, reply.Kind)
		assert.Equal(t, entity.StateCartView, fx.customers.get(t, testSender).ConversationState)
	})

	t.Run("checkout failure leaves customer untouched", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.seed(t, entity.StateDeliveryDetails, entity.CheckoutContext{}, garlicBread)
		saves := fx.customers.saves

		fx.checkout.EXPECT().
			FinalizeOrder(mock.Anything, mock.Anything, "221B Baker Street").
			Return(nil, errors.New("database unavailable"))
		fx.metrics.EXPECT().OrderFailed().Return()

		reply := fx.send(t, "221B Baker Street")
		assert.Equal(t, entity.ReplyOrderFailed, reply.Kind)

		customer := fx.customers.get(t, testSender)
		assert.Equal(t, saves, fx.customers.saves)
		assert.Equal(t, entity.StateDeliveryDetails, customer.ConversationState)
		assert.Len(t, customer.Cart.Items, 1)
	})
}

func TestConversationService_CatalogFailureKeepsState(t *testing.T) {
	fx := createTestConversationService(t)
	fx.seed(t, entity.StateMainMenu, entity.EmptyContext{})
	fx.products.EXPECT().
		FindForMenu(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	reply := fx.send(t, "3")
	assert.Equal(t, entity.ReplyUnavailable, reply.Kind)
	assert.Equal(t, entity.StateMainMenu, fx.customers.get(t, testSender).ConversationState)
}

func TestConversationService_UnknownStateRecovers(t *testing.T) {
	fx := createTestConversationService(t)
	fx.seed(t, entity.ConversationState("awaiting_coupon"), entity.EmptyContext{})

	reply := fx.send(t, "1")
	assert.Equal(t, entity.ReplyMainMenu, reply.Kind)
	assert.Equal(t, entity.StateMainMenu, fx.customers.get(t, testSender).ConversationState)
}

func TestConversationService_ReceiveMessage(t *testing.T) {
	msg := &usecase.InboundMessage{MessageID: "wamid.1", From: testSender, Text: "hi"}

	t.Run("presents reply", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.dedup.EXPECT().FirstSeen(mock.Anything, "wamid.1").Return(true, nil)
		fx.presenter.EXPECT().
			Present(mock.Anything, testSender, mock.MatchedBy(func(r *entity.Reply) bool { return r.Kind == entity.ReplyWelcome })).
			Return()

		require.NoError(t, fx.service.ReceiveMessage(context.Background(), msg))
	})

	t.Run("drops duplicates", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.dedup.EXPECT().FirstSeen(mock.Anything, "wamid.1").Return(false, nil)
		fx.metrics.EXPECT().MessageDropped("duplicate").Return()

		require.NoError(t, fx.service.ReceiveMessage(context.Background(), msg))
		assert.Zero(t, fx.customers.saves)
	})

	t.Run("deduplicator outage fails open", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.dedup.EXPECT().FirstSeen(mock.Anything, "wamid.1").Return(false, errors.New("redis down"))
		fx.presenter.EXPECT().Present(mock.Anything, testSender, mock.Anything).Return()

		require.NoError(t, fx.service.ReceiveMessage(context.Background(), msg))
		assert.Equal(t, 1, fx.customers.saves)
	})

	t.Run("unknown sender is counted", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.dedup.EXPECT().FirstSeen(mock.Anything, "wamid.2").Return(true, nil)
		fx.metrics.EXPECT().MessageDropped("unknown_sender").Return()

		err := fx.service.ReceiveMessage(context.Background(), &usecase.InboundMessage{MessageID: "wamid.2", From: testSender, Text: "pizza"})
		require.NoError(t, err)
	})

	t.Run("failure sends error reply", func(t *testing.T) {
		fx := createTestConversationService(t)
		fx.customers.findErr = errors.New("connection reset")
		fx.dedup.EXPECT().FirstSeen(mock.Anything, "wamid.1").Return(true, nil)
		fx.presenter.EXPECT().
			Present(mock.Anything, testSender, &entity.Reply{Kind: entity.ReplyError}).
			Return()

		err := fx.service.ReceiveMessage(context.Background(), msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
