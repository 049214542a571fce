package postgres

import (
	"context"
	"time"

	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	revenueExpr  = "COALESCE(SUM(CASE WHEN status <> 'cancelled' THEN total_amount ELSE 0 END), 0)"
	salesDayFmt  = "2006-01-02"
	orderItemsBy = "order_items.position ASC"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order(orderItemsBy)
}

// Create persists a new order together with its line items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderID
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WithDetails("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves an order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindByCustomer lists a customer's orders, newest first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return toOrderDomains(orderModels)
}

// List returns one page of orders, newest first, and the total match count.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", filter.City)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("order_id ILIKE ? OR customer_phone ILIKE ? OR recipient_name ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items", preloadItems).
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders, err := toOrderDomains(orderModels)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// Update overwrites status, timeline, delivery, payment and notes. Line items
// are immutable once placed.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Select(
			"recipient_name", "recipient_phone", "address", "city", "area",
			"delivery_date", "delivery_time", "special_instructions",
			"status", "payment_method", "payment_status", "transaction_id",
			"timeline", "notes", "updated_at",
		).
		Updates(orderM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Summarize counts orders and non-cancelled revenue since an instant.
func (repo *orderRepository) Summarize(ctx context.Context, since time.Time) (*repository.SalesSummary, error) {
	var row struct {
		Orders  int64
		Revenue int64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS orders, " + revenueExpr + " AS revenue")
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	if err := query.Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize orders")
	}

	return &repository.SalesSummary{Orders: row.Orders, Revenue: entity.Money(row.Revenue)}, nil
}

// CountByStatus groups order counts by status. Every known status is present.
func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(entity.AllOrderStatuses()))
	for _, status := range entity.AllOrderStatuses() {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// DailySales returns one row per calendar day since the given instant,
// including days without orders.
func (repo *orderRepository) DailySales(ctx context.Context, since time.Time) ([]repository.DailySales, error) {
	var rows []struct {
		Day     string
		Orders  int64
		Revenue int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("to_char(created_at, 'YYYY-MM-DD') AS day, COUNT(*) AS orders, "+revenueExpr+" AS revenue").
		Where("created_at >= ?", since).
		Group("day").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily sales")
	}

	byDay := make(map[string]repository.DailySales, len(rows))
	for _, row := range rows {
		byDay[row.Day] = repository.DailySales{Date: row.Day, Orders: row.Orders, Revenue: entity.Money(row.Revenue)}
	}

	return fillSalesDays(byDay, since, time.Now()), nil
}

// fillSalesDays lays out one entry per day from since to until inclusive.
func fillSalesDays(byDay map[string]repository.DailySales, since, until time.Time) []repository.DailySales {
	start := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, since.Location())
	var sales []repository.DailySales
	for day := start; !day.After(until); day = day.AddDate(0, 0, 1) {
		key := day.Format(salesDayFmt)
		entry, ok := byDay[key]
		if !ok {
			entry = repository.DailySales{Date: key}
		}
		sales = append(sales, entry)
	}

	return sales
}

// TopProducts ranks line item names by quantity over non-cancelled orders.
func (repo *orderRepository) TopProducts(ctx context.Context, limit int) ([]repository.ProductSales, error) {
	var rows []struct {
		ProductName string
		Quantity    int64
		Revenue     int64
	}

	if err := repo.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_name, SUM(order_items.quantity) AS quantity, SUM(order_items.price * order_items.quantity) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_ref").
		Where("orders.status <> ?", entity.OrderStatusCancelled.String()).
		Group("order_items.product_name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank products")
	}

	sales := make([]repository.ProductSales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, repository.ProductSales{
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Revenue:     entity.Money(row.Revenue),
		})
	}

	return sales, nil
}

// --- Mapper Functions ---

func toOrderDomains(orderModels []*model.OrderModel) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	if data == nil {
		return nil, nil
	}

	order := &entity.Order{
		ID:            data.ID,
		OrderID:       data.OrderID,
		CustomerID:    data.CustomerID,
		CustomerPhone: data.CustomerPhone,
		Items:         make([]entity.LineItem, 0, len(data.Items)),
		TotalAmount:   entity.Money(data.TotalAmount),
		DeliveryInfo: entity.DeliveryInfo{
			RecipientName:       data.RecipientName,
			RecipientPhone:      data.RecipientPhone,
			Address:             data.Address,
			City:                data.City,
			Area:                data.Area,
			DeliveryDate:        data.DeliveryDate,
			DeliveryTime:        data.DeliveryTime,
			DeliveryFee:         entity.Money(data.DeliveryFee),
			SpecialInstructions: data.SpecialInstructions,
		},
		Status: entity.OrderStatus(data.Status),
		PaymentInfo: entity.PaymentInfo{
			Method:        entity.PaymentMethod(data.PaymentMethod),
			Status:        entity.PaymentStatus(data.PaymentStatus),
			TransactionID: data.TransactionID,
		},
		Timeline:  []entity.TimelineEntry{},
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for _, itemM := range data.Items {
		item := entity.LineItem{
			ProductID:   itemM.ProductID,
			ProductName: itemM.ProductName,
			Price:       entity.Money(itemM.Price),
			Quantity:    itemM.Quantity,
			ImageURL:    itemM.ImageURL,
		}
		if err := fromJSON(itemM.Customization, &item.Customization); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	if err := fromJSON(data.Timeline, &order.Timeline); err != nil {
		return nil, err
	}

	return order, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	timeline, err := toJSON(data.Timeline)
	if err != nil {
		return nil, err
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		customization, err := toJSON(item.Customization)
		if err != nil {
			return nil, err
		}
		items = append(items, model.OrderItemModel{
			OrderRef:      data.ID,
			Position:      i,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			Price:         int64(item.Price),
			Quantity:      item.Quantity,
			Customization: customization,
			ImageURL:      item.ImageURL,
		})
	}

	return &model.OrderModel{
		ID:                  data.ID,
		OrderID:             data.OrderID,
		CustomerID:          data.CustomerID,
		CustomerPhone:       data.CustomerPhone,
		Items:               items,
		TotalAmount:         int64(data.TotalAmount),
		DeliveryFee:         int64(data.DeliveryInfo.DeliveryFee),
		RecipientName:       data.DeliveryInfo.RecipientName,
		RecipientPhone:      data.DeliveryInfo.RecipientPhone,
		Address:             data.DeliveryInfo.Address,
		City:                data.DeliveryInfo.City,
		Area:                data.DeliveryInfo.Area,
		DeliveryDate:        data.DeliveryInfo.DeliveryDate,
		DeliveryTime:        data.DeliveryInfo.DeliveryTime,
		SpecialInstructions: data.DeliveryInfo.SpecialInstructions,
		Status:              data.Status.String(),
		PaymentMethod:       string(data.PaymentInfo.Method),
		PaymentStatus:       string(data.PaymentInfo.Status),
		TransactionID:       data.PaymentInfo.TransactionID,
		Timeline:            timeline,
		Notes:               data.Notes,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}, nil
}
