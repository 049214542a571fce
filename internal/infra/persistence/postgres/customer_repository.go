package postgres

import (
	"context"
	"fmt"
	"time"

	"orderbot/internal/domain/entity"
	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/domain/repository"
	"orderbot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// customerSortColumns maps API sort keys to columns.
var customerSortColumns = map[string]string{
	"createdAt":         "created_at",
	"lastInteractionAt": "last_interaction_at",
	"name":              "name",
	"phoneNumber":       "phone_number",
}

// customerUpsertColumns are overwritten when a phone number already exists.
var customerUpsertColumns = []string{
	"name", "email", "notes", "conversation_state", "current_context",
	"cart", "cart_total", "order_history", "preferences",
	"last_interaction_at", "updated_at",
}

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByPhone retrieves a customer by WhatsApp phone number.
func (repo *customerRepository) FindByPhone(ctx context.Context, phoneNumber string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("phone_number = ?", phoneNumber).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by phone")
	}

	return toCustomerDomain(&customerM)
}

// FindByID retrieves a customer by its unique ID.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM)
}

// Save inserts the customer or overwrites the row holding the same phone number.
func (repo *customerRepository) Save(ctx context.Context, customer *entity.Customer) error {
	customerM, err := fromCustomerDomain(customer)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone_number"}},
			DoUpdates: clause.AssignmentColumns(customerUpsertColumns),
		}).
		Create(customerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCustomerUpdateFailed.WithDetails("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save customer")
	}

	return nil
}

// List returns one page of customers and the total match count.
func (repo *customerRepository) List(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CustomerModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR phone_number ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	column, ok := customerSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == repository.SortAsc {
		direction = "ASC"
	}

	var customerModels []*model.CustomerModel
	if err := query.
		Order(fmt.Sprintf("%s %s", column, direction)).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&customerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers, err := toCustomerDomains(customerModels)
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// Stats counts customers for the dashboard.
func (repo *customerRepository) Stats(ctx context.Context, activeSince, createdSince time.Time, newest int) (*repository.CustomerStats, error) {
	stats := &repository.CustomerStats{}
	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.CustomerModel{}).Count(&stats.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}
	if err := db.Model(&model.CustomerModel{}).
		Where("last_interaction_at >= ?", activeSince).
		Count(&stats.ActiveSince).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count active customers")
	}
	if err := db.Model(&model.CustomerModel{}).
		Where("created_at >= ?", createdSince).
		Count(&stats.CreatedSince).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count new customers")
	}

	var customerModels []*model.CustomerModel
	if err := db.Order("created_at DESC").Limit(newest).Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find newest customers")
	}

	var err error
	stats.NewestCustomer, err = toCustomerDomains(customerModels)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// --- Mapper Functions ---

func toCustomerDomains(customerModels []*model.CustomerModel) ([]*entity.Customer, error) {
	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customer, err := toCustomerDomain(customerM)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
// An unreadable context decodes as empty so the customer lands on a safe menu.
func toCustomerDomain(data *model.CustomerModel) (*entity.Customer, error) {
	if data == nil {
		return nil, nil
	}

	customer := &entity.Customer{
		ID:                data.ID,
		PhoneNumber:       data.PhoneNumber,
		Name:              data.Name,
		Email:             data.Email,
		Notes:             data.Notes,
		ConversationState: entity.ConversationState(data.ConversationState),
		Cart:              entity.Cart{Items: []entity.LineItem{}},
		OrderHistory:      []entity.OrderSummary{},
		LastInteractionAt: data.LastInteractionAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	conversationContext, err := entity.UnmarshalContext(data.CurrentContext)
	if err != nil {
		conversationContext = entity.EmptyContext{}
	}
	customer.CurrentContext = conversationContext

	if err := fromJSON(data.Cart, &customer.Cart); err != nil {
		return nil, err
	}
	if customer.Cart.Items == nil {
		customer.Cart.Items = []entity.LineItem{}
	}
	if err := fromJSON(data.OrderHistory, &customer.OrderHistory); err != nil {
		return nil, err
	}
	if err := fromJSON(data.Preferences, &customer.Preferences); err != nil {
		return nil, err
	}

	return customer, nil
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) (*model.CustomerModel, error) {
	conversationContext, err := entity.MarshalContext(data.CurrentContext)
	if err != nil {
		return nil, err
	}
	cart, err := toJSON(data.Cart)
	if err != nil {
		return nil, err
	}
	history, err := toJSON(data.OrderHistory)
	if err != nil {
		return nil, err
	}
	preferences, err := toJSON(data.Preferences)
	if err != nil {
		return nil, err
	}

	return &model.CustomerModel{
		ID:                data.ID,
		PhoneNumber:       data.PhoneNumber,
		Name:              data.Name,
		Email:             data.Email,
		Notes:             data.Notes,
		ConversationState: data.ConversationState.String(),
		CurrentContext:    conversationContext,
		Cart:              cart,
		CartTotal:         int64(data.Cart.TotalAmount),
		OrderHistory:      history,
		Preferences:       preferences,
		LastInteractionAt: data.LastInteractionAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}
