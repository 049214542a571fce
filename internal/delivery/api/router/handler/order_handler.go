package handler

import (
	"net/http"
	"time"

	"orderbot/internal/delivery/api/response"
	"orderbot/internal/domain/entity"
	"orderbot/internal/domain/repository"
	"orderbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the admin order endpoints.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// UpdateStatusRequest is the body of PUT /orders/:id/status.
type UpdateStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required,order_status"`
	Notes  string             `json:"notes" validate:"max=500"`
}

// UpdateOrderRequest is the body of PUT /orders/:id.
type UpdateOrderRequest struct {
	DeliveryInfo *DeliveryInfoRequest `json:"deliveryInfo"`
	PaymentInfo  *PaymentInfoRequest  `json:"paymentInfo"`
	Notes        *string              `json:"notes" validate:"omitempty,max=1000"`
}

// DeliveryInfoRequest carries editable delivery fields.
type DeliveryInfoRequest struct {
	RecipientName       *string `json:"recipientName" validate:"omitempty,max=100"`
	RecipientPhone      *string `json:"recipientPhone" validate:"omitempty,max=30"`
	Address             *string `json:"address" validate:"omitempty,max=500"`
	City                *string `json:"city" validate:"omitempty,max=100"`
	Area                *string `json:"area" validate:"omitempty,max=100"`
	DeliveryDate        *string `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`
	DeliveryTime        *string `json:"deliveryTime" validate:"omitempty,max=50"`
	SpecialInstructions *string `json:"specialInstructions" validate:"omitempty,max=500"`
}

// PaymentInfoRequest carries editable payment fields.
type PaymentInfoRequest struct {
	Method        *string `json:"method" validate:"omitempty,payment_method"`
	Status        *string `json:"status" validate:"omitempty,payment_status"`
	TransactionID *string `json:"transactionId" validate:"omitempty,max=100"`
}

// ListOrders handles GET /orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page, err := pageQuery(c)
	if err != nil {
		return queryError(err)
	}
	start, err := optionalDate(c, "startDate", false)
	if err != nil {
		return queryError(err)
	}
	end, err := optionalDate(c, "endDate", true)
	if err != nil {
		return queryError(err)
	}

	result, err := h.orderUC.ListOrders(c.Request().Context(), repository.OrderFilter{
		Page:      page,
		Status:    entity.OrderStatus(c.QueryParam("status")),
		City:      c.QueryParam("city"),
		StartDate: start,
		EndDate:   end,
		Search:    c.QueryParam("search"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, result.Orders, response.NewPagination(result.Page, result.Limit, result.Total))
}

// GetOrder handles GET /orders/:id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrderStatus handles PUT /orders/:id/status.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), id, req.Status, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/:id.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.orderUC.UpdateOrder(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetReceipt handles GET /orders/:id/receipt and streams the PDF.
func (h *OrderHandler) GetReceipt(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	order, pdf, err := h.orderUC.RenderReceipt(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="receipt-`+order.OrderID+`.pdf"`)

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func (r *UpdateOrderRequest) toInput() *usecase.OrderUpdateInput {
	input := &usecase.OrderUpdateInput{Notes: r.Notes}

	if d := r.DeliveryInfo; d != nil {
		input.RecipientName = d.RecipientName
		input.RecipientPhone = d.RecipientPhone
		input.Address = d.Address
		input.City = d.City
		input.Area = d.Area
		input.DeliveryTime = d.DeliveryTime
		input.SpecialInstructions = d.SpecialInstructions
		if d.DeliveryDate != nil {
			// Already validated as YYYY-MM-DD.
			if t, err := time.Parse(dateLayout, *d.DeliveryDate); err == nil {
				input.DeliveryDate = &t
			}
		}
	}

	if p := r.PaymentInfo; p != nil {
		if p.Method != nil {
			method := entity.PaymentMethod(*p.Method)
			input.PaymentMethod = &method
		}
		if p.Status != nil {
			status := entity.PaymentStatus(*p.Status)
			input.PaymentStatus = &status
		}
		input.TransactionID = p.TransactionID
	}

	return input
}
