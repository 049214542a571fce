// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"orderbot/config"
	"orderbot/internal/delivery/api/router/handler"
	"orderbot/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler     *handler.WebhookHandler
	ProductHandler     *handler.ProductHandler
	OrderHandler       *handler.OrderHandler
	CustomerHandler    *handler.CustomerHandler
	DashboardHandler   *handler.DashboardHandler
	StaffDeviceHandler *handler.StaffDeviceHandler
	AssetHandler       *handler.AssetHandler
	Metrics            *metrics.Recorder `optional:"true"`
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler     *handler.WebhookHandler
	productHandler     *handler.ProductHandler
	orderHandler       *handler.OrderHandler
	customerHandler    *handler.CustomerHandler
	dashboardHandler   *handler.DashboardHandler
	staffDeviceHandler *handler.StaffDeviceHandler
	assetHandler       *handler.AssetHandler
	metrics            *metrics.Recorder
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:     params.WebhookHandler,
		productHandler:     params.ProductHandler,
		orderHandler:       params.OrderHandler,
		customerHandler:    params.CustomerHandler,
		dashboardHandler:   params.DashboardHandler,
		staffDeviceHandler: params.StaffDeviceHandler,
		assetHandler:       params.AssetHandler,
		metrics:            params.Metrics,
		config:             params.Config,
	}
}

// UploadPathPrefix is exempt from the global body limit; it carries images.
const UploadPathPrefix = "/api/admin/products"

// multipartOverhead covers form fields and boundaries around the images.
const multipartOverhead = 1 << 20

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// WhatsApp Cloud API callbacks
	e.GET("/webhook", r.webhookHandler.Verify)
	e.POST("/webhook", r.webhookHandler.Receive)

	e.GET("/images/*", r.assetHandler.GetImage)

	// The admin API has no authentication; deploy it behind a trusted network.
	admin := e.Group("/api/admin")
	admin.GET("/dashboard", r.dashboardHandler.GetDashboard)
	admin.GET("/qr", r.assetHandler.GetChatQR)

	customers := admin.Group("/customers")
	{
		customers.GET("", r.customerHandler.ListCustomers)
		customers.GET("/:id", r.customerHandler.GetCustomer)
		customers.PUT("/:id", r.customerHandler.UpdateCustomer)
	}

	orders := admin.Group("/orders")
	{
		orders.GET("", r.orderHandler.ListOrders)
		orders.GET("/:id", r.orderHandler.GetOrder)
		orders.PUT("/:id/status", r.orderHandler.UpdateOrderStatus)
		orders.PUT("/:id", r.orderHandler.UpdateOrder)
		orders.GET("/:id/receipt", r.orderHandler.GetReceipt)
	}

	products := admin.Group("/products", echomiddleware.BodyLimit(r.uploadLimit()))
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.POST("", r.productHandler.CreateProduct)
		products.PUT("/:id", r.productHandler.UpdateProduct)
		products.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	devices := admin.Group("/staff-devices")
	{
		devices.POST("", r.staffDeviceHandler.RegisterDevice)
		devices.GET("", r.staffDeviceHandler.ListDevices)
		devices.DELETE("/:id", r.staffDeviceHandler.RemoveDevice)
		devices.POST("/:id/test", r.staffDeviceHandler.SendTestAlert)
	}
}

func (r *router) uploadLimit() string {
	storage := r.config.Storage
	limit := int64(storage.MaxImages)*storage.MaxImageBytes + multipartOverhead

	return strconv.FormatInt(limit, 10)
}
