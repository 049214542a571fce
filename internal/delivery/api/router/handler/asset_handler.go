package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"orderbot/config"
	"orderbot/internal/delivery/api/response"
	deliverycontext "orderbot/internal/delivery/context"
	"orderbot/internal/domain/service"
	"orderbot/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	chatGreeting     = "hi"
	imageCacheMaxAge = "public, max-age=86400"
)

// AssetHandlerParams holds dependencies for AssetHandler, injected by Fx.
type AssetHandlerParams struct {
	fx.In

	Storage service.ImageStorage
	QRCode  service.QRCodeService
	Config  *config.Config
	Logger  *slog.Logger
}

// AssetHandler serves binary assets: stored product images and the shop QR.
type AssetHandler struct {
	storage   service.ImageStorage
	qrCode    service.QRCodeService
	shopPhone string
	logger    *slog.Logger
}

// NewAssetHandler is the constructor for AssetHandler
func NewAssetHandler(params AssetHandlerParams) *AssetHandler {
	return &AssetHandler{
		storage:   params.Storage,
		qrCode:    params.QRCode,
		shopPhone: params.Config.Shop.Phone,
		logger:    params.Logger,
	}
}

// GetImage handles GET /images/*.
func (h *AssetHandler) GetImage(c echo.Context) error {
	key := strings.TrimPrefix(c.Param("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return response.NotFound(c, "IMAGE_NOT_FOUND", "Image not found")
	}

	data, contentType, err := h.storage.Read(c.Request().Context(), key)
	if errors.Is(err, service.ErrImageNotFound) {
		return response.NotFound(c, "IMAGE_NOT_FOUND", "Image not found")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", imageCacheMaxAge)

	return c.Blob(http.StatusOK, contentType, data)
}

// GetChatQR handles GET /qr: a PNG that opens a WhatsApp chat with the shop.
func (h *AssetHandler) GetChatQR(c echo.Context) error {
	if h.shopPhone == "" {
		return response.NotFound(c, "SHOP_PHONE_NOT_CONFIGURED", "Shop phone number is not configured")
	}

	png, err := h.qrCode.GenerateChatQR(h.shopPhone, chatGreeting)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to generate chat QR",
			slog.Any("error", err),
		)

		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
