package handler

import (
	"net/http"

	"orderbot/internal/delivery/api/response"
	"orderbot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StaffDeviceHandlerParams holds dependencies for StaffDeviceHandler, injected by Fx.
type StaffDeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.StaffDeviceUsecase
}

// StaffDeviceHandler manages the kitchen devices that receive order alerts.
type StaffDeviceHandler struct {
	deviceUC usecase.StaffDeviceUsecase
}

// NewStaffDeviceHandler is the constructor for StaffDeviceHandler
func NewStaffDeviceHandler(params StaffDeviceHandlerParams) *StaffDeviceHandler {
	return &StaffDeviceHandler{
		deviceUC: params.DeviceUC,
	}
}

// RegisterDevice handles POST /staff-devices.
func (h *StaffDeviceHandler) RegisterDevice(c echo.Context) error {
	var req usecase.StaffDeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// ListDevices handles GET /staff-devices.
func (h *StaffDeviceHandler) ListDevices(c echo.Context) error {
	devices, err := h.deviceUC.ListDevices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// RemoveDevice handles DELETE /staff-devices/:id.
func (h *StaffDeviceHandler) RemoveDevice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device removed successfully"})
}

// SendTestAlert handles POST /staff-devices/:id/test.
func (h *StaffDeviceHandler) SendTestAlert(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.SendTestAlert(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Test alert sent"})
}
