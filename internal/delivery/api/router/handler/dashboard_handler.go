package handler

import (
	"net/http"

	"orderbot/internal/delivery/api/response"
	"orderbot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the admin landing statistics.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetDashboard handles GET /dashboard.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.dashboardUC.GetDashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}
