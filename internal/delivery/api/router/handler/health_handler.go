package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck is the liveness probe and keep-alive target.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
