package middleware

import (
	"net/http"

	domainerrors "orderbot/internal/domain/errors"
	"orderbot/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusFromError predicts the status code the error handler will write for err.
func statusFromError(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
