package middleware

import (
	"log/slog"

	deliverycontext "orderbot/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client-supplied ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process echoes the id on the response and stores it, with the child logger,
// on both the echo and request contexts.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := requestIDFrom(req.Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		ctx := deliverycontext.WithRequestID(req.Context(), id)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", id)))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// requestIDFrom keeps a caller's id only when it is short printable ASCII
// without spaces; anything else is replaced by a fresh UUID.
func requestIDFrom(header string) string {
	if header == "" || len(header) > maxRequestIDLength {
		return uuid.NewString()
	}
	for i := 0; i < len(header); i++ {
		if header[i] <= ' ' || header[i] > '~' {
			return uuid.NewString()
		}
	}

	return header
}
