package handler

import (
	"net/http"
	"strconv"
	"time"

	"orderbot/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}

	return id, nil
}

// queryError is the 400 returned for unparsable query parameters.
func queryError(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid query: "+err.Error())
}

// pageQuery reads page and limit. Bounds are applied by the usecases.
func pageQuery(c echo.Context) (repository.Page, error) {
	var page repository.Page
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("limit", &page.Limit).
		BindError()

	return page, err
}

// optionalBool reads a query flag that may be absent.
func optionalBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// optionalDate reads a YYYY-MM-DD query date. end moves it to the last
// instant of that day.
func optionalDate(c echo.Context, name string, end bool) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, err
	}
	if end {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return &t, nil
}
