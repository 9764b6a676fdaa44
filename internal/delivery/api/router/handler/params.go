package handler

import (
	"strconv"
	"strings"
	"time"

	domainerrors "vradmin/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// dateLayouts are accepted for date query parameters, most specific first.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, time.DateOnly}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// queryDate reads an optional date parameter.
func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	t, ok := parseDate(raw)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a date (YYYY-MM-DD or RFC 3339)")
	}

	return &t, nil
}

// requiredDate reads a mandatory date parameter.
func requiredDate(c echo.Context, name string) (time.Time, error) {
	t, err := queryDate(c, name)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails(name + " is required")
	}

	return *t, nil
}

// endOfDay widens a date-only end bound to the whole day.
func endOfDay(c echo.Context, name string, t time.Time) time.Time {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(c.QueryParam(name))); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond)
	}

	return t
}

// dateRange reads a required [start, end] pair.
func dateRange(c echo.Context, startName, endName string) (start, end time.Time, err error) {
	if start, err = requiredDate(c, startName); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = requiredDate(c, endName); err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, endOfDay(c, endName, end), nil
}

// queryInt reads an optional integer parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return v, nil
}

// queryBool reads an optional boolean parameter.
func queryBool(c echo.Context, name string) (bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.ErrValidationFailed.WithDetails(name + " must be true or false")
	}

	return v, nil
}

// queryList splits a comma separated parameter, also accepting repeated keys.
func queryList(c echo.Context, name string) []string {
	var values []string
	for _, raw := range c.QueryParams()[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}

	return values
}

// purchaseIDParam reads the :id path parameter of purchase routes.
func purchaseIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidPurchaseID
	}

	return id, nil
}
