package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vradmin/internal/delivery/api/response"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/trend"
	"vradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TrendHandlerParams holds dependencies for TrendHandler, injected by Fx.
type TrendHandlerParams struct {
	fx.In

	TrendUC     usecase.TrendUsecase
	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// TrendHandler serves the trend charts and the dashboard cards
type TrendHandler struct {
	trendUC     usecase.TrendUsecase
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewTrendHandler is the constructor for TrendHandler
func NewTrendHandler(params TrendHandlerParams) *TrendHandler {
	return &TrendHandler{
		trendUC:     params.TrendUC,
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// PurchaseTrend handles GET /trends/purchases
func (h *TrendHandler) PurchaseTrend(c echo.Context) error {
	query, err := trendQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	points, err := h.trendUC.PurchaseTrend(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points)
}

// ActivationTrend handles GET /trends/activations
func (h *TrendHandler) ActivationTrend(c echo.Context) error {
	query, err := trendQuery(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	points, err := h.trendUC.ActivationTrend(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, points)
}

// Summary handles GET /dashboard/summary
func (h *TrendHandler) Summary(c echo.Context) error {
	start, end, err := dateRange(c, "startDate", "endDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.dashboardUC.Summary(c.Request().Context(), start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// trendQuery reads start, end, unit, windowValue, windowUnit and tz. The
// unit defaults to daily and the window unit to the bucket unit.
func trendQuery(c echo.Context) (trend.Query, error) {
	start, end, err := dateRange(c, "start", "end")
	if err != nil {
		return trend.Query{}, err
	}

	unit := trend.Daily
	if raw := c.QueryParam("unit"); raw != "" {
		if unit, err = trend.ParseUnit(raw); err != nil {
			return trend.Query{}, domainerrors.ErrValidationFailed.WithDetails("unit must be daily, weekly or monthly")
		}
	}

	windowValue, err := queryInt(c, "windowValue", 0)
	if err != nil {
		return trend.Query{}, err
	}

	windowUnit := defaultWindowUnit(unit)
	if raw := c.QueryParam("windowUnit"); raw != "" {
		if windowUnit, err = trend.ParseWindowUnit(raw); err != nil {
			return trend.Query{}, domainerrors.ErrValidationFailed.WithDetails("windowUnit must be days, weeks or months")
		}
	}

	loc := time.UTC
	if tz := c.QueryParam("tz"); tz != "" {
		if loc, err = time.LoadLocation(tz); err != nil {
			return trend.Query{}, domainerrors.ErrValidationFailed.WithDetails("unknown time zone")
		}
	}

	query := trend.Query{
		Start:    start,
		End:      end,
		Unit:     unit,
		Window:   trend.Window{Value: windowValue, Unit: windowUnit},
		Location: loc,
	}
	if err := query.Validate(); err != nil {
		if errors.Is(err, trend.ErrInvalidRange) {
			return trend.Query{}, domainerrors.ErrInvalidDateRange
		}

		return trend.Query{}, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return query, nil
}

func defaultWindowUnit(unit trend.Unit) trend.WindowUnit {
	switch unit {
	case trend.Weekly:
		return trend.Weeks
	case trend.Monthly:
		return trend.Months
	default:
		return trend.Days
	}
}
