package handler

import (
	"net/http"
	"testing"
	"time"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/trend"
	mockusecase "vradmin/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrendQuery(t *testing.T) {
	t.Parallel()

	stockholm, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	tests := []struct {
		name    string
		target  string
		want    trend.Query
		wantErr bool
	}{
		{
			name:   "defaults",
			target: "/trends/purchases?start=2024-03-01&end=2024-03-07",
			want: trend.Query{
				Start:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				End:      time.Date(2024, 3, 7, 23, 59, 59, 999999999, time.UTC),
				Unit:     trend.Daily,
				Window:   trend.Window{Unit: trend.Days},
				Location: time.UTC,
			},
		},
		{
			name:   "weekly with month window",
			target: "/trends/purchases?start=2024-01-01T00:00:00Z&end=2024-03-01T00:00:00Z&unit=weekly&windowValue=1&windowUnit=months&tz=Europe/Stockholm",
			want: trend.Query{
				Start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				End:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Unit:     trend.Weekly,
				Window:   trend.Window{Value: 1, Unit: trend.Months},
				Location: stockholm,
			},
		},
		{name: "missing start", target: "/trends/purchases?end=2024-03-07", wantErr: true},
		{name: "bad unit", target: "/trends/purchases?start=2024-03-01&end=2024-03-07&unit=hourly", wantErr: true},
		{name: "bad window unit", target: "/trends/purchases?start=2024-03-01&end=2024-03-07&windowUnit=years", wantErr: true},
		{name: "bad window value", target: "/trends/purchases?start=2024-03-01&end=2024-03-07&windowValue=x", wantErr: true},
		{name: "bad time zone", target: "/trends/purchases?start=2024-03-01&end=2024-03-07&tz=Mars/Olympus", wantErr: true},
		{name: "window over cap", target: "/trends/purchases?start=2024-03-01&end=2024-03-07&windowValue=20000000", wantErr: true},
		{name: "window over cap after conversion", target: "/trends/purchases?start=2024-03-01&end=2024-03-07&windowValue=13&windowUnit=months", wantErr: true},
		{name: "range over cap", target: "/trends/purchases?start=2000-01-01&end=2024-03-07", wantErr: true},
		{
			name:   "window at cap",
			target: "/trends/purchases?start=2024-03-01&end=2024-03-07&windowValue=365",
			want: trend.Query{
				Start:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				End:      time.Date(2024, 3, 7, 23, 59, 59, 999999999, time.UTC),
				Unit:     trend.Daily,
				Window:   trend.Window{Value: 365, Unit: trend.Days},
				Location: time.UTC,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestContext(http.MethodGet, tt.target, "")
			got, err := trendQuery(c)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Start.Equal(got.Start))
			assert.True(t, tt.want.End.Equal(got.End))
			assert.Equal(t, tt.want.Unit, got.Unit)
			assert.Equal(t, tt.want.Window, got.Window)
			assert.Equal(t, tt.want.Location.String(), got.Location.String())
		})
	}
}

func TestPurchaseAndActivationTrend(t *testing.T) {
	trendUC := mockusecase.NewMockTrendUsecase(t)
	h := NewTrendHandler(TrendHandlerParams{TrendUC: trendUC, Logger: discardLogger()})

	points := []trend.Point{{Bucket: "2024-03-01", Count: 2, MovingAverage: 2}}
	trendUC.EXPECT().PurchaseTrend(mock.Anything, mock.AnythingOfType("trend.Query")).Return(points, nil)
	trendUC.EXPECT().ActivationTrend(mock.Anything, mock.AnythingOfType("trend.Query")).Return([]trend.Point{}, nil)

	for _, call := range []func(c echo.Context) error{h.PurchaseTrend, h.ActivationTrend} {
		c, rec := newTestContext(http.MethodGet, "/trends?start=2024-03-01&end=2024-03-01", "")
		require.NoError(t, call(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestSummary(t *testing.T) {
	dashboardUC := mockusecase.NewMockDashboardUsecase(t)
	h := NewTrendHandler(TrendHandlerParams{DashboardUC: dashboardUC, Logger: discardLogger()})

	dashboardUC.EXPECT().
		Summary(mock.Anything,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.UTC)).
		Return(&entity.DashboardSummary{}, nil)

	c, rec := newTestContext(http.MethodGet, "/dashboard/summary?startDate=2024-01-01&endDate=2024-12-31", "")
	require.NoError(t, h.Summary(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/dashboard/summary?startDate=yesterday&endDate=2024-12-31", "")
	require.NoError(t, h.Summary(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
