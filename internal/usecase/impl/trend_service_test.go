package impl

import (
	"context"
	"testing"
	"time"

	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/status"
	"vradmin/internal/domain/trend"
	mockSvc "vradmin/internal/mocks/service"
	mockUsecase "vradmin/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

func sameInstant(want time.Time) any {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func trendQuery() trend.Query {
	return trend.Query{
		Start:  day("2024-03-01"),
		End:    day("2024-03-03"),
		Unit:   trend.Daily,
		Window: trend.Window{Value: 2, Unit: trend.Days},
	}
}

func TestTrendService_PurchaseTrend(t *testing.T) {
	backend := mockSvc.NewMockPurchaseBackend(t)
	svc := NewTrendService(backend)

	ctx := context.Background()
	backend.EXPECT().
		GetAllInfoByDateRange(ctx, sameInstant(day("2024-02-29")), sameInstant(day("2024-03-03"))).
		Return([]entity.PurchaseSnapshot{
			{PurchaseID: 1, PurchaseDate: day("2024-02-29").Add(9 * time.Hour)},
			{PurchaseID: 2, PurchaseDate: day("2024-03-01").Add(10 * time.Hour)},
			{PurchaseID: 3, PurchaseDate: day("2024-03-01").Add(11 * time.Hour)},
			{PurchaseID: 4, PurchaseDate: day("2024-03-03").Add(12 * time.Hour)},
		}, nil)

	points, err := svc.PurchaseTrend(ctx, trendQuery())
	require.NoError(t, err)
	assert.Equal(t, []trend.Point{
		{Bucket: "2024-03-01", Count: 2, MovingAverage: 1.5},
		{Bucket: "2024-03-02", Count: 0, MovingAverage: 1},
		{Bucket: "2024-03-03", Count: 1, MovingAverage: 0.5},
	}, points)
}

func TestTrendService_ActivationTrend(t *testing.T) {
	backend := mockSvc.NewMockPurchaseBackend(t)
	svc := NewTrendService(backend)

	activated := day("2024-03-02").Add(8 * time.Hour)
	backend.EXPECT().GetAllInfoByDateRange(mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.PurchaseSnapshot{
			{PurchaseID: 1, PurchaseDate: day("2024-03-01"), Signals: entity.SignalBundle{
				ActivationRecords: []entity.ActivationRecord{
					{ID: 1, ActivationDate: &activated},
					{ID: 2},
				},
			}},
		}, nil)

	points, err := svc.ActivationTrend(context.Background(), trendQuery())
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 0, points[0].Count)
	assert.Equal(t, 1, points[1].Count)
	assert.InDelta(t, 0.5, points[1].MovingAverage, 0.001)
}

func TestTrendService_InvalidQueries(t *testing.T) {
	backend := mockSvc.NewMockPurchaseBackend(t)
	svc := NewTrendService(backend)

	reversed := trendQuery()
	reversed.Start, reversed.End = reversed.End, reversed.Start
	_, err := svc.PurchaseTrend(context.Background(), reversed)
	assert.Equal(t, domainerrors.ErrInvalidDateRange, err)

	badUnit := trendQuery()
	badUnit.Unit = "hourly"
	_, err = svc.PurchaseTrend(context.Background(), badUnit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrValidationFailed.Message())

	badWindow := trendQuery()
	badWindow.Window.Unit = "years"
	_, err = svc.ActivationTrend(context.Background(), badWindow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domainerrors.ErrValidationFailed.Message())

	hugeWindow := trendQuery()
	hugeWindow.Window = trend.Window{Value: 20_000_000, Unit: trend.Days}
	_, err = svc.PurchaseTrend(context.Background(), hugeWindow)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	hugeRange := trendQuery()
	hugeRange.Start = hugeRange.End.AddDate(-20, 0, 0)
	_, err = svc.PurchaseTrend(context.Background(), hugeRange)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTrendService_BackendDown(t *testing.T) {
	backend := mockSvc.NewMockPurchaseBackend(t)
	svc := NewTrendService(backend)

	backend.EXPECT().GetAllInfoByDateRange(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("502"))

	_, err := svc.PurchaseTrend(context.Background(), trendQuery())
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestDashboardService_Summary(t *testing.T) {
	purchases := mockUsecase.NewMockPurchaseUsecase(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow)
	svc := NewDashboardService(purchases, clock)

	start := day("2024-05-01")
	end := day("2024-05-31")
	validUntil := testNow.AddDate(1, 0, 0)
	lastSession := testNow.AddDate(0, 0, -3)

	trained := entity.ClassifiedSnapshot{
		PurchaseSnapshot: entity.PurchaseSnapshot{PurchaseID: 1, Signals: entity.SignalBundle{
			ActivationRecords: []entity.ActivationRecord{{User: &entity.ActivationUser{
				ValidUntil:       &validUntil,
				TrainingSessions: []entity.TrainingSession{{SessionNumber: 1, StartTime: &lastSession}},
			}}},
		}},
		Status: &entity.PurchaseStatus{Category: entity.CategoryTrained},
	}
	untrained := entity.ClassifiedSnapshot{
		PurchaseSnapshot: entity.PurchaseSnapshot{PurchaseID: 2, Signals: entity.SignalBundle{
			ActivationRecords: []entity.ActivationRecord{{User: &entity.ActivationUser{}}},
		}},
		Status: &entity.PurchaseStatus{Category: entity.CategoryUnknown},
	}

	purchases.EXPECT().GetStatusesByDateRange(mock.Anything, start, end).
		Return([]entity.ClassifiedSnapshot{trained, untrained}, nil)
	purchases.EXPECT().GetStatusesByDateRange(mock.Anything, status.RecentTrainingSince, testNow).
		Return([]entity.ClassifiedSnapshot{trained}, nil)

	summary, err := svc.Summary(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Purchases)
	assert.Equal(t, 1, summary.Trained)
	assert.Equal(t, 1, summary.ActiveNotTrained)
	assert.Equal(t, 1, summary.ValidAndTrainedLast12Weeks)
	assert.Equal(t, 1, summary.ByCategory[entity.CategoryTrained])
	assert.Equal(t, 0, summary.ByCategory[entity.CategoryInvalid])
}

func TestDashboardService_Summary_UpstreamError(t *testing.T) {
	purchases := mockUsecase.NewMockPurchaseUsecase(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow)
	svc := NewDashboardService(purchases, clock)

	purchases.EXPECT().GetStatusesByDateRange(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUpstreamUnavailable).Maybe()

	_, err := svc.Summary(context.Background(), day("2024-05-01"), day("2024-05-31"))
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}
