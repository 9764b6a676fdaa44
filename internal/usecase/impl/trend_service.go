package impl

import (
	"context"
	"time"

	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/service"
	"vradmin/internal/domain/status"
	"vradmin/internal/domain/trend"
	"vradmin/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// trendService implements the TrendUsecase and DashboardUsecase interfaces.
type trendService struct {
	backend   service.PurchaseBackend
	purchases usecase.PurchaseUsecase
	clock     service.Clock
}

// NewTrendService creates a new trend service instance
func NewTrendService(backend service.PurchaseBackend) usecase.TrendUsecase {
	return &trendService{backend: backend}
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(purchases usecase.PurchaseUsecase, clock service.Clock) usecase.DashboardUsecase {
	return &trendService{purchases: purchases, clock: clock}
}

// PurchaseTrend buckets the purchase dates of the snapshot covering the
// query and its moving-average lead-in.
func (s *trendService) PurchaseTrend(ctx context.Context, query trend.Query) ([]trend.Point, error) {
	return s.aggregate(ctx, query, func(snapshot *entity.PurchaseSnapshot, events []time.Time) []time.Time {
		return append(events, snapshot.PurchaseDate)
	})
}

// ActivationTrend buckets the activation dates of the same snapshot.
func (s *trendService) ActivationTrend(ctx context.Context, query trend.Query) ([]trend.Point, error) {
	return s.aggregate(ctx, query, func(snapshot *entity.PurchaseSnapshot, events []time.Time) []time.Time {
		for _, record := range snapshot.Signals.ActivationRecords {
			if record.ActivationDate != nil {
				events = append(events, *record.ActivationDate)
			}
		}

		return events
	})
}

func (s *trendService) aggregate(
	ctx context.Context,
	query trend.Query,
	collect func(snapshot *entity.PurchaseSnapshot, events []time.Time) []time.Time,
) ([]trend.Point, error) {
	if err := query.Validate(); err != nil {
		return nil, trendQueryError(err)
	}

	snapshots, err := s.backend.GetAllInfoByDateRange(ctx, query.ExtendedStart(), query.End)
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	events := make([]time.Time, 0, len(snapshots))
	for i := range snapshots {
		events = collect(&snapshots[i], events)
	}

	points, err := trend.Aggregate(events, query)
	if err != nil {
		return nil, trendQueryError(err)
	}

	return points, nil
}

func trendQueryError(err error) error {
	if errors.Is(err, trend.ErrInvalidRange) {
		return domainerrors.ErrInvalidDateRange
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// Summary counts the dashboard cards for [start, end]. Recently trained
// accounts are counted over every purchase since session tracking began.
func (s *trendService) Summary(ctx context.Context, start, end time.Time) (*entity.DashboardSummary, error) {
	if start.After(end) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	now := s.clock.Now()

	var (
		batch  []entity.ClassifiedSnapshot
		recent []entity.ClassifiedSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		batch, err = s.purchases.GetStatusesByDateRange(gctx, start, end)

		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.purchases.GetStatusesByDateRange(gctx, status.RecentTrainingSince, now)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return status.Summarize(batch, recent, start, end, now), nil
}
