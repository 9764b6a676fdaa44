package usecase

import (
	"context"
	"time"

	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/trend"
)

// TrendUsecase defines the time-bucketed trend use cases
type TrendUsecase interface {
	// PurchaseTrend buckets purchase dates
	PurchaseTrend(ctx context.Context, query trend.Query) ([]trend.Point, error)

	// ActivationTrend buckets activation dates
	ActivationTrend(ctx context.Context, query trend.Query) ([]trend.Point, error)
}

// DashboardUsecase defines the dashboard card use cases
type DashboardUsecase interface {
	Summary(ctx context.Context, start, end time.Time) (*entity.DashboardSummary, error)
}
