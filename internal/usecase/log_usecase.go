package usecase

import (
	"context"

	"vradmin/internal/domain/entity"
)

// LogUsecase defines the application log browser
type LogUsecase interface {
	Search(ctx context.Context, query entity.LogQuery) (*entity.LogPage, error)
}
