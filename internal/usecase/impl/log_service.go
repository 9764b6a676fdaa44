package impl

import (
	"context"

	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/repository"
	"vradmin/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultLogPageSize = 50
	maxLogPageSize     = 200
)

type logService struct {
	logRepo repository.LogRepository
}

// NewLogService creates a new log browsing service instance
func NewLogService(logRepo repository.LogRepository) usecase.LogUsecase {
	return &logService{logRepo: logRepo}
}

// Search pages through application logs, newest first.
func (s *logService) Search(ctx context.Context, query entity.LogQuery) (*entity.LogPage, error) {
	if query.From < 0 {
		query.From = 0
	}
	if query.Size <= 0 {
		query.Size = defaultLogPageSize
	}
	query.Size = min(query.Size, maxLogPageSize)

	page, err := s.logRepo.Search(ctx, query)
	if err != nil {
		if errors.Is(err, repository.ErrLogStoreDisabled) {
			return nil, domainerrors.ErrLogStoreUnavailable
		}

		return nil, errors.Wrap(err, "failed to search logs")
	}

	return page, nil
}
