package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/repository"
	"vradmin/internal/domain/service"
	"vradmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTodoLimit = 20
	maxTodoLimit     = 100
)

var errReminderAfterDue = domainerrors.ErrValidationFailed.WithDetails("reminder time cannot be after the due date")

// todoService implements the TodoUsecase interface.
type todoService struct {
	txManager repository.TransactionManager
	todoRepo  repository.TodoRepository
	backend   service.PurchaseBackend
	clock     service.Clock
	logger    *slog.Logger
}

// TodoServiceParams holds dependencies for TodoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TodoRepo  repository.TodoRepository
	Backend   service.PurchaseBackend
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		txManager: params.TxManager,
		todoRepo:  params.TodoRepo,
		backend:   params.Backend,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func mapTodoError(err error, action string) error {
	if errors.Is(err, repository.ErrTodoNotFound) {
		return domainerrors.ErrTodoNotFound
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrapf(err, "failed to %s todo", action)
}

// CreateTodo creates a todo owned by adminID.
func (s *todoService) CreateTodo(ctx context.Context, adminID string, input *usecase.CreateTodoInput) (*entity.Todo, error) {
	now := s.clock.Now()

	todo := &entity.Todo{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Status:       input.Status,
		Priority:     input.Priority,
		DueDate:      input.DueDate,
		ReminderTime: input.ReminderTime,
		CreatedBy:    adminID,
		AssignedTo:   input.AssignedTo,
		Tags:         input.Tags,
		Metadata:     input.Metadata,
		IsPrivate:    input.IsPrivate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if todo.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if todo.ReminderAfterDue() {
		return nil, errReminderAfterDue
	}
	if todo.Status == "" {
		todo.Status = entity.TodoStatusPending
	}
	if todo.Priority == "" {
		todo.Priority = entity.TodoPriorityMedium
	}
	if todo.Tags == nil {
		todo.Tags = []string{}
	}
	if todo.Status == entity.TodoStatusCompleted {
		todo.CompletedAt = &now
	}

	if err := s.todoRepo.CreateTodo(ctx, todo); err != nil {
		return nil, mapTodoError(err, "create")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Todo created",
		slog.String("todo_id", todo.ID.String()),
		slog.String("created_by", adminID),
	)

	return todo, nil
}

// GetTodo returns a todo visible to adminID.
func (s *todoService) GetTodo(ctx context.Context, adminID string, id uuid.UUID) (*entity.Todo, error) {
	todo, err := s.todoRepo.FindTodoByID(ctx, id, adminID)
	if err != nil {
		return nil, mapTodoError(err, "find")
	}

	return todo, nil
}

// UpdateTodo applies a partial update. Completing a todo stamps
// completed_at; reopening it clears the stamp.
func (s *todoService) UpdateTodo(ctx context.Context, adminID string, id uuid.UUID, input *usecase.UpdateTodoInput) (*entity.Todo, error) {
	var updated *entity.Todo

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewTodoRepository()

		todo, err := repo.FindTodoByID(ctx, id, adminID)
		if err != nil {
			return err
		}

		if err := s.applyUpdate(todo, input); err != nil {
			return err
		}

		if err := repo.UpdateTodo(ctx, todo); err != nil {
			return err
		}
		updated = todo

		return nil
	})
	if err != nil {
		return nil, mapTodoError(err, "update")
	}

	return updated, nil
}

func (s *todoService) applyUpdate(todo *entity.Todo, input *usecase.UpdateTodoInput) error {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
		}
		todo.Title = title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.Priority != nil {
		todo.Priority = *input.Priority
	}
	if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}
	if input.ReminderTime != nil {
		todo.ReminderTime = input.ReminderTime
	}
	if input.AssignedTo != nil {
		todo.AssignedTo = *input.AssignedTo
	}
	if input.Tags != nil {
		todo.Tags = input.Tags
	}
	if input.Metadata != nil {
		todo.Metadata = input.Metadata
	}
	if input.IsPrivate != nil {
		todo.IsPrivate = *input.IsPrivate
	}

	if todo.ReminderAfterDue() {
		return errReminderAfterDue
	}

	if input.Status != nil && *input.Status != todo.Status {
		todo.Status = *input.Status
		if todo.Status == entity.TodoStatusCompleted {
			now := s.clock.Now()
			todo.CompletedAt = &now
		} else {
			todo.CompletedAt = nil
		}
	}

	todo.UpdatedAt = s.clock.Now()

	return nil
}

// DeleteTodo removes a todo. Only its creator may delete it.
func (s *todoService) DeleteTodo(ctx context.Context, adminID string, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewTodoRepository()

		todo, err := repo.FindTodoByID(ctx, id, adminID)
		if err != nil {
			return err
		}
		if todo.CreatedBy != adminID {
			return domainerrors.ErrForbidden.WithDetails("only the creator can delete a todo")
		}

		return repo.DeleteTodo(ctx, id)
	})
	if err != nil {
		return mapTodoError(err, "delete")
	}

	return nil
}

// ListTodos returns one page of the todos visible to filter.Viewer.
func (s *todoService) ListTodos(ctx context.Context, filter entity.TodoFilter) (*entity.TodoPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultTodoLimit
	}
	filter.Limit = min(filter.Limit, maxTodoLimit)
	filter.Offset = max(filter.Offset, 0)
	if filter.SortBy == "" {
		filter.SortBy = entity.TodoSortCreatedAt
		filter.SortDesc = true
	}
	filter.Now = s.clock.Now()

	page, err := s.todoRepo.ListTodos(ctx, filter)
	if err != nil {
		return nil, mapTodoError(err, "list")
	}

	return page, nil
}

// Stats counts the todos visible to adminID.
func (s *todoService) Stats(ctx context.Context, adminID string) (*entity.TodoStats, error) {
	stats, err := s.todoRepo.Stats(ctx, adminID, s.clock.Now())
	if err != nil {
		return nil, mapTodoError(err, "count")
	}

	return stats, nil
}

// ListAdminUsers returns the staff todos can be assigned to.
func (s *todoService) ListAdminUsers(ctx context.Context) ([]entity.AdminUser, error) {
	users, err := s.backend.ListAdminUsers(ctx)
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	return users, nil
}
