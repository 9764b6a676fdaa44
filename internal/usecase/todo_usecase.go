package usecase

import (
	"context"
	"time"

	"vradmin/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTodoInput carries the fields of a new todo
type CreateTodoInput struct {
	Title        string              `json:"title" validate:"required,max=200"`
	Description  string              `json:"description" validate:"max=5000"`
	Status       entity.TodoStatus   `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority     entity.TodoPriority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate      *time.Time          `json:"due_date"`
	ReminderTime *time.Time          `json:"reminder_time"`
	AssignedTo   string              `json:"assigned_to" validate:"max=255"`
	Tags         []string            `json:"tags" validate:"max=20,dive,required,max=50"`
	Metadata     map[string]any      `json:"metadata"`
	IsPrivate    bool                `json:"is_private"`
}

// UpdateTodoInput is a partial todo update; absent fields are kept
type UpdateTodoInput struct {
	Title        *string              `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string              `json:"description" validate:"omitempty,max=5000"`
	Status       *entity.TodoStatus   `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority     *entity.TodoPriority `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate      *time.Time           `json:"due_date"`
	ReminderTime *time.Time           `json:"reminder_time"`
	AssignedTo   *string              `json:"assigned_to" validate:"omitempty,max=255"`
	Tags         []string             `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
	Metadata     map[string]any       `json:"metadata"`
	IsPrivate    *bool                `json:"is_private"`
}

// TodoUsecase defines the todo management use cases. Every call acts on
// behalf of adminID.
type TodoUsecase interface {
	CreateTodo(ctx context.Context, adminID string, input *CreateTodoInput) (*entity.Todo, error)
	GetTodo(ctx context.Context, adminID string, id uuid.UUID) (*entity.Todo, error)
	UpdateTodo(ctx context.Context, adminID string, id uuid.UUID, input *UpdateTodoInput) (*entity.Todo, error)
	DeleteTodo(ctx context.Context, adminID string, id uuid.UUID) error
	ListTodos(ctx context.Context, filter entity.TodoFilter) (*entity.TodoPage, error)
	Stats(ctx context.Context, adminID string) (*entity.TodoStats, error)

	// ListAdminUsers returns the staff todos can be assigned to
	ListAdminUsers(ctx context.Context) ([]entity.AdminUser, error)
}
