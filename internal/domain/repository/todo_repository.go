package repository

import (
	"context"
	"errors"
	"time"

	"vradmin/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTodoNotFound is returned when a todo is not found or not visible to the viewer.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the interface for todo database operations.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo *entity.Todo) error

	// FindTodoByID retrieves a todo visible to viewer.
	FindTodoByID(ctx context.Context, id uuid.UUID, viewer string) (*entity.Todo, error)

	// UpdateTodo persists every field of todo.
	UpdateTodo(ctx context.Context, todo *entity.Todo) error

	DeleteTodo(ctx context.Context, id uuid.UUID) error

	// ListTodos returns one page of todos matching filter and the unpaged total.
	ListTodos(ctx context.Context, filter entity.TodoFilter) (*entity.TodoPage, error)

	// Stats counts the todos visible to viewer.
	Stats(ctx context.Context, viewer string, now time.Time) (*entity.TodoStats, error)
}
