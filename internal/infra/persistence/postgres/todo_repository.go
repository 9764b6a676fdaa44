package postgres

import (
	"context"
	"time"

	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/repository"
	"vradmin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const priorityRank = "CASE priority WHEN 'URGENT' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 ELSE 1 END"

var openTodoStatuses = []string{string(entity.TodoStatusPending), string(entity.TodoStatusInProgress)}

// todoRepository implements the repository.TodoRepository interface.
type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository is the constructor for todoRepository.
func NewTodoRepository(db *gorm.DB) repository.TodoRepository {
	return &todoRepository{
		db: db,
	}
}

// visibleTo restricts a query to public todos and the viewer's private ones.
func visibleTo(viewer string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(is_private = ? OR created_by = ?)", false, viewer)
	}
}

func (repo *todoRepository) CreateTodo(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	if err := repo.db.WithContext(ctx).Create(todoM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid todo")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create todo")
	}

	todo.ID = todoM.ID
	todo.CreatedAt = todoM.CreatedAt
	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

func (repo *todoRepository) FindTodoByID(ctx context.Context, id uuid.UUID, viewer string) (*entity.Todo, error) {
	var todoM model.TodoModel

	if err := repo.db.WithContext(ctx).
		Scopes(visibleTo(viewer)).
		Where("id = ?", id).
		First(&todoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo by ID")
	}

	return toTodoDomain(&todoM), nil
}

func (repo *todoRepository) UpdateTodo(ctx context.Context, todo *entity.Todo) error {
	todoM := fromTodoDomain(todo)

	result := repo.db.WithContext(ctx).
		Model(&model.TodoModel{ID: todo.ID}).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(todoM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid todo")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update todo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	todo.UpdatedAt = todoM.UpdatedAt

	return nil
}

func (repo *todoRepository) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TodoModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete todo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTodoNotFound
	}

	return nil
}

func (repo *todoRepository) ListTodos(ctx context.Context, filter entity.TodoFilter) (*entity.TodoPage, error) {
	query := repo.db.WithContext(ctx).Model(&model.TodoModel{})
	query = todoFilters(filter)(visibleTo(filter.Viewer)(query)).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count todos")
	}

	page := query.Order(todoOrder(filter)).Order("created_at DESC").Offset(filter.Offset)
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}

	var todoModels []*model.TodoModel
	if err := page.Find(&todoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list todos")
	}

	todos := make([]*entity.Todo, 0, len(todoModels))
	for _, todoM := range todoModels {
		todos = append(todos, toTodoDomain(todoM))
	}

	return &entity.TodoPage{Todos: todos, Total: total}, nil
}

func (repo *todoRepository) Stats(ctx context.Context, viewer string, now time.Time) (*entity.TodoStats, error) {
	var stats entity.TodoStats

	if err := repo.db.WithContext(ctx).
		Model(&model.TodoModel{}).
		Scopes(visibleTo(viewer)).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS pending,
			COUNT(*) FILTER (WHERE status = ?) AS in_progress,
			COUNT(*) FILTER (WHERE status = ?) AS completed,
			COUNT(*) FILTER (WHERE due_date < ? AND status IN ?) AS overdue`,
			string(entity.TodoStatusPending), string(entity.TodoStatusInProgress), string(entity.TodoStatusCompleted),
			now, openTodoStatuses,
		).
		Scan(&stats).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute todo stats")
	}

	return &stats, nil
}

func todoFilters(filter entity.TodoFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(filter.Status) > 0 {
			db = db.Where("status IN ?", stringsOf(filter.Status))
		}
		if len(filter.Priority) > 0 {
			db = db.Where("priority IN ?", stringsOf(filter.Priority))
		}
		if filter.CreatedBy != "" {
			db = db.Where("created_by = ?", filter.CreatedBy)
		}
		if filter.AssignedTo != "" {
			db = db.Where("assigned_to = ?", filter.AssignedTo)
		}
		if filter.DueAfter != nil {
			db = db.Where("due_date >= ?", *filter.DueAfter)
		}
		if filter.DueBefore != nil {
			db = db.Where("due_date <= ?", *filter.DueBefore)
		}
		if len(filter.Tags) > 0 {
			db = db.Where("jsonb_exists_any(tags, ARRAY[?])", filter.Tags)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			db = db.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
		}
		if filter.OverdueOnly {
			db = db.Where("due_date < ? AND status IN ?", filter.Now, openTodoStatuses)
		}

		return db
	}
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}

	return out
}

func todoOrder(filter entity.TodoFilter) clause.OrderByColumn {
	column := clause.Column{Name: string(filter.SortBy)}
	switch filter.SortBy {
	case entity.TodoSortPriority:
		column = clause.Column{Name: priorityRank, Raw: true}
	case entity.TodoSortDueDate, entity.TodoSortStatus, entity.TodoSortTitle, entity.TodoSortCreatedAt:
	default:
		column = clause.Column{Name: string(entity.TodoSortCreatedAt)}
	}

	return clause.OrderByColumn{Column: column, Desc: filter.SortDesc}
}

// --- Mapper Functions ---

func toTodoDomain(data *model.TodoModel) *entity.Todo {
	if data == nil {
		return nil
	}

	tags := []string(data.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Todo{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Status:       entity.TodoStatus(data.Status),
		Priority:     entity.TodoPriority(data.Priority),
		DueDate:      data.DueDate,
		ReminderTime: data.ReminderTime,
		CompletedAt:  data.CompletedAt,
		CreatedBy:    data.CreatedBy,
		AssignedTo:   data.AssignedTo,
		Tags:         tags,
		Metadata:     map[string]any(data.Metadata),
		IsPrivate:    data.IsPrivate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromTodoDomain(data *entity.Todo) *model.TodoModel {
	if data == nil {
		return nil
	}

	tags := data.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.TodoModel{
		ID:           data.ID,
		Title:        data.Title,
		Description:  data.Description,
		Status:       string(data.Status),
		Priority:     string(data.Priority),
		DueDate:      data.DueDate,
		ReminderTime: data.ReminderTime,
		CompletedAt:  data.CompletedAt,
		CreatedBy:    data.CreatedBy,
		AssignedTo:   data.AssignedTo,
		Tags:         datatypes.NewJSONSlice(tags),
		Metadata:     datatypes.JSONMap(data.Metadata),
		IsPrivate:    data.IsPrivate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
