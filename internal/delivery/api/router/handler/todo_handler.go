package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"vradmin/internal/delivery/api/middleware"
	"vradmin/internal/delivery/api/response"
	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TodoHandlerParams holds dependencies for TodoHandler, injected by Fx.
type TodoHandlerParams struct {
	fx.In

	TodoUC usecase.TodoUsecase
	Logger *slog.Logger
}

// TodoHandler holds dependencies for todo-related handlers
type TodoHandler struct {
	todoUC usecase.TodoUsecase
	logger *slog.Logger
}

// NewTodoHandler is the constructor for TodoHandler
func NewTodoHandler(params TodoHandlerParams) *TodoHandler {
	return &TodoHandler{
		todoUC: params.TodoUC,
		logger: params.Logger,
	}
}

// listTodosQuery holds the enumerated query parameters of GET /todos.
type listTodosQuery struct {
	Status    []string `json:"status" validate:"dive,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	Priority  []string `json:"priority" validate:"dive,oneof=LOW MEDIUM HIGH URGENT"`
	SortBy    string   `json:"sort_by" validate:"omitempty,oneof=created_at due_date priority status title"`
	SortOrder string   `json:"sort_order" validate:"omitempty,oneof=asc desc"`
	Limit     int      `json:"limit" validate:"min=0,max=100"`
	Offset    int      `json:"offset" validate:"min=0"`
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	var req usecase.CreateTodoInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	todo, err := h.todoUC.CreateTodo(c.Request().Context(), adminID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, todo)
}

// GetTodo handles GET /todos/:id
func (h *TodoHandler) GetTodo(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid todo ID")
	}

	todo, err := h.todoUC.GetTodo(c.Request().Context(), adminID, todoID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, todo)
}

// UpdateTodo handles PATCH /todos/:id
func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid todo ID")
	}

	var req usecase.UpdateTodoInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid todo input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	todo, err := h.todoUC.UpdateTodo(c.Request().Context(), adminID, todoID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/:id
func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	todoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid todo ID")
	}

	if err := h.todoUC.DeleteTodo(c.Request().Context(), adminID, todoID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Todo deleted successfully"})
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	filter, err := todoFilter(c, adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.todoUC.ListTodos(c.Request().Context(), *filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// Stats handles GET /todos/stats
func (h *TodoHandler) Stats(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid admin ID in token")
	}

	stats, err := h.todoUC.Stats(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// ListAdminUsers handles GET /admin-users
func (h *TodoHandler) ListAdminUsers(c echo.Context) error {
	users, err := h.todoUC.ListAdminUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// todoFilter builds the listing filter from the query string.
func todoFilter(c echo.Context, adminID string) (*entity.TodoFilter, error) {
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return nil, err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return nil, err
	}

	query := listTodosQuery{
		Status:    upper(queryList(c, "status")),
		Priority:  upper(queryList(c, "priority")),
		SortBy:    strings.ToLower(c.QueryParam("sort_by")),
		SortOrder: strings.ToLower(c.QueryParam("sort_order")),
		Limit:     limit,
		Offset:    offset,
	}
	if err := c.Validate(&query); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	dueAfter, err := queryDate(c, "due_after")
	if err != nil {
		return nil, err
	}
	dueBefore, err := queryDate(c, "due_before")
	if err != nil {
		return nil, err
	}
	overdueOnly, err := queryBool(c, "overdue_only")
	if err != nil {
		return nil, err
	}

	filter := &entity.TodoFilter{
		Viewer:      adminID,
		CreatedBy:   c.QueryParam("created_by"),
		AssignedTo:  c.QueryParam("assigned_to"),
		DueAfter:    dueAfter,
		DueBefore:   dueBefore,
		Tags:        queryList(c, "tags"),
		Search:      strings.TrimSpace(c.QueryParam("search")),
		OverdueOnly: overdueOnly,
		SortBy:      entity.TodoSortField(query.SortBy),
		SortDesc:    query.SortOrder != "asc",
		Limit:       query.Limit,
		Offset:      query.Offset,
	}
	for _, s := range query.Status {
		filter.Status = append(filter.Status, entity.TodoStatus(s))
	}
	for _, p := range query.Priority {
		filter.Priority = append(filter.Priority, entity.TodoPriority(p))
	}

	return filter, nil
}

func upper(values []string) []string {
	for i := range values {
		values[i] = strings.ToUpper(values[i])
	}

	return values
}
