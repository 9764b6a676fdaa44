package entity

import (
	"time"

	"github.com/google/uuid"
)

// TodoStatus is the workflow state of a todo.
type TodoStatus string

const (
	TodoStatusPending    TodoStatus = "PENDING"
	TodoStatusInProgress TodoStatus = "IN_PROGRESS"
	TodoStatusCompleted  TodoStatus = "COMPLETED"
	TodoStatusCancelled  TodoStatus = "CANCELLED"
)

// IsOpen reports whether the todo still needs work.
func (s TodoStatus) IsOpen() bool {
	return s == TodoStatusPending || s == TodoStatusInProgress
}

// TodoPriority orders todos by urgency.
type TodoPriority string

const (
	TodoPriorityLow    TodoPriority = "LOW"
	TodoPriorityMedium TodoPriority = "MEDIUM"
	TodoPriorityHigh   TodoPriority = "HIGH"
	TodoPriorityUrgent TodoPriority = "URGENT"
)

// Todo is an operational follow-up item for dashboard staff.
type Todo struct {
	ID           uuid.UUID      `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Status       TodoStatus     `json:"status"`
	Priority     TodoPriority   `json:"priority"`
	DueDate      *time.Time     `json:"due_date,omitempty"`
	ReminderTime *time.Time     `json:"reminder_time,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	CreatedBy    string         `json:"created_by"`
	AssignedTo   string         `json:"assigned_to,omitempty"`
	Tags         []string       `json:"tags"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IsPrivate    bool           `json:"is_private"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// IsOverdue reports whether an open todo is past its due date at now.
func (t *Todo) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.Status.IsOpen() && t.DueDate.Before(now)
}

// ReminderAfterDue reports whether the reminder falls after the end of the
// due date's day, in the due date's own zone.
func (t *Todo) ReminderAfterDue() bool {
	if t.DueDate == nil || t.ReminderTime == nil {
		return false
	}

	y, m, d := t.DueDate.Date()
	endOfDay := time.Date(y, m, d+1, 0, 0, 0, 0, t.DueDate.Location())

	return !t.ReminderTime.Before(endOfDay)
}

// TodoUpdate is a partial update; nil fields are left untouched.
type TodoUpdate struct {
	Title        *string
	Description  *string
	Status       *TodoStatus
	Priority     *TodoPriority
	DueDate      *time.Time
	ReminderTime *time.Time
	AssignedTo   *string
	Tags         []string
	Metadata     map[string]any
	IsPrivate    *bool
}

// TodoSortField is a column todos can be sorted by.
type TodoSortField string

const (
	TodoSortCreatedAt TodoSortField = "created_at"
	TodoSortDueDate   TodoSortField = "due_date"
	TodoSortPriority  TodoSortField = "priority"
	TodoSortStatus    TodoSortField = "status"
	TodoSortTitle     TodoSortField = "title"
)

// TodoFilter selects todos. Viewer is the admin asking; private todos of
// other admins are never returned.
type TodoFilter struct {
	Viewer      string
	Status      []TodoStatus
	Priority    []TodoPriority
	CreatedBy   string
	AssignedTo  string
	DueAfter    *time.Time
	DueBefore   *time.Time
	Tags        []string
	Search      string
	OverdueOnly bool
	Now         time.Time
	SortBy      TodoSortField
	SortDesc    bool
	Limit       int
	Offset      int
}

// TodoPage is one page of todos with the unpaged total.
type TodoPage struct {
	Todos []*Todo `json:"todos"`
	Total int64   `json:"total"`
}

// TodoStats counts the todos visible to one admin.
type TodoStats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Overdue    int64 `json:"overdue"`
}
