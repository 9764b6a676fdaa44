package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodo_IsOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name   string
		status TodoStatus
		due    *time.Time
		want   bool
	}{
		{name: "no due date", status: TodoStatusPending},
		{name: "pending past due", status: TodoStatusPending, due: &yesterday, want: true},
		{name: "in progress past due", status: TodoStatusInProgress, due: &yesterday, want: true},
		{name: "completed past due", status: TodoStatusCompleted, due: &yesterday},
		{name: "cancelled past due", status: TodoStatusCancelled, due: &yesterday},
		{name: "due later", status: TodoStatusPending, due: &tomorrow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			todo := &Todo{Status: tt.status, DueDate: tt.due}
			assert.Equal(t, tt.want, todo.IsOverdue(now))
		})
	}
}

func TestTodo_ReminderAfterDue(t *testing.T) {
	t.Parallel()

	stockholm, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Skip("time zone data unavailable")
	}

	due := time.Date(2024, 6, 10, 9, 0, 0, 0, stockholm)
	at := func(tm time.Time) *time.Time { return &tm }

	tests := []struct {
		name     string
		due      *time.Time
		reminder *time.Time
		want     bool
	}{
		{name: "no due date", reminder: at(due.AddDate(1, 0, 0))},
		{name: "no reminder", due: &due},
		{name: "before due", due: &due, reminder: at(due.Add(-time.Hour))},
		{name: "last instant of the due day", due: &due, reminder: at(time.Date(2024, 6, 10, 23, 59, 59, 0, stockholm))},
		{name: "next day", due: &due, reminder: at(time.Date(2024, 6, 11, 0, 0, 0, 0, stockholm)), want: true},
		{name: "due day end judged in the due date's zone", due: &due, reminder: at(time.Date(2024, 6, 10, 22, 30, 0, 0, time.UTC)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			todo := &Todo{DueDate: tt.due, ReminderTime: tt.reminder}
			assert.Equal(t, tt.want, todo.ReminderAfterDue())
		})
	}
}
