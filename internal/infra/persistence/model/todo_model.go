package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TodoModel is the GORM-specific struct for the 'todos' table.
type TodoModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title        string                      `gorm:"type:varchar(200);not null"`
	Description  string                      `gorm:"type:text"`
	Status       string                      `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Priority     string                      `gorm:"type:varchar(20);not null;default:'MEDIUM'"`
	DueDate      *time.Time                  `gorm:"index"`
	ReminderTime *time.Time
	CompletedAt  *time.Time
	CreatedBy    string                      `gorm:"type:varchar(255);not null;index"`
	AssignedTo   string                      `gorm:"type:varchar(255);index"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Metadata     datatypes.JSONMap           `gorm:"type:jsonb"`
	IsPrivate    bool                        `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}
