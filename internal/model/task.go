package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workflow statuses for a task.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Task represents a single item in a project. A task with IsRecurring set
// and a RecurrencePattern attached is a template: the authoritative
// definition of a repeating series. Tasks generated from a template carry
// OriginalTaskID pointing back to it and are never templates themselves.
type Task struct {
	ID               string `gorm:"primaryKey"`
	ProjectID        string `gorm:"index"`
	Name             string
	Description      string
	Assignee         string
	Priority         string
	Status           string             `gorm:"default:todo"`
	Completed        bool               `gorm:"default:false"`
	DueDate          time.Time          `gorm:"index"`
	IsRecurring      bool               `gorm:"default:false"`
	Recurrence       *RecurrencePattern `gorm:"serializer:json"`
	OccurrenceNumber int                `gorm:"default:1"`
	OriginalTaskID   *string            `gorm:"index"`
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsTemplate reports whether the task defines a recurring series.
func (t *Task) IsTemplate() bool {
	return t.IsRecurring && t.Recurrence != nil
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
