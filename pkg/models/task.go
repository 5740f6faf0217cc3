package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TaskType represents the kind of sales activity
type TaskType string

const (
	TaskTypeMeeting   TaskType = "Meeting"
	TaskTypeCall      TaskType = "Call"
	TaskTypeVideoCall TaskType = "Video Call"
)

// Status represents the open/closed state of a task
type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

// Priority represents the priority of a task
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Task represents a sales activity in the system
type Task struct {
	ID            uuid.UUID       `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	EntityName    string          `json:"entity_name" gorm:"not null;index:idx_tasks_entity"`
	TaskType      string          `json:"task_type" gorm:"not null;type:varchar(20)"`
	Time          string          `json:"time" gorm:"not null;type:varchar(5)"`
	ContactPerson string          `json:"contact_person" gorm:"not null"`
	Note          string          `json:"note,omitempty"`
	Status        string          `json:"status" gorm:"not null;type:varchar(10);index:idx_tasks_status"`
	Date          datatypes.Date  `json:"date" gorm:"not null"`
	Priority      string          `json:"priority" gorm:"not null;type:varchar(10)"`
	DueDate       *datatypes.Date `json:"due_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

const dateLayout = "2006-01-02"

// ToDict serializes the task into the wire shape clients expect: dates as
// plain YYYY-MM-DD strings, note and due_date omitted when empty.
func (t Task) ToDict() map[string]interface{} {
	d := map[string]interface{}{
		"id":             t.ID,
		"entity_name":    t.EntityName,
		"task_type":      t.TaskType,
		"time":           t.Time,
		"contact_person": t.ContactPerson,
		"status":         t.Status,
		"date":           time.Time(t.Date).Format(dateLayout),
		"priority":       t.Priority,
	}
	if t.Note != "" {
		d["note"] = t.Note
	}
	if t.DueDate != nil {
		d["due_date"] = time.Time(*t.DueDate).Format(dateLayout)
	}
	return d
}
