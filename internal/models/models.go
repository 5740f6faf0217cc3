package models

import (
	"fmt"

	"github.com/google/uuid"
)

// TaskType is the kind of sales activity a task records.
type TaskType string

const (
	TaskTypeMeeting   TaskType = "Meeting"
	TaskTypeCall      TaskType = "Call"
	TaskTypeVideoCall TaskType = "Video Call"
)

// TaskTypes lists every valid task type, in display order.
func TaskTypes() []TaskType {
	return []TaskType{TaskTypeMeeting, TaskTypeCall, TaskTypeVideoCall}
}

// ValidTaskType reports whether t is one of the known task types.
func ValidTaskType(t TaskType) bool {
	switch t {
	case TaskTypeMeeting, TaskTypeCall, TaskTypeVideoCall:
		return true
	}
	return false
}

// Status is the open/closed state of a task.
type Status string

const (
	StatusOpen   Status = "Open"
	StatusClosed Status = "Closed"
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	return s == StatusOpen || s == StatusClosed
}

// Task represents one sales-log entry as returned by the API.
// Date is YYYY-MM-DD and Time is HH:MM, so lexicographic order on either
// field is chronological order.
type Task struct {
	ID            uuid.UUID `json:"id"`
	EntityName    string    `json:"entity_name"`
	TaskType      TaskType  `json:"task_type"`
	Time          string    `json:"time"`
	ContactPerson string    `json:"contact_person"`
	Note          string    `json:"note,omitempty"`
	Status        Status    `json:"status"`
	Date          string    `json:"date"`
	Priority      string    `json:"priority,omitempty"`
	DueDate       string    `json:"due_date,omitempty"`
}

// Draft is an unsaved set of task fields, sent on create. The server
// assigns the ID.
type Draft struct {
	EntityName    string   `json:"entity_name"`
	TaskType      TaskType `json:"task_type"`
	Time          string   `json:"time"`
	ContactPerson string   `json:"contact_person"`
	Note          string   `json:"note,omitempty"`
	Status        Status   `json:"status"`
	Date          string   `json:"date"`
	Priority      string   `json:"priority,omitempty"`
	DueDate       string   `json:"due_date,omitempty"`
}

// Validate checks the fields a draft must carry before submission.
func (d Draft) Validate() error {
	if d.EntityName == "" {
		return fmt.Errorf("entity name is required")
	}
	if !ValidTaskType(d.TaskType) {
		return fmt.Errorf("invalid task type %q", d.TaskType)
	}
	if d.Time == "" {
		return fmt.Errorf("time is required")
	}
	if d.ContactPerson == "" {
		return fmt.Errorf("contact person is required")
	}
	if d.Status != "" && !ValidStatus(d.Status) {
		return fmt.Errorf("invalid status %q", d.Status)
	}
	return nil
}

// TaskListResponse is the enveloped shape of GET /tasks. The API may also
// return a bare array; the client normalizes both.
type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
}
