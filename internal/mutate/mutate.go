// Package mutate sequences user actions through the API and keeps the local
// cache consistent: each operation issues its API call and, only on success,
// triggers a full store refresh. A failed call leaves the cache untouched.
package mutate

import (
	"time"

	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/api"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/store"
)

const dateLayout = "2006-01-02"

// Today returns the current calendar date in wire format.
func Today() string {
	return time.Now().Format(dateLayout)
}

type Orchestrator struct {
	Client *api.Client
	Store  *store.Store

	// Reporter receives every failed operation. Nil means failures are only
	// visible through the returned error.
	Reporter func(error)
}

func New(client *api.Client, st *store.Store) *Orchestrator {
	return &Orchestrator{Client: client, Store: st}
}

// Create validates and submits a draft, then refreshes the cache. Status
// defaults to Open and the date is stamped at submission time.
func (o *Orchestrator) Create(draft models.Draft) error {
	if draft.Status == "" {
		draft.Status = models.StatusOpen
	}
	draft.Date = Today()

	if err := draft.Validate(); err != nil {
		o.report(err)
		return err
	}

	if _, err := o.Client.CreateTask(draft); err != nil {
		o.report(err)
		return err
	}
	return o.Store.Refresh()
}

// Update merges only the given fields into the task, then refreshes.
// Unrelated fields are never re-sent.
func (o *Orchestrator) Update(id uuid.UUID, fields map[string]interface{}) error {
	if err := o.Client.UpdateTask(id, fields); err != nil {
		o.report(err)
		return err
	}
	return o.Store.Refresh()
}

// Delete removes the task, then refreshes.
func (o *Orchestrator) Delete(id uuid.UUID) error {
	if err := o.Client.DeleteTask(id); err != nil {
		o.report(err)
		return err
	}
	return o.Store.Refresh()
}

// Duplicate submits a copy of src through the same path as Create.
func (o *Orchestrator) Duplicate(src models.Task) error {
	return o.Create(DuplicateDraft(src, time.Now()))
}

// DuplicateDraft builds the draft for a copy of src: same type, time, contact
// person, note and due date, entity name suffixed with " (Copy)", status
// forced back to Open, and the date set to now regardless of the source's.
func DuplicateDraft(src models.Task, now time.Time) models.Draft {
	priority := src.Priority
	if priority == "" {
		priority = "Medium"
	}
	return models.Draft{
		EntityName:    src.EntityName + " (Copy)",
		TaskType:      src.TaskType,
		Time:          src.Time,
		ContactPerson: src.ContactPerson,
		Note:          src.Note,
		Status:        models.StatusOpen,
		Date:          now.Format(dateLayout),
		Priority:      priority,
		DueDate:       src.DueDate,
	}
}

func (o *Orchestrator) report(err error) {
	if o.Reporter != nil {
		o.Reporter(err)
	}
}
