package tui

import (
	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
)

// tasksRefreshedMsg carries the store snapshot after a refresh attempt. On
// failure tasks is empty because a failed refresh resets the cache.
type tasksRefreshedMsg struct {
	tasks []models.Task
	err   error
}

// mutationDoneMsg reports a completed create/update/delete/duplicate. On
// success tasks is the freshly refreshed snapshot; on failure the prior view
// stays as it was.
type mutationDoneMsg struct {
	op    string
	tasks []models.Task
	err   error
}

// noteSavedMsg is tagged with the editor state it was issued against. A save
// that completes after the editor moved on is discarded wholesale.
type noteSavedMsg struct {
	id    uuid.UUID
	gen   int
	tasks []models.Task
	err   error
}

// formDoneMsg reports a form submission. On failure the modal stays open with
// the user's input intact.
type formDoneMsg struct {
	editing bool
	tasks   []models.Task
	err     error
}

type formFocus int

const (
	focusStatusTabs formFocus = iota
	focusEntity
	focusTime
	focusType
	focusContact
	focusNote
	focusSave
	focusCancel
)
