// Package tui is the full-screen interactive surface over the task collection.
// All state lives in a single model updated on the bubbletea loop; API calls
// run as commands and report back through typed messages, so slow or failed
// calls never block or corrupt the view.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/api"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/mutate"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/store"
)

// Run starts the interactive UI and blocks until the user quits.
func Run() error {
	m := newAppModel(api.NewClient())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func refreshCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		err := st.Refresh()
		return tasksRefreshedMsg{tasks: st.Tasks(), err: err}
	}
}

func mutationCmd(st *store.Store, op string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		err := fn()
		return mutationDoneMsg{op: op, tasks: st.Tasks(), err: err}
	}
}

func saveNoteCmd(orch *mutate.Orchestrator, st *store.Store, id uuid.UUID, gen int, note string) tea.Cmd {
	return func() tea.Msg {
		err := orch.Update(id, map[string]interface{}{"note": note})
		return noteSavedMsg{id: id, gen: gen, tasks: st.Tasks(), err: err}
	}
}

func submitFormCmd(orch *mutate.Orchestrator, st *store.Store, f *taskForm) tea.Cmd {
	editing := f.editing
	id := f.taskID
	draft := f.draft()
	return func() tea.Msg {
		var err error
		if editing {
			err = orch.Update(id, map[string]interface{}{
				"entity_name":    draft.EntityName,
				"task_type":      draft.TaskType,
				"time":           draft.Time,
				"contact_person": draft.ContactPerson,
				"note":           draft.Note,
				"status":         draft.Status,
			})
		} else {
			err = orch.Create(draft)
		}
		return formDoneMsg{editing: editing, tasks: st.Tasks(), err: err}
	}
}

func statusFlip(t models.Task) models.Status {
	if t.Status == models.StatusClosed {
		return models.StatusOpen
	}
	return models.StatusClosed
}
