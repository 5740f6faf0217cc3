package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/mutate"
)

// taskForm is the create/edit modal. It keeps its own focus ring, a status
// tab bar selected directly, and a task-type dropdown that opens and closes
// within the form.
type taskForm struct {
	editing bool
	taskID  uuid.UUID
	date    string

	entity    textinput.Model
	timeInput textinput.Model
	contact   textinput.Model
	note      textarea.Model

	taskType models.TaskType
	typeOpen bool
	typeIdx  int

	status models.Status

	focus      formFocus
	submitting bool
}

func newTaskForm() *taskForm {
	f := blankForm()
	f.date = mutate.Today()
	f.taskType = models.TaskTypeCall
	f.status = models.StatusOpen
	f.focus = focusEntity
	f.entity.Focus()
	return f
}

func editTaskForm(t models.Task) *taskForm {
	f := blankForm()
	f.editing = true
	f.taskID = t.ID
	f.date = t.Date
	f.entity.SetValue(t.EntityName)
	f.timeInput.SetValue(t.Time)
	f.contact.SetValue(t.ContactPerson)
	f.note.SetValue(t.Note)
	f.taskType = t.TaskType
	f.status = t.Status
	f.focus = focusEntity
	f.entity.Focus()
	return f
}

func blankForm() *taskForm {
	entity := textinput.New()
	entity.Placeholder = "entity name"
	entity.CharLimit = 120
	entity.Width = 40

	timeInput := textinput.New()
	timeInput.Placeholder = "HH:MM"
	timeInput.CharLimit = 5
	timeInput.Width = 10

	contact := textinput.New()
	contact.Placeholder = "contact person"
	contact.CharLimit = 120
	contact.Width = 40

	note := textarea.New()
	note.Placeholder = "note (optional)"
	note.SetWidth(44)
	note.SetHeight(3)

	return &taskForm{
		entity:    entity,
		timeInput: timeInput,
		contact:   contact,
		note:      note,
	}
}

func (f *taskForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *taskForm) draft() models.Draft {
	return models.Draft{
		EntityName:    f.entity.Value(),
		TaskType:      f.taskType,
		Time:          f.timeInput.Value(),
		ContactPerson: f.contact.Value(),
		Note:          f.note.Value(),
		Status:        f.status,
		Date:          f.date,
	}
}

var formRing = []formFocus{
	focusStatusTabs,
	focusEntity,
	focusTime,
	focusType,
	focusContact,
	focusNote,
	focusSave,
	focusCancel,
}

func (f *taskForm) cycleFocus(back bool) {
	for i, fc := range formRing {
		if fc != f.focus {
			continue
		}
		if back {
			f.focus = formRing[(i+len(formRing)-1)%len(formRing)]
		} else {
			f.focus = formRing[(i+1)%len(formRing)]
		}
		break
	}
	f.typeOpen = false
	f.syncInputFocus()
}

func (f *taskForm) syncInputFocus() {
	f.entity.Blur()
	f.timeInput.Blur()
	f.contact.Blur()
	f.note.Blur()
	switch f.focus {
	case focusEntity:
		f.entity.Focus()
	case focusTime:
		f.timeInput.Focus()
	case focusContact:
		f.contact.Focus()
	case focusNote:
		f.note.Focus()
	}
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form

	// The dropdown captures keys while open; esc backs out of it without
	// touching the rest of the form.
	if f.typeOpen {
		types := models.TaskTypes()
		switch msg.String() {
		case "up", "k":
			if f.typeIdx > 0 {
				f.typeIdx--
			}
		case "down", "j":
			if f.typeIdx < len(types)-1 {
				f.typeIdx++
			}
		case "enter":
			f.taskType = types[f.typeIdx]
			f.typeOpen = false
		case "esc":
			f.typeOpen = false
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "tab":
		f.cycleFocus(false)
		return m, nil
	case "shift+tab":
		f.cycleFocus(true)
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	}

	switch f.focus {
	case focusStatusTabs:
		// Tabs are a direct choice, not a toggle sequence.
		switch msg.String() {
		case "left", "h":
			f.status = models.StatusOpen
		case "right", "l":
			f.status = models.StatusClosed
		}
		return m, nil

	case focusType:
		if s := msg.String(); s == "enter" || s == " " {
			f.typeOpen = true
			f.typeIdx = indexOfType(f.taskType)
		}
		return m, nil

	case focusSave:
		if msg.String() == "enter" {
			return m.submitForm()
		}
		return m, nil

	case focusCancel:
		if msg.String() == "enter" {
			m.form = nil
		}
		return m, nil

	case focusEntity:
		var cmd tea.Cmd
		f.entity, cmd = f.entity.Update(msg)
		return m, cmd
	case focusTime:
		var cmd tea.Cmd
		f.timeInput, cmd = f.timeInput.Update(msg)
		return m, cmd
	case focusContact:
		var cmd tea.Cmd
		f.contact, cmd = f.contact.Update(msg)
		return m, cmd
	case focusNote:
		var cmd tea.Cmd
		f.note, cmd = f.note.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m appModel) submitForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	m.form.submitting = true
	return m, submitFormCmd(m.orch, m.store, m.form)
}

func indexOfType(t models.TaskType) int {
	for i, tt := range models.TaskTypes() {
		if tt == t {
			return i
		}
	}
	return 0
}
