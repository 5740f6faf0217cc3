package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/api"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/mutate"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/query"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/store"
)

// columns shown in the table, in display order.
var tableColumns = []query.Column{
	query.ColDate,
	query.ColEntityName,
	query.ColTaskType,
	query.ColTime,
	query.ColContactPerson,
	query.ColNote,
	query.ColStatus,
}

// filterableColumns can grow a filter popover.
var filterableColumns = map[query.Column]bool{
	query.ColEntityName:    true,
	query.ColTaskType:      true,
	query.ColContactPerson: true,
	query.ColStatus:        true,
}

type appModel struct {
	store *store.Store
	orch  *mutate.Orchestrator

	// tasks is the last store snapshot; projection is derived from it and
	// recomputed whenever tasks, search, filters or sort change.
	tasks      []models.Task
	projection []models.Task

	width  int
	height int

	search        textinput.Model
	searchFocused bool

	filters query.Filters
	sort    query.Sort

	cursor int
	selCol int

	// Each filterable column has its own popover that opens and closes
	// independently of the others. At most one of the open popovers holds
	// key focus.
	popoverOpen  map[query.Column]bool
	popoverIdx   map[query.Column]int
	popoverFocus query.Column

	// At most one action menu at a time. uuid.Nil means closed.
	menuFor uuid.UUID
	menuIdx int

	// At most one inline note editor at a time. noteGen increments every
	// time the editor opens or closes so stale save completions can be
	// told apart from current ones.
	noteEditID uuid.UUID
	noteInput  textinput.Model
	noteGen    int
	noteSaving bool

	form *taskForm

	refreshing bool
	errText    string
	statusText string
}

func newAppModel(client *api.Client) appModel {
	st := store.New(client)
	orch := mutate.New(client, st)

	search := textinput.New()
	search.Placeholder = "search entity, contact or note"
	search.CharLimit = 120
	search.Width = 40

	note := textinput.New()
	note.Placeholder = "note"
	note.CharLimit = 500
	note.Width = 50

	return appModel{
		store:       st,
		orch:        orch,
		search:      search,
		noteInput:   note,
		sort:        query.DefaultSort(),
		popoverOpen: map[query.Column]bool{},
		popoverIdx:  map[query.Column]int{},
		refreshing:  true,
	}
}

func (m appModel) Init() tea.Cmd {
	return refreshCmd(m.store)
}

// recompute rebuilds the projection and clamps the cursor into range.
func (m *appModel) recompute() {
	m.projection = query.Apply(m.tasks, m.search.Value(), m.filters, m.sort)
	if m.cursor >= len(m.projection) {
		m.cursor = len(m.projection) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *appModel) currentTask() (models.Task, bool) {
	if len(m.projection) == 0 || m.cursor >= len(m.projection) {
		return models.Task{}, false
	}
	return m.projection[m.cursor], true
}

// openPopovers returns the open popovers in display-column order, used for
// focus cycling and rendering.
func (m *appModel) openPopovers() []query.Column {
	var cols []query.Column
	for _, col := range tableColumns {
		if m.popoverOpen[col] {
			cols = append(cols, col)
		}
	}
	return cols
}

// popoverOptions lists the choices for a column's filter popover. The first
// entry always clears the filter. Option lists for free-text columns come
// from the current projection so they track what is visible.
func (m *appModel) popoverOptions(col query.Column) []string {
	switch col {
	case query.ColTaskType:
		opts := []string{"All"}
		for _, t := range models.TaskTypes() {
			opts = append(opts, string(t))
		}
		return opts
	case query.ColStatus:
		return []string{"All", string(models.StatusOpen), string(models.StatusClosed)}
	default:
		return append([]string{"All"}, query.DistinctValues(m.projection, col)...)
	}
}

// applyPopoverChoice sets or clears the filter behind a popover.
func (m *appModel) applyPopoverChoice(col query.Column, choice string) {
	if choice == "All" {
		choice = ""
	}
	switch col {
	case query.ColTaskType:
		m.filters.TaskType = choice
	case query.ColStatus:
		m.filters.Status = choice
	case query.ColEntityName:
		m.filters.EntityName = choice
	case query.ColContactPerson:
		m.filters.ContactPerson = choice
	}
	m.recompute()
}

// closePopover closes one popover, leaving the rest as they were. Focus
// moves to another open popover if any remain.
func (m *appModel) closePopover(col query.Column) {
	delete(m.popoverOpen, col)
	delete(m.popoverIdx, col)
	if m.popoverFocus == col {
		m.popoverFocus = ""
		if open := m.openPopovers(); len(open) > 0 {
			m.popoverFocus = open[0]
		}
	}
}

// openMenu opens the action menu for a row. Opening it for another row
// closes the previous one because a single field holds the open menu.
func (m *appModel) openMenu(id uuid.UUID) {
	m.menuFor = id
	m.menuIdx = 0
}

func (m *appModel) closeMenu() {
	m.menuFor = uuid.Nil
	m.menuIdx = 0
}

// openNoteEditor starts inline note editing for a row, replacing any editor
// already open on another row.
func (m *appModel) openNoteEditor(t models.Task) {
	m.noteEditID = t.ID
	m.noteGen++
	m.noteSaving = false
	m.noteInput.SetValue(t.Note)
	m.noteInput.CursorEnd()
	m.noteInput.Focus()
}

func (m *appModel) closeNoteEditor() {
	m.noteEditID = uuid.Nil
	m.noteGen++
	m.noteSaving = false
	m.noteInput.Blur()
	m.noteInput.SetValue("")
}

// menuEntries depend on the row's status.
func menuEntries(t models.Task) []string {
	flip := "Mark Closed"
	if t.Status == models.StatusClosed {
		flip = "Mark Open"
	}
	return []string{"Edit", "Duplicate", flip, "Delete"}
}
