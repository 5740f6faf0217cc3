package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/query"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tasksRefreshedMsg:
		m.refreshing = false
		m.tasks = msg.tasks
		if msg.err != nil {
			m.errText = fmt.Sprintf("refresh failed: %v", msg.err)
		} else {
			m.errText = ""
		}
		m.recompute()
		return m, nil

	case mutationDoneMsg:
		// msg.tasks is the store snapshot either way: untouched when the
		// API call failed, reset when the call succeeded but the follow-up
		// refresh did not. Applying it keeps the view equal to the store.
		m.tasks = msg.tasks
		m.recompute()
		if msg.err != nil {
			m.errText = fmt.Sprintf("%s failed: %v", msg.op, msg.err)
			return m, nil
		}
		m.errText = ""
		m.statusText = msg.op + " done"
		return m, nil

	case noteSavedMsg:
		// Only honored while the editor that issued the save is still the
		// one on screen. Anything else is a stale completion.
		if m.noteEditID != msg.id || m.noteGen != msg.gen {
			return m, nil
		}
		if msg.err != nil {
			m.noteSaving = false
			m.errText = fmt.Sprintf("note save failed: %v", msg.err)
			return m, nil
		}
		m.closeNoteEditor()
		m.errText = ""
		m.tasks = msg.tasks
		m.recompute()
		return m, nil

	case formDoneMsg:
		if m.form == nil {
			return m, nil
		}
		if msg.err != nil {
			m.form.submitting = false
			m.errText = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.form = nil
		m.errText = ""
		m.tasks = msg.tasks
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Modal layers take the keyboard in priority order.
	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.noteEditID != uuid.Nil {
		return m.updateNoteEditor(msg)
	}
	if m.menuFor != uuid.Nil {
		return m.updateMenu(msg)
	}
	if m.searchFocused {
		return m.updateSearch(msg)
	}
	if m.popoverFocus != "" {
		return m.updatePopover(msg)
	}
	return m.updateTable(msg)
}

func (m appModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.projection)-1 {
			m.cursor++
		}
	case "left", "h":
		if m.selCol > 0 {
			m.selCol--
		}
	case "right", "l":
		if m.selCol < len(tableColumns)-1 {
			m.selCol++
		}

	case "s", "enter":
		// Sorting by the column already sorted flips the direction;
		// a new column starts ascending.
		col := tableColumns[m.selCol]
		if m.sort.Key == col {
			if m.sort.Direction == query.Asc {
				m.sort.Direction = query.Desc
			} else {
				m.sort.Direction = query.Asc
			}
		} else {
			m.sort = query.Sort{Key: col, Direction: query.Asc}
		}
		m.recompute()

	case "f":
		col := tableColumns[m.selCol]
		if !filterableColumns[col] {
			break
		}
		if m.popoverOpen[col] {
			m.closePopover(col)
		} else {
			m.popoverOpen[col] = true
			m.popoverIdx[col] = 0
			m.popoverFocus = col
		}

	case "tab":
		if open := m.openPopovers(); len(open) > 0 {
			m.popoverFocus = open[0]
		}

	case "/":
		m.searchFocused = true
		m.search.Focus()
		return m, nil

	case "a":
		m.form = newTaskForm()
		return m, m.form.focusCmd()

	case "e":
		if t, ok := m.currentTask(); ok {
			m.form = editTaskForm(t)
			return m, m.form.focusCmd()
		}

	case "n":
		if t, ok := m.currentTask(); ok {
			m.openNoteEditor(t)
		}

	case "m":
		if t, ok := m.currentTask(); ok {
			m.openMenu(t.ID)
		}

	case "y":
		if t, ok := m.currentTask(); ok {
			line := strings.Join([]string{t.Date, t.EntityName, string(t.TaskType), t.Time, t.ContactPerson, t.Note, string(t.Status)}, "\t")
			if err := clipboard.WriteAll(line); err != nil {
				m.errText = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.statusText = "row copied"
			}
		}

	case "r":
		m.refreshing = true
		return m, refreshCmd(m.store)
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searchFocused = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.recompute()
	return m, cmd
}

func (m appModel) updatePopover(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	col := m.popoverFocus
	opts := m.popoverOptions(col)

	switch msg.String() {
	case "up", "k":
		if m.popoverIdx[col] > 0 {
			m.popoverIdx[col]--
		}
	case "down", "j":
		if m.popoverIdx[col] < len(opts)-1 {
			m.popoverIdx[col]++
		}
	case "enter":
		if len(opts) > 0 {
			m.applyPopoverChoice(col, opts[m.popoverIdx[col]])
		}
		m.closePopover(col)
	case "esc":
		// Closes only this popover; the rest stay open.
		m.closePopover(col)

	// Column navigation and popover toggling stay live so more popovers
	// can be opened while this one is up.
	case "left", "h", "right", "l", "f":
		return m.updateTable(msg)
	case "tab":
		open := m.openPopovers()
		for i, c := range open {
			if c == col {
				m.popoverFocus = open[(i+1)%len(open)]
				break
			}
		}
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.taskByID(m.menuFor)
	if t == nil {
		m.closeMenu()
		return m, nil
	}
	entries := menuEntries(*t)

	switch msg.String() {
	case "up":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down":
		if m.menuIdx < len(entries)-1 {
			m.menuIdx++
		}

	// j/k move the row cursor and the menu follows the row, so there is
	// never more than one menu open.
	case "j":
		if m.cursor < len(m.projection)-1 {
			m.cursor++
			m.openMenu(m.projection[m.cursor].ID)
		}
	case "k":
		if m.cursor > 0 {
			m.cursor--
			m.openMenu(m.projection[m.cursor].ID)
		}

	case "enter":
		entry := entries[m.menuIdx]
		m.closeMenu()
		return m.dispatchMenuAction(*t, entry)

	case "esc", "m":
		m.closeMenu()
	case "q":
		return m, tea.Quit
	}

	return m, nil
}

// dispatchMenuAction runs after the menu has closed.
func (m appModel) dispatchMenuAction(t models.Task, entry string) (tea.Model, tea.Cmd) {
	switch entry {
	case "Edit":
		m.form = editTaskForm(t)
		return m, m.form.focusCmd()
	case "Duplicate":
		return m, mutationCmd(m.store, "duplicate", func() error { return m.orch.Duplicate(t) })
	case "Mark Closed", "Mark Open":
		next := statusFlip(t)
		return m, mutationCmd(m.store, "status change", func() error {
			return m.orch.Update(t.ID, map[string]interface{}{"status": next})
		})
	case "Delete":
		return m, mutationCmd(m.store, "delete", func() error { return m.orch.Delete(t.ID) })
	}
	return m, nil
}

func (m appModel) updateNoteEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Cancel discards the pending text. If a save is already in
		// flight its completion no longer matches the generation and is
		// dropped.
		m.closeNoteEditor()
		return m, nil
	case tea.KeyEnter:
		if m.noteSaving {
			return m, nil
		}
		m.noteSaving = true
		return m, saveNoteCmd(m.orch, m.store, m.noteEditID, m.noteGen, m.noteInput.Value())
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m *appModel) taskByID(id uuid.UUID) *models.Task {
	for i := range m.projection {
		if m.projection[i].ID == id {
			return &m.projection[i]
		}
	}
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return &m.tasks[i]
		}
	}
	return nil
}
