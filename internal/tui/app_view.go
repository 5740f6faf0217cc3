package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/query"
)

var columnTitles = map[query.Column]string{
	query.ColDate:          "Date",
	query.ColEntityName:    "Entity",
	query.ColTaskType:      "Type",
	query.ColTime:          "Time",
	query.ColContactPerson: "Contact",
	query.ColNote:          "Note",
	query.ColStatus:        "Status",
}

var columnWidths = map[query.Column]int{
	query.ColDate:          10,
	query.ColEntityName:    22,
	query.ColTaskType:      10,
	query.ColTime:          5,
	query.ColContactPerson: 18,
	query.ColNote:          26,
	query.ColStatus:        7,
}

func (m appModel) View() string {
	if m.form != nil {
		return m.viewForm()
	}

	var b strings.Builder

	b.WriteString(styleTitle.Render("Sales Log"))
	if m.refreshing {
		b.WriteString(styleHelp.Render("  refreshing..."))
	}
	b.WriteString("\n\n")

	b.WriteString("Search: " + m.search.View() + "\n\n")

	b.WriteString(m.viewHeader() + "\n")

	if popovers := m.viewPopovers(); popovers != "" {
		b.WriteString(popovers + "\n")
	}

	if len(m.projection) == 0 {
		b.WriteString(styleNote.Render("  no tasks match") + "\n")
	}
	for i, t := range m.projection {
		b.WriteString(m.viewRow(t, i == m.cursor) + "\n")
	}

	if m.menuFor != uuid.Nil {
		b.WriteString("\n" + m.viewMenu())
	}
	if m.noteEditID != uuid.Nil {
		b.WriteString("\n" + m.viewNoteEditor())
	}

	b.WriteString("\n" + m.viewFooter())
	return b.String()
}

func (m appModel) viewHeader() string {
	cells := make([]string, 0, len(tableColumns))
	for i, col := range tableColumns {
		title := columnTitles[col]
		if m.sort.Key == col {
			if m.sort.Direction == query.Asc {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		if m.filterActive(col) {
			title += " ≡"
		}
		title = pad(title, columnWidths[col]+3)
		if i == m.selCol {
			cells = append(cells, styleHeaderSel.Render(title))
		} else {
			cells = append(cells, styleHeader.Render(title))
		}
	}
	return "  " + strings.Join(cells, " ")
}

func (m appModel) filterActive(col query.Column) bool {
	switch col {
	case query.ColTaskType:
		return m.filters.TaskType != ""
	case query.ColStatus:
		return m.filters.Status != ""
	case query.ColEntityName:
		return m.filters.EntityName != ""
	case query.ColContactPerson:
		return m.filters.ContactPerson != ""
	}
	return false
}

func (m appModel) viewRow(t models.Task, selected bool) string {
	cells := make([]string, 0, len(tableColumns))
	for _, col := range tableColumns {
		val := query.FieldValue(t, col)
		if col == query.ColNote && val == "" && selected {
			cells = append(cells, styleNote.Render(pad("+ add note", columnWidths[col]+3)))
			continue
		}
		if col == query.ColStatus {
			if t.Status == models.StatusOpen {
				val = styleOpenBadge.Render(pad(val, columnWidths[col]+3))
			} else {
				val = styleClosedBadge.Render(pad(val, columnWidths[col]+3))
			}
			cells = append(cells, val)
			continue
		}
		cells = append(cells, pad(val, columnWidths[col]+3))
	}
	line := strings.Join(cells, " ")
	if selected {
		return styleRowSelected.Render("▸ " + line)
	}
	return "  " + line
}

func (m appModel) viewPopovers() string {
	open := m.openPopovers()
	if len(open) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(open))
	for _, col := range open {
		opts := m.popoverOptions(col)
		var lines []string
		lines = append(lines, styleHeader.Render(columnTitles[col]))
		for i, opt := range opts {
			marker := "  "
			if i == m.popoverIdx[col] {
				marker = "> "
			}
			lines = append(lines, marker+opt)
		}
		style := stylePopover
		if col == m.popoverFocus {
			style = stylePopoverFocused
		}
		boxes = append(boxes, style.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m appModel) viewMenu() string {
	t := m.taskByID(m.menuFor)
	if t == nil {
		return ""
	}
	var lines []string
	lines = append(lines, styleHeader.Render(t.EntityName))
	for i, entry := range menuEntries(*t) {
		marker := "  "
		if i == m.menuIdx {
			marker = "> "
		}
		lines = append(lines, marker+entry)
	}
	return styleMenu.Render(strings.Join(lines, "\n"))
}

func (m appModel) viewNoteEditor() string {
	t := m.taskByID(m.noteEditID)
	label := "Note"
	if t != nil {
		label = "Note for " + t.EntityName
	}
	body := label + "\n" + m.noteInput.View()
	if m.noteSaving {
		body += "\n" + styleHelp.Render("saving...")
	}
	return styleMenu.Render(body)
}

func (m appModel) viewForm() string {
	f := m.form

	openTab := styleTabInactive.Render("Open")
	closedTab := styleTabInactive.Render("Closed")
	if f.status == models.StatusOpen {
		openTab = styleTabActive.Render("Open")
	} else {
		closedTab = styleTabActive.Render("Closed")
	}
	tabs := openTab + " " + closedTab
	if f.focus == focusStatusTabs {
		tabs += styleHelp.Render("  ← →")
	}

	typeLine := string(f.taskType) + " ▾"
	if f.focus == focusType {
		typeLine = styleHeaderSel.Render(typeLine)
	}
	if f.typeOpen {
		var opts []string
		for i, tt := range models.TaskTypes() {
			marker := "  "
			if i == f.typeIdx {
				marker = "> "
			}
			opts = append(opts, marker+string(tt))
		}
		typeLine += "\n" + stylePopoverFocused.Render(strings.Join(opts, "\n"))
	}

	save := "[ Save ]"
	if f.submitting {
		save = "[ Saving... ]"
	}
	if f.focus == focusSave {
		save = styleHeaderSel.Render(save)
	}
	cancel := "[ Cancel ]"
	if f.focus == focusCancel {
		cancel = styleHeaderSel.Render(cancel)
	}

	title := "New Task"
	if f.editing {
		title = "Edit Task"
	}

	body := strings.Join([]string{
		styleTitle.Render(title) + styleHelp.Render("  "+f.date),
		"",
		"Status   " + tabs,
		"Entity   " + f.entity.View(),
		"Time     " + f.timeInput.View(),
		"Type     " + typeLine,
		"Contact  " + f.contact.View(),
		"Note",
		f.note.View(),
		"",
		save + "  " + cancel,
	}, "\n")

	modal := styleModal.Render(body)
	footer := m.viewFooter()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, modal) + "\n" + footer
	}
	return modal + "\n" + footer
}

func (m appModel) viewFooter() string {
	if m.errText != "" {
		return styleError.Render("✗ " + m.errText)
	}
	help := "j/k move · h/l column · s sort · f filter · / search · a add · e edit · n note · m menu · y copy · r refresh · q quit"
	if m.form != nil {
		help = "tab fields · enter select · ctrl+s save · esc close"
	}
	line := styleHelp.Render(help)
	if m.statusText != "" {
		line = styleHelp.Render(m.statusText) + "  " + line
	}
	return line
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
