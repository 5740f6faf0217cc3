package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/api"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/query"
)

func testTasks() []models.Task {
	return []models.Task{
		{
			ID:            uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			EntityName:    "Acme Corp",
			TaskType:      models.TaskTypeCall,
			Time:          "10:00",
			ContactPerson: "Jane Doe",
			Status:        models.StatusOpen,
			Date:          "2026-08-03",
		},
		{
			ID:            uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			EntityName:    "Globex",
			TaskType:      models.TaskTypeMeeting,
			Time:          "14:30",
			ContactPerson: "John Smith",
			Note:          "bring contract",
			Status:        models.StatusClosed,
			Date:          "2026-08-02",
		},
		{
			ID:            uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			EntityName:    "Initech",
			TaskType:      models.TaskTypeVideoCall,
			Time:          "09:15",
			ContactPerson: "Peter Gibbons",
			Status:        models.StatusOpen,
			Date:          "2026-08-01",
		},
	}
}

func newTestModel(tasks []models.Task) appModel {
	m := newAppModel(api.NewClient())
	m.refreshing = false
	m.tasks = tasks
	m.recompute()
	return m
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(appModel)
	}
	return m
}

func colIndex(t *testing.T, col query.Column) int {
	t.Helper()
	for i, c := range tableColumns {
		if c == col {
			return i
		}
	}
	t.Fatalf("column %s not in table", col)
	return -1
}

func TestActionMenuIsExclusive(t *testing.T) {
	m := newTestModel(testTasks())

	m = press(t, m, "m")
	first := m.projection[0].ID
	if m.menuFor != first {
		t.Fatalf("menu should be open for first row, got %v", m.menuFor)
	}

	// Moving to the next row while a menu is open re-opens it there; the
	// previous row's menu is gone.
	m = press(t, m, "j")
	second := m.projection[1].ID
	if m.menuFor != second {
		t.Fatalf("menu should have moved to second row, got %v", m.menuFor)
	}
	if m.menuFor == first {
		t.Fatal("first row's menu is still open")
	}
	if m.menuIdx != 0 {
		t.Fatalf("reopened menu should reset selection, got %d", m.menuIdx)
	}
}

func TestFilterPopoversOpenIndependently(t *testing.T) {
	m := newTestModel(testTasks())

	// Open the status popover, then the task type popover.
	for m.selCol != colIndex(t, query.ColStatus) {
		m = press(t, m, "l")
	}
	m = press(t, m, "f")
	if !m.popoverOpen[query.ColStatus] {
		t.Fatal("status popover should be open")
	}

	// Leave the popover focus and move to another column.
	m = press(t, m, "esc")
	if m.popoverFocus != "" {
		t.Fatalf("no popover should hold focus, got %q", m.popoverFocus)
	}
	if m.popoverOpen[query.ColStatus] {
		t.Fatal("esc should have closed the status popover")
	}

	// Two popovers open at once, each closing on its own.
	for m.selCol != colIndex(t, query.ColTaskType) {
		m = press(t, m, "h")
	}
	m = press(t, m, "f")
	for m.selCol != colIndex(t, query.ColStatus) {
		m = press(t, m, "l")
	}
	m = press(t, m, "f")

	if !m.popoverOpen[query.ColTaskType] || !m.popoverOpen[query.ColStatus] {
		t.Fatal("both popovers should be open")
	}

	// esc with focus on status closes only status.
	if m.popoverFocus != query.ColStatus {
		t.Fatalf("focus should be on the last opened popover, got %q", m.popoverFocus)
	}
	m = press(t, m, "esc")
	if m.popoverOpen[query.ColStatus] {
		t.Fatal("status popover should be closed")
	}
	if !m.popoverOpen[query.ColTaskType] {
		t.Fatal("task type popover should survive the other closing")
	}
	if m.popoverFocus != query.ColTaskType {
		t.Fatalf("focus should fall back to the remaining popover, got %q", m.popoverFocus)
	}
}

func TestPopoverChoiceFiltersAndCloses(t *testing.T) {
	m := newTestModel(testTasks())

	for m.selCol != colIndex(t, query.ColStatus) {
		m = press(t, m, "l")
	}
	m = press(t, m, "f")

	// Options are All, Open, Closed; pick Closed.
	m = press(t, m, "down", "down", "enter")

	if m.popoverOpen[query.ColStatus] {
		t.Fatal("popover should close after a choice")
	}
	if m.filters.Status != string(models.StatusClosed) {
		t.Fatalf("filter not applied, got %q", m.filters.Status)
	}
	if len(m.projection) != 1 || m.projection[0].EntityName != "Globex" {
		t.Fatalf("projection should hold only the closed task, got %d rows", len(m.projection))
	}

	// Re-open and choose All to clear.
	m = press(t, m, "f", "enter")
	if m.filters.Status != "" {
		t.Fatalf("filter should be cleared, got %q", m.filters.Status)
	}
	if len(m.projection) != 3 {
		t.Fatalf("projection should be back to 3 rows, got %d", len(m.projection))
	}
}

func TestSortKeyRepeatsFlipDirection(t *testing.T) {
	m := newTestModel(testTasks())

	for m.selCol != colIndex(t, query.ColEntityName) {
		m = press(t, m, "l")
	}
	m = press(t, m, "s")
	if m.sort.Key != query.ColEntityName || m.sort.Direction != query.Asc {
		t.Fatalf("first sort should be ascending, got %+v", m.sort)
	}
	if m.projection[0].EntityName != "Acme Corp" {
		t.Fatalf("ascending should put Acme Corp first, got %s", m.projection[0].EntityName)
	}

	m = press(t, m, "s")
	if m.sort.Direction != query.Desc {
		t.Fatalf("second sort on same key should flip to descending, got %+v", m.sort)
	}
	if m.projection[0].EntityName != "Initech" {
		t.Fatalf("descending should put Initech first, got %s", m.projection[0].EntityName)
	}
}

func TestNoteEditorDiscardsStaleSave(t *testing.T) {
	m := newTestModel(testTasks())

	m = press(t, m, "n")
	target := m.projection[0].ID
	if m.noteEditID != target {
		t.Fatalf("note editor should target first row, got %v", m.noteEditID)
	}
	gen := m.noteGen

	// User cancels before the in-flight save lands.
	m = press(t, m, "esc")
	if m.noteEditID != uuid.Nil {
		t.Fatal("editor should be closed after esc")
	}

	before := m.tasks
	updated, _ := m.Update(noteSavedMsg{id: target, gen: gen, tasks: nil, err: nil})
	m = updated.(appModel)

	if m.noteEditID != uuid.Nil {
		t.Fatal("stale completion must not reopen the editor")
	}
	if len(m.tasks) != len(before) {
		t.Fatal("stale completion must not touch the task snapshot")
	}
}

func TestNoteEditorSaveFailureKeepsEditorOpen(t *testing.T) {
	m := newTestModel(testTasks())

	m = press(t, m, "n", "enter")
	if !m.noteSaving {
		t.Fatal("enter should start a save")
	}

	updated, _ := m.Update(noteSavedMsg{id: m.noteEditID, gen: m.noteGen, err: errors.New("boom")})
	m = updated.(appModel)

	if m.noteEditID == uuid.Nil {
		t.Fatal("failed save should leave the editor open for retry")
	}
	if m.noteSaving {
		t.Fatal("failed save should clear the in-flight flag")
	}
	if m.errText == "" {
		t.Fatal("failure should surface in the footer")
	}
}

func TestOpeningNoteEditorOnAnotherRowReplacesIt(t *testing.T) {
	m := newTestModel(testTasks())

	m = press(t, m, "n")
	first := m.noteEditID
	firstGen := m.noteGen

	m = press(t, m, "esc", "j", "n")
	if m.noteEditID == first {
		t.Fatal("editor should have moved to the second row")
	}
	if m.noteGen == firstGen {
		t.Fatal("generation must advance when the editor moves")
	}
}

func TestFormKeepsInputOnFailedSubmit(t *testing.T) {
	m := newTestModel(testTasks())

	m = press(t, m, "a")
	if m.form == nil {
		t.Fatal("form should be open")
	}
	m = press(t, m, "B", "i", "g", " ", "C", "o")
	if got := m.form.entity.Value(); got != "Big Co" {
		t.Fatalf("typed entity = %q", got)
	}

	m = press(t, m, "ctrl+s")
	if !m.form.submitting {
		t.Fatal("ctrl+s should mark the form submitting")
	}

	updated, _ := m.Update(formDoneMsg{err: errors.New("boom")})
	m = updated.(appModel)

	if m.form == nil {
		t.Fatal("failed submit must keep the modal open")
	}
	if m.form.submitting {
		t.Fatal("failed submit should allow retrying")
	}
	if got := m.form.entity.Value(); got != "Big Co" {
		t.Fatalf("input should survive the failure, got %q", got)
	}

	updated, _ = m.Update(formDoneMsg{tasks: m.tasks, err: nil})
	m = updated.(appModel)
	if m.form != nil {
		t.Fatal("successful submit should close the modal")
	}
}

func TestFormStatusTabsAndTypeDropdown(t *testing.T) {
	m := newTestModel(testTasks())
	m = press(t, m, "a")

	// Focus starts on the entity field; shift+tab backs up to the tabs.
	m.form.focus = focusStatusTabs
	m = press(t, m, "right")
	if m.form.status != models.StatusClosed {
		t.Fatalf("right should select Closed, got %q", m.form.status)
	}
	m = press(t, m, "left")
	if m.form.status != models.StatusOpen {
		t.Fatalf("left should select Open, got %q", m.form.status)
	}

	m.form.focus = focusType
	m = press(t, m, "enter")
	if !m.form.typeOpen {
		t.Fatal("enter should open the type dropdown")
	}
	m = press(t, m, "up", "enter")
	if m.form.typeOpen {
		t.Fatal("choosing should close the dropdown")
	}
	if m.form.taskType != models.TaskTypeMeeting {
		t.Fatalf("dropdown choice = %q", m.form.taskType)
	}

	// esc inside the dropdown only closes the dropdown.
	m = press(t, m, "enter", "esc")
	if m.form == nil {
		t.Fatal("esc in the dropdown must not close the whole form")
	}
	if m.form.typeOpen {
		t.Fatal("dropdown should be closed")
	}
	m = press(t, m, "esc")
	if m.form != nil {
		t.Fatal("esc outside the dropdown closes the form")
	}
}

func TestSearchNarrowsProjection(t *testing.T) {
	m := newTestModel(testTasks())

	m = press(t, m, "/")
	if !m.searchFocused {
		t.Fatal("slash should focus the search input")
	}
	m = press(t, m, "g", "l", "o")
	if len(m.projection) != 1 || m.projection[0].EntityName != "Globex" {
		t.Fatalf("search should narrow to Globex, got %d rows", len(m.projection))
	}
	m = press(t, m, "enter")
	if m.searchFocused {
		t.Fatal("enter should blur the search input")
	}
}

func TestMutationResultAlwaysMirrorsStoreSnapshot(t *testing.T) {
	// API call failed, store untouched: the view keeps the prior rows.
	m := newTestModel(testTasks())
	prior := m.tasks
	updated, _ := m.Update(mutationDoneMsg{op: "duplicate", tasks: prior, err: errors.New("boom")})
	m = updated.(appModel)
	if len(m.tasks) != len(prior) || len(m.projection) != len(prior) {
		t.Fatal("failed API call must leave the view on the untouched snapshot")
	}
	if m.errText == "" {
		t.Fatal("mutation failure should surface in the footer")
	}

	// API call succeeded but the follow-up refresh failed: the store was
	// reset to empty, and the view must show that, not the stale rows.
	m = newTestModel(testTasks())
	updated, _ = m.Update(mutationDoneMsg{op: "delete", tasks: nil, err: errors.New("refresh: connection refused")})
	m = updated.(appModel)
	if len(m.tasks) != 0 || len(m.projection) != 0 {
		t.Fatal("view must match the emptied store after a failed refresh")
	}
	if m.errText == "" {
		t.Fatal("failure should surface in the footer")
	}
}

func TestRefreshFailureEmptiesView(t *testing.T) {
	m := newTestModel(testTasks())

	updated, _ := m.Update(tasksRefreshedMsg{tasks: nil, err: errors.New("connection refused")})
	m = updated.(appModel)

	if len(m.tasks) != 0 || len(m.projection) != 0 {
		t.Fatal("failed refresh should leave an empty collection")
	}
	if m.errText == "" {
		t.Fatal("failed refresh should surface in the footer")
	}
}
