// Package query derives the displayed projection of the task cache: a pure
// filter-then-sort over an input slice. It never mutates its input.
package query

import (
	"sort"
	"strings"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
)

// Column identifies a sortable/filterable table column by its wire name.
type Column string

const (
	ColDate          Column = "date"
	ColEntityName    Column = "entity_name"
	ColTaskType      Column = "task_type"
	ColTime          Column = "time"
	ColContactPerson Column = "contact_person"
	ColNote          Column = "note"
	ColStatus        Column = "status"
)

// Columns lists the table columns in display order.
func Columns() []Column {
	return []Column{ColDate, ColEntityName, ColTaskType, ColTime, ColContactPerson, ColNote, ColStatus}
}

// Filters holds the per-column constraints. An empty value means no
// restriction on that column. TaskType and Status match exactly;
// ContactPerson and EntityName are case-insensitive substring matches.
type Filters struct {
	TaskType      string
	Status        string
	ContactPerson string
	EntityName    string
}

// Active reports whether any constraint is set.
func (f Filters) Active() bool {
	return f != Filters{}
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort is the single active sort key and direction. There is no secondary
// key: ties keep their relative input order (the sort is stable), so repeated
// renders of unchanged data do not jitter.
type Sort struct {
	Key       Column
	Direction Direction
}

// DefaultSort is newest-first, matching the initial view.
func DefaultSort() Sort {
	return Sort{Key: ColDate, Direction: Desc}
}

// Apply returns a newly allocated projection of tasks: records matching the
// search term and every active filter, ordered by the sort spec.
func Apply(tasks []models.Task, search string, filters Filters, s Sort) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, search, filters) {
			out = append(out, t)
		}
	}
	SortTasks(out, s)
	return out
}

// Matches reports whether a single task passes the search term and every
// active filter. An absent note never matches a non-empty search term.
func Matches(t models.Task, search string, f Filters) bool {
	if search != "" {
		q := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(t.EntityName), q) &&
			!strings.Contains(strings.ToLower(t.ContactPerson), q) &&
			!(t.Note != "" && strings.Contains(strings.ToLower(t.Note), q)) {
			return false
		}
	}

	if f.TaskType != "" && string(t.TaskType) != f.TaskType {
		return false
	}
	if f.Status != "" && string(t.Status) != f.Status {
		return false
	}
	if f.ContactPerson != "" && !strings.Contains(strings.ToLower(t.ContactPerson), strings.ToLower(f.ContactPerson)) {
		return false
	}
	if f.EntityName != "" && !strings.Contains(strings.ToLower(t.EntityName), strings.ToLower(f.EntityName)) {
		return false
	}
	return true
}

// SortTasks orders tasks in place by the sort spec. Date and time fields are
// ISO strings, so lexicographic order is chronological order for every column.
func SortTasks(tasks []models.Task, s Sort) {
	if s.Key == "" {
		return
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := FieldValue(tasks[i], s.Key), FieldValue(tasks[j], s.Key)
		if s.Direction == Desc {
			return b < a
		}
		return a < b
	})
}

// FieldValue returns the sortable string value of a column.
func FieldValue(t models.Task, col Column) string {
	switch col {
	case ColDate:
		return t.Date
	case ColEntityName:
		return t.EntityName
	case ColTaskType:
		return string(t.TaskType)
	case ColTime:
		return t.Time
	case ColContactPerson:
		return t.ContactPerson
	case ColNote:
		return t.Note
	case ColStatus:
		return string(t.Status)
	}
	return ""
}

// DistinctValues returns the non-empty values of a column in first-seen
// order. Filter popovers derive their option lists from this.
func DistinctValues(tasks []models.Task, col Column) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tasks {
		v := FieldValue(t, col)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
