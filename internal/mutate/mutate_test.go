package mutate

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/api"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/store"
)

// fakeServer is an in-memory /tasks backend for exercising the full
// orchestrate-then-refresh path.
type fakeServer struct {
	mu    sync.Mutex
	tasks []models.Task
	fail  bool // force 500 on mutations
}

func (f *fakeServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.Method == "GET":
			json.NewEncoder(w).Encode(f.tasks)
		case f.fail:
			w.WriteHeader(http.StatusInternalServerError)
		case r.Method == "POST":
			var draft models.Draft
			json.NewDecoder(r.Body).Decode(&draft)
			task := models.Task{
				ID:            uuid.New(),
				EntityName:    draft.EntityName,
				TaskType:      draft.TaskType,
				Time:          draft.Time,
				ContactPerson: draft.ContactPerson,
				Note:          draft.Note,
				Status:        draft.Status,
				Date:          draft.Date,
				Priority:      draft.Priority,
				DueDate:       draft.DueDate,
			}
			f.tasks = append(f.tasks, task)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(task)
		case r.Method == "PUT":
			var fields map[string]string
			json.NewDecoder(r.Body).Decode(&fields)
			id := r.URL.Path[len("/tasks/"):]
			for i := range f.tasks {
				if f.tasks[i].ID.String() != id {
					continue
				}
				if v, ok := fields["note"]; ok {
					f.tasks[i].Note = v
				}
				if v, ok := fields["status"]; ok {
					f.tasks[i].Status = models.Status(v)
				}
				if v, ok := fields["entity_name"]; ok {
					f.tasks[i].EntityName = v
				}
				json.NewEncoder(w).Encode(f.tasks[i])
				return
			}
			w.WriteHeader(http.StatusNotFound)
		case r.Method == "DELETE":
			id := r.URL.Path[len("/tasks/"):]
			for i := range f.tasks {
				if f.tasks[i].ID.String() == id {
					f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newOrchestrator(t *testing.T, f *fakeServer) (*Orchestrator, *store.Store) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	client := &api.Client{BaseURL: srv.URL, HTTPClient: srv.Client()}
	st := store.New(client)
	return New(client, st), st
}

func seedTask(entity string) models.Task {
	return models.Task{
		ID:            uuid.New(),
		EntityName:    entity,
		TaskType:      models.TaskTypeCall,
		Time:          "09:00",
		ContactPerson: "Priya",
		Note:          "x",
		Status:        models.StatusClosed,
		Date:          "2026-01-15",
	}
}

func TestCreate_RefreshesStoreOnSuccess(t *testing.T) {
	f := &fakeServer{}
	o, st := newOrchestrator(t, f)

	draft := models.Draft{EntityName: "Acme", TaskType: models.TaskTypeCall, Time: "10:00", ContactPerson: "Priya"}
	if err := o.Create(draft); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tasks := st.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("store has %d tasks after create, want 1", len(tasks))
	}
	if tasks[0].Status != models.StatusOpen {
		t.Errorf("status = %q, want default Open", tasks[0].Status)
	}
	if tasks[0].Date != Today() {
		t.Errorf("date = %q, want submission date %q", tasks[0].Date, Today())
	}
}

func TestCreate_RejectsIncompleteDraft(t *testing.T) {
	f := &fakeServer{}
	o, _ := newOrchestrator(t, f)
	var reported error
	o.Reporter = func(err error) { reported = err }

	err := o.Create(models.Draft{EntityName: "Acme", TaskType: models.TaskTypeCall})
	if err == nil {
		t.Fatal("expected validation error for draft without time/contact")
	}
	if reported == nil {
		t.Error("validation failure not reported")
	}
	if len(f.tasks) != 0 {
		t.Error("invalid draft reached the server")
	}
}

func TestUpdate_IsolationOnlyGivenFieldChanges(t *testing.T) {
	a, b := seedTask("Acme"), seedTask("Globex")
	f := &fakeServer{tasks: []models.Task{a, b}}
	o, st := newOrchestrator(t, f)
	if err := st.Refresh(); err != nil {
		t.Fatal(err)
	}

	if err := o.Update(a.ID, map[string]interface{}{"note": "hi"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	after := st.Tasks()
	wantA := a
	wantA.Note = "hi"
	if !reflect.DeepEqual(after[0], wantA) {
		t.Errorf("updated task = %+v, want only note changed: %+v", after[0], wantA)
	}
	if !reflect.DeepEqual(after[1], b) {
		t.Errorf("unrelated task changed: %+v, want %+v", after[1], b)
	}
}

func TestUpdate_TransportFailureLeavesStoreUntouched(t *testing.T) {
	a := seedTask("Acme")
	f := &fakeServer{tasks: []models.Task{a}}
	o, st := newOrchestrator(t, f)
	if err := st.Refresh(); err != nil {
		t.Fatal(err)
	}
	before := st.Tasks()

	var reported error
	o.Reporter = func(err error) { reported = err }
	f.fail = true

	err := o.Update(a.ID, map[string]interface{}{"note": "hi"})
	if !errors.Is(err, api.ErrTransport) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if !reflect.DeepEqual(st.Tasks(), before) {
		t.Errorf("store changed after failed update: %+v != %+v", st.Tasks(), before)
	}
	if !errors.Is(reported, api.ErrTransport) {
		t.Errorf("failure not reported: %v", reported)
	}
}

func TestDelete_RemovesAndRefreshes(t *testing.T) {
	a, b := seedTask("Acme"), seedTask("Globex")
	f := &fakeServer{tasks: []models.Task{a, b}}
	o, st := newOrchestrator(t, f)

	if err := o.Delete(a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	tasks := st.Tasks()
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Errorf("store after delete = %+v", tasks)
	}
}

func TestDuplicateDraft_Semantics(t *testing.T) {
	src := models.Task{
		ID:            uuid.New(),
		EntityName:    "Acme",
		TaskType:      models.TaskTypeCall,
		Time:          "09:00",
		ContactPerson: "Priya",
		Note:          "x",
		Status:        models.StatusClosed,
		Date:          "2020-01-01",
		DueDate:       "2026-12-01",
	}
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	got := DuplicateDraft(src, now)
	want := models.Draft{
		EntityName:    "Acme (Copy)",
		TaskType:      models.TaskTypeCall,
		Time:          "09:00",
		ContactPerson: "Priya",
		Note:          "x",
		Status:        models.StatusOpen,
		Date:          "2026-08-30",
		Priority:      "Medium",
		DueDate:       "2026-12-01",
	}
	if got != want {
		t.Errorf("DuplicateDraft = %+v, want %+v", got, want)
	}
}

func TestDuplicate_SubmitsThroughCreatePath(t *testing.T) {
	src := seedTask("Acme")
	f := &fakeServer{tasks: []models.Task{src}}
	o, st := newOrchestrator(t, f)

	if err := o.Duplicate(src); err != nil {
		t.Fatalf("Duplicate: %v", err)
	}

	tasks := st.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("store has %d tasks, want 2", len(tasks))
	}
	dup := tasks[1]
	if dup.EntityName != "Acme (Copy)" || dup.Status != models.StatusOpen || dup.Date != Today() {
		t.Errorf("duplicate = %+v", dup)
	}
}
