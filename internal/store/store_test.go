package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/api"
	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
)

type fakeLister struct {
	tasks []models.Task
	err   error
	calls int
}

func (f *fakeLister) ListTasks() ([]models.Task, error) {
	f.calls++
	return f.tasks, f.err
}

func TestRefresh_ReplacesCacheWholesale(t *testing.T) {
	first := []models.Task{{ID: uuid.New(), EntityName: "Acme"}}
	lister := &fakeLister{tasks: first}
	s := New(lister)

	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(s.Tasks()) != 1 || s.Tasks()[0].EntityName != "Acme" {
		t.Fatalf("cache = %+v", s.Tasks())
	}

	second := []models.Task{{ID: uuid.New(), EntityName: "Globex"}, {ID: uuid.New(), EntityName: "Initech"}}
	lister.tasks = second
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(s.Tasks()) != 2 {
		t.Fatalf("expected wholesale replacement, cache = %+v", s.Tasks())
	}
}

func TestRefresh_FailureResetsCacheAndReports(t *testing.T) {
	lister := &fakeLister{tasks: []models.Task{{ID: uuid.New(), EntityName: "Acme"}}}
	s := New(lister)
	var reported error
	s.Reporter = func(err error) { reported = err }

	if err := s.Refresh(); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}

	wantErr := api.ErrMalformed
	lister.tasks, lister.err = nil, wantErr
	if err := s.Refresh(); !errors.Is(err, wantErr) {
		t.Fatalf("Refresh err = %v, want %v", err, wantErr)
	}
	if len(s.Tasks()) != 0 {
		t.Errorf("cache not reset to empty after failed refresh: %+v", s.Tasks())
	}
	if !errors.Is(reported, wantErr) {
		t.Errorf("failure not reported: %v", reported)
	}
}

func TestFind_PrefixResolution(t *testing.T) {
	a := models.Task{ID: uuid.MustParse("11111111-aaaa-4aaa-8aaa-aaaaaaaaaaaa"), EntityName: "Acme"}
	b := models.Task{ID: uuid.MustParse("11112222-bbbb-4bbb-8bbb-bbbbbbbbbbbb"), EntityName: "Globex"}
	s := New(&fakeLister{tasks: []models.Task{a, b}})
	if err := s.Refresh(); err != nil {
		t.Fatal(err)
	}

	if got := s.Find("11111111"); got == nil || got.EntityName != "Acme" {
		t.Errorf("Find(unique prefix) = %+v", got)
	}
	if got := s.Find("1111"); got != nil {
		t.Errorf("Find(ambiguous prefix) = %+v, want nil", got)
	}
	if got := s.Find("ffff"); got != nil {
		t.Errorf("Find(missing prefix) = %+v, want nil", got)
	}
}
