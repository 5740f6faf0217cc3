// Package store keeps the client-side cache of the remote task collection.
// The cache is only ever replaced wholesale: a refresh either installs a fully
// parsed snapshot or, on any failure, resets the cache to empty. There is no
// partial or optimistic mutation of cached records.
package store

import (
	"sync"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/models"
)

// Lister is the slice of the API client the store needs.
type Lister interface {
	ListTasks() ([]models.Task, error)
}

type Store struct {
	client Lister

	// Reporter receives every refresh failure so the embedding surface can
	// show it. Nil means failures are only visible through the returned error.
	Reporter func(error)

	mu    sync.RWMutex
	tasks []models.Task
}

func New(client Lister) *Store {
	return &Store{client: client}
}

// Refresh replaces the cache with the collection currently on the server.
// On failure the cache is reset to empty rather than left stale; the server
// call is idempotent and cheap to retry.
func (s *Store) Refresh() error {
	tasks, err := s.client.ListTasks()
	if err != nil {
		s.mu.Lock()
		s.tasks = nil
		s.mu.Unlock()
		s.report(err)
		return err
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// Tasks returns the cached collection. Callers must not mutate the returned
// slice; the query engine copies before sorting.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks
}

// Find returns the cached task whose ID string starts with idPrefix, or nil.
// An ambiguous prefix matches nothing.
func (s *Store) Find(idPrefix string) *models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found *models.Task
	for i := range s.tasks {
		if len(s.tasks[i].ID.String()) >= len(idPrefix) && s.tasks[i].ID.String()[:len(idPrefix)] == idPrefix {
			if found != nil {
				return nil
			}
			found = &s.tasks[i]
		}
	}
	if found == nil {
		return nil
	}
	t := *found
	return &t
}

func (s *Store) report(err error) {
	if s.Reporter != nil {
		s.Reporter(err)
	}
}
