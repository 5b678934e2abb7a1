package store

import (
	"strings"

	"todolite/internal/model"
)

// Store holds the ordered collection of task records for the lifetime of the
// process. All mutations run on the single Bubble Tea update goroutine, so
// there is no locking discipline to maintain.
type Store struct {
	ordering model.Ordering
	tasks    []model.Task
}

func New(ordering model.Ordering) *Store {
	if !ordering.IsValid() {
		ordering = model.OrderInsertion
	}
	return &Store{ordering: ordering}
}

func (s *Store) Ordering() model.Ordering { return s.ordering }

// SetOrdering switches the display-order variant. Canonical insertion order
// is untouched; only what List derives changes.
func (s *Store) SetOrdering(ordering model.Ordering) {
	if ordering.IsValid() {
		s.ordering = ordering
	}
}

// Add appends a new record with a fresh identifier and Completed=false.
// Empty or whitespace-only titles are rejected and leave the store unchanged.
func (s *Store) Add(title, note string) (model.Task, bool) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, false
	}
	task := model.NewTask(title, note)
	s.tasks = append(s.tasks, task)
	return task, true
}

// Update replaces title and note on the matching record. Absent ids and
// empty titles are silent no-ops.
func (s *Store) Update(id, title, note string) bool {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return false
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Title = trimmed
			s.tasks[i].Note = note
			return true
		}
	}
	return false
}

// Toggle flips the completion flag on the matching record; no-op if absent.
func (s *Store) Toggle(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return true
		}
	}
	return false
}

// Remove deletes the matching record; no-op if absent. Identifiers are never
// reused after removal.
func (s *Store) Remove(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Get(id string) (model.Task, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

// List derives the current display order as a fresh snapshot on every call.
// Under OrderActiveFirst the result is a stable partition: every incomplete
// record before every completed one, insertion order preserved within each
// partition.
func (s *Store) List() []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	if s.ordering == model.OrderActiveFirst {
		for _, task := range s.tasks {
			if !task.Completed {
				out = append(out, task)
			}
		}
		for _, task := range s.tasks {
			if task.Completed {
				out = append(out, task)
			}
		}
		return out
	}
	return append(out, s.tasks...)
}

func (s *Store) Len() int { return len(s.tasks) }
