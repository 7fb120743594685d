// Package schedule owns the persisted schedule aggregate: the event and
// task sequences live in one JSON document behind one Store, so the
// calendar and task services can never race each other with stale copies
// of the same file.
package schedule

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"schedbot/internal/logging"
)

// Store manages the schedule aggregate with thread-safe operations.
// The whole document is rewritten on every mutation; there are no
// partial writes. Mutations stage a new aggregate, persist it, and only
// then commit it to memory, so a failed write leaves the in-memory
// state matching the file.
type Store struct {
	path string
	data scheduleData
	mu   sync.RWMutex
}

// NewStore creates a store backed by the given file path. The file is
// read immediately; a missing or corrupt file yields an empty aggregate.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() {
	s.data = scheduleData{Events: []Event{}, Tasks: []Task{}}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Debug("schedule", "read %s: %v", s.path, err)
		}
		return
	}

	var data scheduleData
	if err := json.Unmarshal(raw, &data); err != nil {
		logging.Info("schedule", "corrupt store %s, starting empty: %v", s.path, err)
		return
	}

	if data.Events == nil {
		data.Events = []Event{}
	}
	if data.Tasks == nil {
		data.Tasks = []Task{}
	}
	// Older files carry no counters; derive them from the sequences.
	for _, e := range data.Events {
		if e.ID >= data.NextEventID {
			data.NextEventID = e.ID
		}
	}
	for _, t := range data.Tasks {
		if t.ID >= data.NextTaskID {
			data.NextTaskID = t.ID
		}
	}
	s.data = data
}

func (s *Store) save(data scheduleData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write schedule: %w", err)
	}
	return nil
}

// AddEvent assigns the next event ID, appends the event, and persists
// the aggregate. The event's ID field is set on return.
func (s *Store) AddEvent(event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data
	next.NextEventID++
	event.ID = next.NextEventID
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	next.Events = append(append([]Event{}, s.data.Events...), *event)
	if err := s.save(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// Events returns a copy of the event sequence in insertion order.
func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Event, len(s.data.Events))
	copy(result, s.data.Events)
	return result
}

// RemoveEvent removes the event with the given ID. Persists only when
// something was removed; reports whether it was.
func (s *Store) RemoveEvent(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]Event, 0, len(s.data.Events))
	for _, e := range s.data.Events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.data.Events) {
		return false, nil
	}
	next := s.data
	next.Events = kept
	if err := s.save(next); err != nil {
		return false, err
	}
	s.data = next
	return true, nil
}

// AddTask assigns the next task ID, fills field defaults, appends the
// task, and persists the aggregate.
func (s *Store) AddTask(task *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data
	next.NextTaskID++
	task.ID = next.NextTaskID
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
	if task.Status == "" {
		task.Status = StatusPending
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	next.Tasks = append(append([]Task{}, s.data.Tasks...), *task)
	if err := s.save(next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// Tasks returns a copy of the task sequence in insertion order.
func (s *Store) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Task, len(s.data.Tasks))
	copy(result, s.data.Tasks)
	return result
}

// UpdateTaskStatus mutates the matching task's status in place. The new
// status is not validated against the known values. Persists on success;
// reports whether the task was found.
func (s *Store) UpdateTaskStatus(id int, status string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Tasks {
		if s.data.Tasks[i].ID != id {
			continue
		}
		updated := make([]Task, len(s.data.Tasks))
		copy(updated, s.data.Tasks)
		updated[i].Status = status
		next := s.data
		next.Tasks = updated
		if err := s.save(next); err != nil {
			return false, err
		}
		s.data = next
		return true, nil
	}
	return false, nil
}
