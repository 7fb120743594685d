// Package tasks renders task operations as human-readable text over the
// shared schedule store.
package tasks

import (
	"fmt"
	"strings"
	"time"

	"schedbot/internal/logging"
	"schedbot/internal/schedule"
	"schedbot/internal/timeparse"
)

const dueLayout = "2006-01-02"

// Service exposes the task operations.
type Service struct {
	store *schedule.Store
	now   func() time.Time
}

// NewService creates a task service over the shared store.
func NewService(store *schedule.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SetClock overrides the time source, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// AddTask stores a task with an optional due date. The due date text
// goes through the same normalizer as every other time string. Priority
// defaults to medium, status to pending.
func (s *Service) AddTask(title, dueText, priority, description string) string {
	now := s.now()

	var due *time.Time
	if dueText != "" {
		parsed, err := timeparse.Parse(dueText, now)
		if err != nil {
			return fmt.Sprintf("Error adding task: %v", err)
		}
		due = &parsed
	}

	if priority == "" {
		priority = schedule.PriorityMedium
	}

	task := &schedule.Task{
		Title:       title,
		DueDate:     due,
		Priority:    priority,
		Description: description,
		Status:      schedule.StatusPending,
		CreatedAt:   now,
	}
	if err := s.store.AddTask(task); err != nil {
		return fmt.Sprintf("Error adding task: %v", err)
	}

	logging.Debug("tasks", "added task %d %q", task.ID, title)

	dueInfo := ""
	if due != nil {
		dueInfo = fmt.Sprintf(" due %s", due.Format(dueLayout))
	}
	return fmt.Sprintf("Task '%s' added%s with %s priority.", title, dueInfo, priority)
}

// ListTasks renders tasks one per line in insertion order, optionally
// keeping only tasks whose status matches exactly.
func (s *Service) ListTasks(statusFilter string) string {
	all := s.store.Tasks()

	tasks := all
	if statusFilter != "" {
		tasks = all[:0]
		for _, t := range all {
			if t.Status == statusFilter {
				tasks = append(tasks, t)
			}
		}
	}

	if len(tasks) == 0 {
		return "No tasks found."
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		dueInfo := ""
		if t.DueDate != nil {
			dueInfo = fmt.Sprintf(" (Due: %s)", t.DueDate.Format(dueLayout))
		}
		lines = append(lines, fmt.Sprintf("%d. %s [%s] - %s%s",
			t.ID, t.Title, t.Priority, t.Status, dueInfo))
	}
	return strings.Join(lines, "\n")
}

// UpdateStatus sets the matching task's status. The status text is not
// validated; absence is reported as plain text.
func (s *Service) UpdateStatus(id int, status string) string {
	found, err := s.store.UpdateTaskStatus(id, status)
	if err != nil {
		return fmt.Sprintf("Error updating task: %v", err)
	}
	if !found {
		return fmt.Sprintf("Task %d not found.", id)
	}
	return fmt.Sprintf("Task %d status updated to %s.", id, status)
}
