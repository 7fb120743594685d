// Package calendar renders event operations as human-readable text over
// the shared schedule store.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"schedbot/internal/logging"
	"schedbot/internal/schedule"
	"schedbot/internal/timeparse"
)

const stampLayout = "2006-01-02 15:04"

// Service exposes the calendar operations. All methods return text meant
// for the user; parse failures become prefixed error strings, never
// panics or bare errors.
type Service struct {
	store *schedule.Store
	now   func() time.Time
}

// NewService creates a calendar service over the shared store.
func NewService(store *schedule.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SetClock overrides the time source, for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// AddEvent parses the start (and optional end) time text, stores the
// event, and confirms with the formatted start time. End defaults to one
// hour after start. On parse failure nothing is stored.
func (s *Service) AddEvent(title, startText, endText, description, location string) string {
	now := s.now()

	start, err := timeparse.Parse(startText, now)
	if err != nil {
		return fmt.Sprintf("Error adding event: %v", err)
	}

	end := start.Add(time.Hour)
	if endText != "" {
		end, err = timeparse.Parse(endText, now)
		if err != nil {
			return fmt.Sprintf("Error adding event: %v", err)
		}
	}

	event := &schedule.Event{
		Title:       title,
		StartTime:   start,
		EndTime:     end,
		Description: description,
		Location:    location,
		CreatedAt:   now,
	}
	if err := s.store.AddEvent(event); err != nil {
		return fmt.Sprintf("Error adding event: %v", err)
	}

	logging.Debug("calendar", "added event %d %q", event.ID, title)
	return fmt.Sprintf("Event '%s' scheduled for %s", title, start.Format(stampLayout))
}

// ListEvents renders events one per line, ascending by start time. An
// optional date filter keeps only events starting on that calendar day.
func (s *Service) ListEvents(dateText string) string {
	events := s.store.Events()

	if dateText != "" {
		target, err := timeparse.Parse(dateText, s.now())
		if err != nil {
			return fmt.Sprintf("Error retrieving events: %v", err)
		}
		ty, tm, td := target.Date()
		filtered := events[:0]
		for _, e := range events {
			y, m, d := e.StartTime.Date()
			if y == ty && m == tm && d == td {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	if len(events) == 0 {
		return "No events found."
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})

	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, fmt.Sprintf("%d. %s: %s to %s",
			e.ID, e.Title, e.StartTime.Format(stampLayout), e.EndTime.Format("15:04")))
	}
	return strings.Join(lines, "\n")
}

// RemoveEvent removes the event with the given ID. Absence is an
// expected outcome, reported as plain text.
func (s *Service) RemoveEvent(id int) string {
	removed, err := s.store.RemoveEvent(id)
	if err != nil {
		return fmt.Sprintf("Error removing event: %v", err)
	}
	if !removed {
		return fmt.Sprintf("Event %d not found.", id)
	}
	return fmt.Sprintf("Event %d removed successfully.", id)
}
