package calendar

import (
	"fmt"
	"os"

	ics "github.com/arran4/golang-ical"
)

// ExportICS serializes all events to an iCalendar file at path, so the
// schedule can be imported into an external calendar client.
func (s *Service) ExportICS(path string) (string, error) {
	events := s.store.Events()
	if len(events) == 0 {
		return "", fmt.Errorf("no events to export")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	for _, e := range events {
		ev := cal.AddEvent(fmt.Sprintf("event-%d@schedbot", e.ID))
		ev.SetCreatedTime(e.CreatedAt)
		ev.SetDtStampTime(e.CreatedAt)
		ev.SetStartAt(e.StartTime)
		ev.SetEndAt(e.EndTime)
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
	}

	if err := os.WriteFile(path, []byte(cal.Serialize()), 0644); err != nil {
		return "", fmt.Errorf("failed to write calendar file: %w", err)
	}
	return fmt.Sprintf("Exported %d events to %s", len(events), path), nil
}
