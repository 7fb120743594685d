// Package avail finds free meeting slots by scanning a bounded horizon
// against existing events. The scan is exhaustive over a 30-minute grid;
// the horizon is small enough that a sweep line would buy nothing.
package avail

import (
	"fmt"
	"time"

	"schedbot/internal/schedule"
)

const (
	// Business hours: slots start at or after 09:00 and must end by 17:00.
	businessStartHour = 9
	businessEndHour   = 17

	step     = 30 * time.Minute
	maxSlots = 10

	// DefaultDaysAhead is the search horizon when none is given.
	DefaultDaysAhead = 7
)

// Slot is a candidate meeting interval. Slots are transient values,
// never persisted.
type Slot struct {
	Start time.Time
	End   time.Time
}

// FindAvailableTime scans [start, start+daysAhead days] in 30-minute
// steps from 09:00 of the start day and collects up to 10 slots of the
// given duration that fall on a weekday, stay within business hours, and
// overlap no existing event.
func FindAvailableTime(events []schedule.Event, duration time.Duration, start time.Time, daysAhead int) []Slot {
	if duration <= 0 {
		duration = time.Hour
	}
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	windowEnd := start.AddDate(0, 0, daysAhead)
	lastDay := time.Date(windowEnd.Year(), windowEnd.Month(), windowEnd.Day(), 0, 0, 0, 0, start.Location())

	cursor := time.Date(start.Year(), start.Month(), start.Day(), businessStartHour, 0, 0, 0, start.Location())

	var slots []Slot
	for !dayOf(cursor).After(lastDay) && len(slots) < maxSlots {
		if isBusinessTime(cursor) {
			end := cursor.Add(duration)
			if withinBusinessDay(cursor, end) && !overlapsAny(cursor, end, events) {
				slots = append(slots, Slot{Start: cursor, End: end})
			}
		}
		cursor = cursor.Add(step)
	}
	return slots
}

// SuggestMeetingTime formats the first available slot's start, or an
// explicit none-found message.
func SuggestMeetingTime(events []schedule.Event, duration time.Duration) string {
	now := time.Now()
	slots := FindAvailableTime(events, duration, now, DefaultDaysAhead)
	if len(slots) == 0 {
		return "No available slots found in the next 7 days."
	}
	return fmt.Sprintf("Next available slot: %s", slots[0].Start.Format("2006-01-02 15:04"))
}

// FormatSlots renders slots one per line for user display.
func FormatSlots(slots []Slot) string {
	if len(slots) == 0 {
		return "No available slots found."
	}
	out := "Available slots:"
	for _, s := range slots {
		out += fmt.Sprintf("\n- %s to %s", s.Start.Format("2006-01-02 15:04"), s.End.Format("15:04"))
	}
	return out
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isBusinessTime(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return t.Hour() >= businessStartHour && t.Hour() < businessEndHour
}

// withinBusinessDay reports whether the slot ends no later than 17:00 of
// its own day.
func withinBusinessDay(start, end time.Time) bool {
	dayEnd := time.Date(start.Year(), start.Month(), start.Day(), businessEndHour, 0, 0, 0, start.Location())
	return !end.After(dayEnd)
}

func overlapsAny(start, end time.Time, events []schedule.Event) bool {
	for _, e := range events {
		if start.Before(e.EndTime) && e.StartTime.Before(end) {
			return true
		}
	}
	return false
}
