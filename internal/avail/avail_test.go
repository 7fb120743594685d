package avail

import (
	"testing"
	"time"

	"schedbot/internal/schedule"
)

// Monday 2026-09-07.
var monday = time.Date(2026, 9, 7, 8, 0, 0, 0, time.Local)

func slotAt(slots []Slot, hour, minute int) bool {
	for _, s := range slots {
		if s.Start.Hour() == hour && s.Start.Minute() == minute && s.Start.Day() == monday.Day() {
			return true
		}
	}
	return false
}

func TestFindAvailableTime_AvoidsBusyInterval(t *testing.T) {
	events := []schedule.Event{{
		ID:        1,
		Title:     "Busy",
		StartTime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local),
		EndTime:   time.Date(2026, 9, 7, 11, 0, 0, 0, time.Local),
	}}

	slots := FindAvailableTime(events, time.Hour, monday, 7)

	if !slotAt(slots, 9, 0) {
		t.Error("expected the 09:00 slot before the busy interval")
	}
	if !slotAt(slots, 11, 0) {
		t.Error("expected the 11:00 slot after the busy interval")
	}
	if slotAt(slots, 10, 0) || slotAt(slots, 10, 30) || slotAt(slots, 9, 30) {
		t.Errorf("got a slot overlapping the 10:00-11:00 event: %v", slots)
	}
}

func TestFindAvailableTime_CapAndOrder(t *testing.T) {
	slots := FindAvailableTime(nil, time.Hour, monday, 7)

	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Start.Before(slots[i].Start) {
			t.Errorf("slots out of order at %d: %v", i, slots)
		}
	}
}

func TestFindAvailableTime_BusinessHoursBoundary(t *testing.T) {
	slots := FindAvailableTime(nil, 2*time.Hour, monday, 7)

	for _, s := range slots {
		dayEnd := time.Date(s.Start.Year(), s.Start.Month(), s.Start.Day(), 17, 0, 0, 0, time.Local)
		if s.End.After(dayEnd) {
			t.Errorf("slot ends past 17:00: %v", s)
		}
		if s.Start.Hour() < 9 {
			t.Errorf("slot starts before 09:00: %v", s)
		}
	}
}

func TestFindAvailableTime_SkipsWeekends(t *testing.T) {
	// Saturday start: everything lands on the following weekdays.
	saturday := time.Date(2026, 9, 5, 8, 0, 0, 0, time.Local)
	slots := FindAvailableTime(nil, time.Hour, saturday, 7)

	if len(slots) == 0 {
		t.Fatal("expected slots during the following week")
	}
	for _, s := range slots {
		if wd := s.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("slot on a weekend: %v", s)
		}
	}
}

func TestFindAvailableTime_FullyBooked(t *testing.T) {
	// One event swallowing the entire horizon.
	events := []schedule.Event{{
		ID:        1,
		StartTime: monday.AddDate(0, 0, -1),
		EndTime:   monday.AddDate(0, 0, 14),
	}}
	if slots := FindAvailableTime(events, time.Hour, monday, 7); len(slots) != 0 {
		t.Errorf("expected no slots, got %v", slots)
	}
}

func TestFindAvailableTime_CursorStartsAtNineRegardless(t *testing.T) {
	afternoon := time.Date(2026, 9, 7, 14, 0, 0, 0, time.Local)
	slots := FindAvailableTime(nil, time.Hour, afternoon, 7)
	if !slotAt(slots, 9, 0) {
		t.Error("scan should begin at 09:00 of the start day")
	}
}

func TestSuggestMeetingTime_FullyBooked(t *testing.T) {
	events := []schedule.Event{{
		ID:        1,
		StartTime: time.Now().AddDate(0, 0, -1),
		EndTime:   time.Now().AddDate(0, 0, 30),
	}}
	if got := SuggestMeetingTime(events, time.Hour); got != "No available slots found in the next 7 days." {
		t.Errorf("SuggestMeetingTime = %q", got)
	}
}

func TestFormatSlots(t *testing.T) {
	if got := FormatSlots(nil); got != "No available slots found." {
		t.Errorf("FormatSlots(nil) = %q", got)
	}
	slots := FindAvailableTime(nil, time.Hour, monday, 1)
	got := FormatSlots(slots)
	if got == "" || got[:16] != "Available slots:" {
		t.Errorf("FormatSlots = %q", got)
	}
}
