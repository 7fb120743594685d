package timeparse

import (
	"testing"
	"time"
)

// Fixed clock: Tuesday 2026-09-01 08:00 local.
var now = time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3pm", "2026-09-01 3 PM"},
		{"3PM", "2026-09-01 3 PM"},
		{"9am", "2026-09-01 9 AM"},
		{"3pm tomorrow", "3 2026-09-02 PM"},
		{"3 PM today", "3 2026-09-01 PM"},
		{"tomorrow", "2026-09-02"},
		{"today", "2026-09-01"},
		{"2026-12-25 14:30", "2026-12-25 14:30"},
		{"14:30", "2026-09-01 14:30"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in, now); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_TomorrowTakesPrecedence(t *testing.T) {
	// When both words appear only "tomorrow" is substituted; "today"
	// survives literally. Ambiguous input, degraded output.
	got := Normalize("today tomorrow", now)
	if got != "today 2026-09-02" {
		t.Errorf("ambiguous input normalized to %q", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"3pm", time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)},
		{"3 PM today", time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)},
		{"3pm tomorrow", time.Date(2026, 9, 2, 15, 0, 0, 0, time.Local)},
		{"3:30pm tomorrow", time.Date(2026, 9, 2, 15, 30, 0, 0, time.Local)},
		{"9am", time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)},
		{"14:30", time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)},
		{"2026-12-25 14:30", time.Date(2026, 12, 25, 14, 30, 0, 0, time.Local)},
		{"tomorrow", time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in, now)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse_Unparseable(t *testing.T) {
	if _, err := Parse("whenever works best", now); err == nil {
		t.Error("expected error for unparseable input")
	}
}
