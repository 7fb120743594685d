// Package timeparse turns casual date/time phrases into time.Time values.
//
// Every date or time string in the system goes through Parse, so the
// normalization rules apply uniformly to event start/end times, date
// filters, and task due dates.
package timeparse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const dateLayout = "2006-01-02"

var (
	yearToken  = regexp.MustCompile(`\b\d{4}\b`)
	isoDate    = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Layouts tried before falling back to the general parser. Ordered from
// most to least specific; all are interpreted in local time.
var layouts = []string{
	"2006-01-02 3:04 PM",
	"2006-01-02 3 PM",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15",
	"2006-01-02",
}

// Normalize rewrites a casual time expression into a form the parser can
// resolve. Relative-day words become concrete dates, trailing am/pm is
// canonicalized ("3pm" -> "3 PM"), and a date prefix is added when the
// string carries no year-like token. When both "today" and "tomorrow"
// appear, tomorrow wins; that is ambiguous input and degraded output is
// acceptable.
func Normalize(s string, now time.Time) string {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.Contains(s, "tomorrow") {
		s = strings.ReplaceAll(s, "tomorrow", now.AddDate(0, 0, 1).Format(dateLayout))
	} else if strings.Contains(s, "today") {
		s = strings.ReplaceAll(s, "today", now.Format(dateLayout))
	}

	if strings.Contains(s, "pm") {
		s = strings.TrimSpace(strings.ReplaceAll(s, "pm", "")) + " PM"
	} else if strings.Contains(s, "am") {
		s = strings.TrimSpace(strings.ReplaceAll(s, "am", "")) + " AM"
	}

	// No year anywhere means no date either; anchor to the current day.
	if !yearToken.MatchString(s) {
		s = now.Format(dateLayout) + " " + s
	}

	return whitespace.ReplaceAllString(s, " ")
}

// Parse normalizes s and resolves it to a local time. Known layouts are
// tried first; if the relative-day substitution left the date in the
// middle of the string ("3 2026-09-01 PM") the date is hoisted to the
// front and the layouts retried. The general dateparse fallback handles
// everything else (month names, slash dates, ISO timestamps).
func Parse(s string, now time.Time) (time.Time, error) {
	norm := Normalize(s, now)

	if t, ok := parseLayouts(norm, now.Location()); ok {
		return t, nil
	}

	if loc := isoDate.FindStringIndex(norm); loc != nil && loc[0] > 0 {
		date := norm[loc[0]:loc[1]]
		rest := strings.TrimSpace(norm[:loc[0]] + norm[loc[1]:])
		reordered := strings.TrimSpace(date + " " + whitespace.ReplaceAllString(rest, " "))
		if t, ok := parseLayouts(reordered, now.Location()); ok {
			return t, nil
		}
		norm = reordered
	}

	t, err := dateparse.ParseLocal(norm)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse time %q: %w", s, err)
	}
	return t, nil
}

func parseLayouts(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
