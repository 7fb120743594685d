// Package intent classifies raw user input into scheduling intents and
// extracts their structured fields.
//
// Classification is keyword-based and checked in priority order:
// calendar, then task, then view. Within a category, extraction is a
// sequence of explicitly-ordered regexp attempts; a category match whose
// extraction fails never falls through to the completion API.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind is the top-level routing category.
type Kind int

const (
	KindNone Kind = iota
	KindCalendar
	KindTask
	KindView
)

// Action is the concrete operation extracted within a category.
// ActionNone means the category matched but no sub-pattern did; the
// caller treats the result as "nothing to show".
type Action int

const (
	ActionNone Action = iota
	ActionAddEvent
	ActionListEvents
	ActionRemoveEvent
	ActionFindTime
	ActionSuggestTime
	ActionAddTask
	ActionListTasks
	ActionUpdateTask
)

// Intent is the classification outcome with its extracted fields.
// Fields are only meaningful for the corresponding Action.
type Intent struct {
	Kind   Kind
	Action Action

	Title        string
	TimeText     string
	DateText     string
	Topic        string
	Participants []string
	StatusFilter string
	TargetID     int
	NewStatus    string
}

var (
	calendarWords = []string{"schedule", "meeting", "appointment", "event", "calendar"}
	taskWords     = []string{"task", "todo", "reminder", "due"}
	viewWords     = []string{"show", "view", "list", "get", "what's on"}

	// Words that the participant pattern can capture but are never names.
	notNames = map[string]bool{
		"at": true, "on": true, "for": true, "about": true, "with": true,
		"schedule": true, "meeting": true, "appointment": true,
	}

	// Calendar extraction, in documented fallback order.
	reTitleQuoted = regexp.MustCompile(`(?:schedule|meeting|appointment) (?:called|named|for|with|about) ["']?([^"']+)["']?`)
	reTitleLoose  = regexp.MustCompile(`(?:schedule|meeting|appointment) (?:with|for) ([^.]+?)(?:at|on|for|$)`)
	reTimeClause  = regexp.MustCompile(`(?:at|on) ([^.]+?)(?:\.|$|for|with|about)`)
	rePeople      = regexp.MustCompile(`(?:with|meeting) (\w+)`)
	reTopic       = regexp.MustCompile(`(?:about|regarding|related to) ([^.]+)`)
	reDateClause  = regexp.MustCompile(`(?:on|for) (.*?)(?:\.|$|please)`)
	reRemoveEvent = regexp.MustCompile(`(?:remove|delete|cancel) event #?(\d+)`)

	// Task extraction runs on the raw input so titles keep their case.
	reAddTask    = regexp.MustCompile(`(?i)(?:add|create) (?:a |another )?task (?:called |named )?["']?([^"']+)["']?`)
	reTaskStatus = regexp.MustCompile(`(?i)(?:with status|that are) (\w+)`)
	reMarkTask   = regexp.MustCompile(`(?i)(?:mark|set) task #?(\d+) (?:as |to )?(\w+)`)
	reDoneTask   = regexp.MustCompile(`(?i)(?:complete|finish) task #?(\d+)`)
)

// Classify routes raw input to a category and extracts its fields.
func Classify(input string) Intent {
	lower := strings.ToLower(input)

	switch {
	case containsAny(lower, calendarWords):
		return classifyCalendar(input, lower)
	case containsAny(lower, taskWords):
		return classifyTask(input, lower)
	case containsAny(lower, viewWords):
		return classifyView(lower)
	}
	return Intent{Kind: KindNone}
}

func classifyCalendar(input, lower string) Intent {
	it := Intent{Kind: KindCalendar}

	if m := reRemoveEvent.FindStringSubmatch(lower); m != nil {
		it.Action = ActionRemoveEvent
		it.TargetID, _ = strconv.Atoi(m[1])
		return it
	}

	if strings.Contains(lower, "available time") || strings.Contains(lower, "free slot") {
		if strings.Contains(lower, "suggest") {
			it.Action = ActionSuggestTime
		} else {
			it.Action = ActionFindTime
		}
		return it
	}

	if strings.Contains(lower, "show events") || strings.Contains(lower, "view calendar") {
		it.Action = ActionListEvents
		if m := reDateClause.FindStringSubmatch(lower); m != nil {
			it.DateText = strings.TrimSpace(m[1])
		}
		return it
	}

	if strings.Contains(lower, "schedule") || strings.Contains(lower, "meeting") || strings.Contains(lower, "appointment") {
		timeMatch := reTimeClause.FindStringSubmatch(lower)
		if timeMatch != nil {
			it.Action = ActionAddEvent
			it.TimeText = strings.TrimSpace(timeMatch[1])
			it.Title = extractTitle(lower)
			it.Participants = extractParticipants(input, lower)
			if m := reTopic.FindStringSubmatch(lower); m != nil {
				it.Topic = strings.TrimSpace(m[1])
			}
			return it
		}
		// Routed but nothing extractable; not an LLM fallback.
		return it
	}

	// Calendar wording with no add/show phrasing ("what's on my
	// calendar?") reads as a view request.
	it.Action = ActionListEvents
	return it
}

func extractTitle(lower string) string {
	if m := reTitleQuoted.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reTitleLoose.FindStringSubmatch(lower); m != nil {
		if t := strings.TrimSpace(m[1]); t != "" {
			return t
		}
	}
	return "Meeting"
}

func extractParticipants(input, lower string) []string {
	var names []string
	seen := map[string]bool{}
	for _, m := range rePeople.FindAllStringSubmatch(lower, -1) {
		name := m[1]
		if notNames[name] || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, capitalize(name))
	}
	for _, name := range prosePeople(input) {
		key := strings.ToLower(name)
		if notNames[key] || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, capitalize(name))
	}
	return names
}

func classifyTask(input, lower string) Intent {
	it := Intent{Kind: KindTask}

	if m := reAddTask.FindStringSubmatch(input); m != nil {
		it.Action = ActionAddTask
		it.Title = strings.TrimSpace(m[1])
		return it
	}

	if m := reMarkTask.FindStringSubmatch(input); m != nil {
		it.Action = ActionUpdateTask
		it.TargetID, _ = strconv.Atoi(m[1])
		it.NewStatus = strings.ToLower(m[2])
		return it
	}
	if m := reDoneTask.FindStringSubmatch(input); m != nil {
		it.Action = ActionUpdateTask
		it.TargetID, _ = strconv.Atoi(m[1])
		it.NewStatus = "completed"
		return it
	}

	it.Action = ActionListTasks
	if strings.Contains(lower, "show tasks") || strings.Contains(lower, "list tasks") {
		if m := reTaskStatus.FindStringSubmatch(input); m != nil {
			it.StatusFilter = strings.ToLower(m[1])
		}
	}
	return it
}

func classifyView(lower string) Intent {
	it := Intent{Kind: KindView}
	switch {
	case strings.Contains(lower, "events"):
		it.Action = ActionListEvents
	case strings.Contains(lower, "tasks"):
		it.Action = ActionListTasks
	}
	return it
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
