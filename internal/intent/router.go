package intent

import (
	"fmt"
	"strings"
	"time"

	"schedbot/internal/avail"
	"schedbot/internal/calendar"
	"schedbot/internal/logging"
	"schedbot/internal/schedule"
	"schedbot/internal/tasks"
)

// Router dispatches classified intents to the store services.
type Router struct {
	store    *schedule.Store
	calendar *calendar.Service
	tasks    *tasks.Service
	now      func() time.Time
}

// NewRouter creates a router over the shared store and its services.
func NewRouter(store *schedule.Store, cal *calendar.Service, tsk *tasks.Service) *Router {
	return &Router{store: store, calendar: cal, tasks: tsk, now: time.Now}
}

// SetClock overrides the time source, for tests.
func (r *Router) SetClock(now func() time.Time) {
	r.now = now
}

// Dispatch classifies the input and executes the matched operation.
// handled=false means no category keyword matched and the caller should
// defer to the completion API. A handled intent always produces a final
// reply, even when extraction found nothing to act on.
func (r *Router) Dispatch(input string) (reply string, handled bool) {
	it := Classify(input)
	if it.Kind == KindNone {
		return "", false
	}
	logging.Debug("intent", "kind=%d action=%d input=%s", it.Kind, it.Action, logging.Truncate(input, 60))

	switch it.Action {
	case ActionAddEvent:
		return r.calendar.AddEvent(it.Title, it.TimeText, "", buildDescription(it), ""), true
	case ActionListEvents:
		return r.calendar.ListEvents(it.DateText), true
	case ActionRemoveEvent:
		return r.calendar.RemoveEvent(it.TargetID), true
	case ActionFindTime:
		slots := avail.FindAvailableTime(r.store.Events(), time.Hour, r.now(), avail.DefaultDaysAhead)
		return avail.FormatSlots(slots), true
	case ActionSuggestTime:
		return avail.SuggestMeetingTime(r.store.Events(), time.Hour), true
	case ActionAddTask:
		return r.tasks.AddTask(it.Title, "", "", ""), true
	case ActionListTasks:
		return r.tasks.ListTasks(it.StatusFilter), true
	case ActionUpdateTask:
		return r.tasks.UpdateStatus(it.TargetID, it.NewStatus), true
	}

	// Category matched, nothing extractable: nothing to show, but the
	// turn stays out of the completion API.
	return "", true
}

// buildDescription synthesizes the event description from extracted
// participants and topic.
func buildDescription(it Intent) string {
	var parts []string
	if len(it.Participants) > 0 {
		parts = append(parts, fmt.Sprintf("Participants: %s", strings.Join(it.Participants, ", ")))
	}
	if it.Topic != "" {
		parts = append(parts, fmt.Sprintf("Topic: %s", it.Topic))
	}
	return strings.Join(parts, ". ")
}
