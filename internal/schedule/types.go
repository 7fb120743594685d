package schedule

import "time"

// Priority levels for tasks
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task status values. UpdateTaskStatus deliberately accepts arbitrary
// status text, so filters compare raw strings.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Event is a calendar entry. Events are never mutated after creation,
// only removed by ID.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Task is a to-do item with an optional due date.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `json:"priority"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// scheduleData is the persisted aggregate: both sequences plus the
// monotonic ID counters. Counters never decrease, so removing an item
// never frees its ID for reuse.
type scheduleData struct {
	Events      []Event `json:"events"`
	Tasks       []Task  `json:"tasks"`
	NextEventID int     `json:"next_event_id"`
	NextTaskID  int     `json:"next_task_id"`
}
