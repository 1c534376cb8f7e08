package model

import "time"

// Priority levels for tasks, ordered low < medium < high.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists all valid priorities in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// SortRank returns the display ordering rank: high sorts first.
// Unknown priorities rank with medium.
func (p Priority) SortRank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 1
}

// Status stages of the task pipeline.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// Statuses lists all valid statuses in pipeline order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// SortRank returns the pipeline ordering rank. Unknown statuses sort first.
func (s Status) SortRank() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusInProgress:
		return 1
	case StatusReview:
		return 2
	case StatusDone:
		return 3
	}
	return 0
}

// dueDateSentinel sorts tasks without a due date after every dated task.
const dueDateSentinel = "9999-12-31"

// Task is a unit of work belonging to exactly one project.
type Task struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Name      string    `json:"name"`
	DueDate   string    `json:"due_date,omitempty"` // YYYY-MM-DD, empty when unset
	Priority  Priority  `json:"priority"`
	Status    Status    `json:"status"`
	Progress  int       `json:"progress"`
	Assignee  string    `json:"assignee,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DueDateKey returns the due date used for ordering; tasks without one
// sort last.
func (t *Task) DueDateKey() string {
	if t.DueDate == "" {
		return dueDateSentinel
	}
	return t.DueDate
}

// IsOverdue reports whether the task has a due date before today and is
// not done.
func (t *Task) IsOverdue() bool {
	if t.DueDate == "" || t.Status == StatusDone {
		return false
	}
	due, err := time.ParseInLocation("2006-01-02", t.DueDate, time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// TaskPatch is a partial update for a task. Nil fields are left unchanged.
// DueDate and Assignee set to the empty string clear the column.
type TaskPatch struct {
	Name     *string
	DueDate  *string
	Priority *Priority
	Status   *Status
	Progress *int
	Assignee *string
}

// Empty reports whether the patch touches no fields.
func (p TaskPatch) Empty() bool {
	return p.Name == nil && p.DueDate == nil && p.Priority == nil &&
		p.Status == nil && p.Progress == nil && p.Assignee == nil
}
