package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

// DateLayout is the ISO calendar-date form used for deadlines and
// calendar bucketing.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// Statuses lists the kanban columns in board order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Rank orders priorities for sorting: high before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	ProjectID     string     `json:"projectId,omitempty"`
	Priority      Priority   `json:"priority"`
	Deadline      string     `json:"deadline,omitempty"`
	Reminder      string     `json:"reminder,omitempty"`
	Status        Status     `json:"status"`
	Tags          []string   `json:"tags"`
	Subtasks      []Subtask  `json:"subtasks"`
	Completed     bool       `json:"completed"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	PomodoroCount int        `json:"pomodoroCount"`
	Order         int        `json:"order"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.Deadline != "" {
		if _, err := time.Parse(DateLayout, t.Deadline); err != nil {
			return fmt.Errorf("model: invalid deadline %q: expected YYYY-MM-DD", t.Deadline)
		}
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Completed != (t.Status == StatusDone) {
		return errors.New("model: completed flag out of sync with status")
	}
	if t.Completed && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task is not completed")
	}
	if t.Order < 0 {
		return errors.New("model: task order must not be negative")
	}
	return nil
}

// DeadlineDate parses the deadline into a date in the given location.
// The second return is false when no deadline is set or it does not parse.
func (t Task) DeadlineDate(loc *time.Location) (time.Time, bool) {
	if t.Deadline == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(DateLayout, t.Deadline, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// IsOverdue reports whether the deadline's end of day has passed.
func (t Task) IsOverdue(now time.Time) bool {
	day, ok := t.DeadlineDate(now.Location())
	if !ok {
		return false
	}
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond).Before(now)
}

// IsDueSoon reports whether the deadline falls within the next three days
// and is not already overdue.
func (t Task) IsDueSoon(now time.Time) bool {
	day, ok := t.DeadlineDate(now.Location())
	if !ok {
		return false
	}
	return !t.IsOverdue(now) && !day.After(now.AddDate(0, 0, 3))
}

// ReminderMinutes parses the reminder lead time. The second return is false
// when no reminder is set or the value is not a whole number of minutes.
func (t Task) ReminderMinutes() (int, bool) {
	raw := strings.TrimSpace(t.Reminder)
	if raw == "" {
		return 0, false
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		return 0, false
	}
	return minutes, true
}

type SubtaskProgress struct {
	Completed int
	Total     int
	Percent   int
}

// Progress summarizes subtask completion. The second return is false when
// the task has no subtasks.
func (t Task) Progress() (SubtaskProgress, bool) {
	if len(t.Subtasks) == 0 {
		return SubtaskProgress{}, false
	}
	done := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	total := len(t.Subtasks)
	percent := int(float64(done)/float64(total)*100 + 0.5)
	return SubtaskProgress{Completed: done, Total: total, Percent: percent}, true
}
