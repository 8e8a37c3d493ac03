// Package remind implements deadline reminders. A Checker is polled on a
// fixed period; it fires the notifier at most once per task per process
// when the reminder window for that task's deadline opens.
package remind

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/taskplan/internal/model"
)

// DeadlineHour anchors a date-only deadline to a wall-clock instant.
const DeadlineHour = 9

// Notifier delivers a reminder to the user.
type Notifier func(title, body string)

// Checker tracks which tasks have already been reminded in this process.
// Notified state is deliberately not persisted; a restart re-arms every
// reminder still inside its window.
type Checker struct {
	notify   Notifier
	enabled  bool
	notified map[string]struct{}
}

func NewChecker(notify Notifier, enabled bool) *Checker {
	return &Checker{
		notify:   notify,
		enabled:  enabled,
		notified: make(map[string]struct{}),
	}
}

// SetEnabled toggles the checker. While disabled nothing is scanned or
// marked, so re-enabling picks up reminders whose window opened meanwhile.
func (c *Checker) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *Checker) Enabled() bool {
	return c.enabled
}

// TaskDeleted forgets a task so a recreated one with the same id can
// remind again.
func (c *Checker) TaskDeleted(taskID string) {
	delete(c.notified, taskID)
}

// Check scans tasks for open reminder windows at now. A task qualifies
// when it is incomplete, has a deadline and a reminder lead, and now lies
// in [deadline-lead, deadline) with the deadline anchored at 09:00 local.
func (c *Checker) Check(now time.Time, tasks []model.Task) {
	if !c.enabled {
		return
	}
	for _, task := range tasks {
		if task.Completed || task.Deadline == "" {
			continue
		}
		minutes, ok := task.ReminderMinutes()
		if !ok {
			continue
		}
		if _, seen := c.notified[task.ID]; seen {
			continue
		}

		date, ok := task.DeadlineDate(now.Location())
		if !ok {
			continue
		}
		deadline := date.Add(DeadlineHour * time.Hour)
		reminderAt := deadline.Add(-time.Duration(minutes) * time.Minute)
		if now.Before(reminderAt) || !now.Before(deadline) {
			continue
		}

		c.notified[task.ID] = struct{}{}
		if c.notify != nil {
			c.notify("Task Reminder", reminderBody(task.Title, minutes))
		}
	}
}

// reminderBody phrases the notification from the configured lead minutes,
// not from the time left on the clock when the poll happens to fire.
func reminderBody(title string, leadMinutes int) string {
	switch {
	case leadMinutes <= 0:
		return fmt.Sprintf("%q is due now!", title)
	case leadMinutes < 60:
		return fmt.Sprintf("%q is due in %d minutes", title, leadMinutes)
	case leadMinutes < 24*60:
		hours := (leadMinutes + 30) / 60
		if hours == 1 {
			return fmt.Sprintf("%q is due in ~1 hour", title)
		}
		return fmt.Sprintf("%q is due in ~%d hours", title, hours)
	default:
		return fmt.Sprintf("%q is due tomorrow", title)
	}
}
