// Package calendar builds the month grid for the calendar view: a fixed
// 6x7 matrix of days starting on Monday, padded with the neighboring
// months' days.
package calendar

import (
	"time"

	"github.com/sandeepkv93/taskplan/internal/model"
)

// MaxVisibleTasks caps how many tasks a day cell lists before collapsing
// the rest into an overflow count.
const MaxVisibleTasks = 2

// Cell is one day in the month grid.
type Cell struct {
	Date     string // YYYY-MM-DD
	Day      int
	InMonth  bool
	Today    bool
	Tasks    []model.Task
	Overflow int // tasks beyond MaxVisibleTasks
}

// Month is a rendered month: 42 cells in row-major order, Monday first.
type Month struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// monthTasks indexes open tasks by deadline date. Completed tasks never
// appear on the grid.
func monthTasks(tasks []model.Task) map[string][]model.Task {
	byDate := make(map[string][]model.Task)
	for _, task := range tasks {
		if task.Deadline == "" || task.Completed {
			continue
		}
		byDate[task.Deadline] = append(byDate[task.Deadline], task)
	}
	return byDate
}

// BuildMonth lays out the grid for the month containing ref. now supplies
// the highlighted "today" cell; both are interpreted in their own location.
func BuildMonth(ref time.Time, now time.Time, tasks []model.Task) Month {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	// Weekday() is Sunday-based; shift so Monday lands in column 0.
	offset := (int(first.Weekday()) + 6) % 7

	byDate := monthTasks(tasks)
	today := now.Format(model.DateLayout)

	grid := Month{
		Year:  ref.Year(),
		Month: ref.Month(),
		Cells: make([]Cell, 42),
	}
	for i := range grid.Cells {
		day := first.AddDate(0, 0, i-offset)
		date := day.Format(model.DateLayout)
		cell := Cell{
			Date:    date,
			Day:     day.Day(),
			InMonth: day.Month() == ref.Month(),
			Today:   date == today,
		}
		if dayTasks := byDate[date]; len(dayTasks) > MaxVisibleTasks {
			cell.Tasks = dayTasks[:MaxVisibleTasks]
			cell.Overflow = len(dayTasks) - MaxVisibleTasks
		} else {
			cell.Tasks = dayTasks
		}
		grid.Cells[i] = cell
	}
	return grid
}

// Weekdays returns the column headers for the grid, Monday first.
func Weekdays() []string {
	return []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
}
