package calendar

import (
	"testing"
	"time"

	"github.com/sandeepkv93/taskplan/internal/model"
)

func TestBuildMonthMondayOffset(t *testing.T) {
	// March 2026 starts on a Sunday: six leading cells from February.
	ref := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	grid := BuildMonth(ref, ref, nil)

	if len(grid.Cells) != 42 {
		t.Fatalf("cell count = %d, want 42", len(grid.Cells))
	}
	if grid.Cells[0].Date != "2026-02-23" || grid.Cells[0].InMonth {
		t.Fatalf("first cell = %+v, want 2026-02-23 out of month", grid.Cells[0])
	}
	if grid.Cells[6].Date != "2026-03-01" || !grid.Cells[6].InMonth {
		t.Fatalf("seventh cell = %+v, want 2026-03-01 in month", grid.Cells[6])
	}
	if last := grid.Cells[41]; last.Date != "2026-04-05" || last.InMonth {
		t.Fatalf("last cell = %+v, want 2026-04-05 out of month", last)
	}
}

func TestBuildMonthMondayStart(t *testing.T) {
	// June 2026 starts on a Monday: no leading padding.
	ref := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	grid := BuildMonth(ref, ref, nil)

	if grid.Cells[0].Date != "2026-06-01" || !grid.Cells[0].InMonth {
		t.Fatalf("first cell = %+v, want 2026-06-01 in month", grid.Cells[0])
	}
}

func TestBuildMonthTodayHighlight(t *testing.T) {
	ref := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.March, 9, 18, 45, 0, 0, time.UTC)
	grid := BuildMonth(ref, now, nil)

	var marked []string
	for _, cell := range grid.Cells {
		if cell.Today {
			marked = append(marked, cell.Date)
		}
	}
	if len(marked) != 1 || marked[0] != "2026-03-09" {
		t.Fatalf("today cells = %v, want [2026-03-09]", marked)
	}
}

func TestBuildMonthTasksAndOverflow(t *testing.T) {
	ref := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "a", Title: "a", Deadline: "2026-03-09"},
		{ID: "b", Title: "b", Deadline: "2026-03-09"},
		{ID: "c", Title: "c", Deadline: "2026-03-09"},
		{ID: "d", Title: "d", Deadline: "2026-03-09", Completed: true, Status: model.StatusDone},
		{ID: "e", Title: "e", Deadline: "2026-03-10"},
	}
	grid := BuildMonth(ref, ref, tasks)

	var ninth, tenth Cell
	for _, cell := range grid.Cells {
		switch cell.Date {
		case "2026-03-09":
			ninth = cell
		case "2026-03-10":
			tenth = cell
		}
	}

	if len(ninth.Tasks) != MaxVisibleTasks || ninth.Overflow != 1 {
		t.Fatalf("ninth = %d tasks overflow %d, want %d/+1", len(ninth.Tasks), ninth.Overflow, MaxVisibleTasks)
	}
	if len(tenth.Tasks) != 1 || tenth.Overflow != 0 {
		t.Fatalf("tenth = %d tasks overflow %d, want 1/+0", len(tenth.Tasks), tenth.Overflow)
	}
}
