package store

import (
	"context"
	"reflect"
	"testing"

	"github.com/sandeepkv93/taskplan/internal/model"
)

func TestCreateTaskDefaultsAndOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())

	first := mustCreate(t, s, TaskParams{Title: "  first  "})
	if first.Title != "first" {
		t.Fatalf("title = %q, want trimmed", first.Title)
	}
	if first.Status != model.StatusTodo || first.Priority != model.PriorityMedium {
		t.Fatalf("defaults = %s/%s, want todo/medium", first.Status, first.Priority)
	}
	if first.Order != 0 {
		t.Fatalf("order = %d, want 0", first.Order)
	}
	if err := first.Validate(); err != nil {
		t.Fatalf("created task invalid: %v", err)
	}

	second := mustCreate(t, s, TaskParams{Title: "second"})
	other := mustCreate(t, s, TaskParams{Title: "other", Status: model.StatusInProgress})
	if second.Order != 1 {
		t.Fatalf("second order = %d, want 1", second.Order)
	}
	if other.Order != 0 {
		t.Fatalf("other column order = %d, want 0", other.Order)
	}

	if _, err := s.CreateTask(ctx, TaskParams{Title: "   "}); err == nil {
		t.Fatal("expected error for blank title")
	}
}

func TestCreateFromQuickAdd(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	project, err := s.CreateProject(ctx, "Website Relaunch", "")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	task, err := s.CreateFromQuickAdd(ctx, "Deploy !h @website #ops >morgen", model.StatusTodo)
	if err != nil {
		t.Fatalf("quick add: %v", err)
	}
	if task.Title != "Deploy" || task.Priority != model.PriorityHigh {
		t.Fatalf("task = %+v", task)
	}
	if task.ProjectID != project.ID {
		t.Fatalf("projectID = %q, want %q", task.ProjectID, project.ID)
	}
	if !reflect.DeepEqual(task.Tags, []string{"ops"}) {
		t.Fatalf("tags = %v", task.Tags)
	}
	if task.Deadline != "2026-03-10" {
		t.Fatalf("deadline = %q, want 2026-03-10", task.Deadline)
	}
}

func TestUpdateTaskStatusDrivesCompletion(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	created := mustCreate(t, s, TaskParams{Title: "a"})

	done := model.StatusDone
	task, found, err := s.UpdateTask(ctx, created.ID, TaskPatch{Status: &done})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if !task.Completed || task.CompletedAt == nil || !task.CompletedAt.Equal(testNow) {
		t.Fatalf("completion not derived: %+v", task)
	}

	todo := model.StatusTodo
	task, _, err = s.UpdateTask(ctx, created.ID, TaskPatch{Status: &todo})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if task.Completed || task.CompletedAt != nil {
		t.Fatalf("completion not cleared: %+v", task)
	}
}

func TestUpdateTaskStatusWinsOverCompleted(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	created := mustCreate(t, s, TaskParams{Title: "a"})

	inProgress := model.StatusInProgress
	completed := true
	task, _, err := s.UpdateTask(ctx, created.ID, TaskPatch{Status: &inProgress, Completed: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if task.Status != model.StatusInProgress || task.Completed {
		t.Fatalf("status change did not win: %+v", task)
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("task invalid after conflicting patch: %v", err)
	}
}

func TestUpdateTaskCompletedFlagAlone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	created := mustCreate(t, s, TaskParams{Title: "a", Status: model.StatusInProgress})

	completed := true
	task, _, err := s.UpdateTask(ctx, created.ID, TaskPatch{Completed: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if task.Status != model.StatusDone || !task.Completed {
		t.Fatalf("completed=true should move to done: %+v", task)
	}

	completed = false
	task, _, err = s.UpdateTask(ctx, created.ID, TaskPatch{Completed: &completed})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if task.Status != model.StatusTodo || task.Completed || task.CompletedAt != nil {
		t.Fatalf("completed=false should reopen as todo: %+v", task)
	}
}

func TestUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())

	_, found, err := s.UpdateTask(ctx, "missing", TaskPatch{})
	if err != nil || found {
		t.Fatalf("found=%v err=%v, want silent no-op", found, err)
	}
	if removed, err := s.DeleteTask(ctx, "missing"); err != nil || removed {
		t.Fatalf("delete missing: removed=%v err=%v", removed, err)
	}
}

func TestToggleComplete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	created := mustCreate(t, s, TaskParams{Title: "a"})

	task, found, err := s.ToggleComplete(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("toggle: found=%v err=%v", found, err)
	}
	if task.Status != model.StatusDone || !task.Completed {
		t.Fatalf("toggle did not complete: %+v", task)
	}

	task, _, err = s.ToggleComplete(ctx, created.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if task.Status != model.StatusTodo || task.Completed {
		t.Fatalf("toggle did not reopen: %+v", task)
	}
}

func TestSubtasks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	created := mustCreate(t, s, TaskParams{Title: "a"})

	if err := s.AddSubtask(ctx, created.ID, "step one"); err != nil {
		t.Fatalf("add subtask: %v", err)
	}
	task, _ := s.Task(created.ID)
	if len(task.Subtasks) != 1 || task.Subtasks[0].Title != "step one" {
		t.Fatalf("subtasks = %+v", task.Subtasks)
	}

	if err := s.ToggleSubtask(ctx, created.ID, task.Subtasks[0].ID); err != nil {
		t.Fatalf("toggle subtask: %v", err)
	}
	task, _ = s.Task(created.ID)
	if !task.Subtasks[0].Completed {
		t.Fatal("subtask not toggled")
	}
	if progress, ok := task.Progress(); !ok || progress.Percent != 100 {
		t.Fatalf("progress = %+v ok=%v", progress, ok)
	}
}

func TestIncrementPomodoro(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	created := mustCreate(t, s, TaskParams{Title: "a"})

	if err := s.IncrementPomodoro(ctx, created.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := s.IncrementPomodoro(ctx, created.ID); err != nil {
		t.Fatalf("increment: %v", err)
	}
	task, _ := s.Task(created.ID)
	if task.PomodoroCount != 2 {
		t.Fatalf("pomodoroCount = %d, want 2", task.PomodoroCount)
	}
}

func TestMoveTaskReflowsColumn(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	a := mustCreate(t, s, TaskParams{Title: "a"})
	b := mustCreate(t, s, TaskParams{Title: "b"})
	c := mustCreate(t, s, TaskParams{Title: "c"})

	// Move c to the top of todo: c, a, b with dense orders.
	if err := s.MoveTask(ctx, c.ID, model.StatusTodo, 0); err != nil {
		t.Fatalf("move: %v", err)
	}
	column := s.TasksByStatus(model.StatusTodo)
	gotTitles := []string{column[0].Title, column[1].Title, column[2].Title}
	if !reflect.DeepEqual(gotTitles, []string{"c", "a", "b"}) {
		t.Fatalf("column = %v", gotTitles)
	}
	for i, task := range column {
		if task.Order != i {
			t.Fatalf("order not dense: %s has %d, want %d", task.Title, task.Order, i)
		}
	}

	// Move a across columns; an out-of-range index appends.
	if err := s.MoveTask(ctx, a.ID, model.StatusInProgress, 99); err != nil {
		t.Fatalf("move: %v", err)
	}
	moved, _ := s.Task(a.ID)
	if moved.Status != model.StatusInProgress || moved.Order != 0 {
		t.Fatalf("moved = %+v", moved)
	}
	_ = b
}

func TestMoveTaskNegativeIndexAppends(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	a := mustCreate(t, s, TaskParams{Title: "a"})
	mustCreate(t, s, TaskParams{Title: "b"})
	mustCreate(t, s, TaskParams{Title: "c"})

	if err := s.MoveTask(ctx, a.ID, model.StatusTodo, -1); err != nil {
		t.Fatalf("move: %v", err)
	}
	column := s.TasksByStatus(model.StatusTodo)
	gotTitles := []string{column[0].Title, column[1].Title, column[2].Title}
	if !reflect.DeepEqual(gotTitles, []string{"b", "c", "a"}) {
		t.Fatalf("column = %v", gotTitles)
	}
	for i, task := range column {
		if task.Order != i {
			t.Fatalf("order not dense: %s has %d, want %d", task.Title, task.Order, i)
		}
	}
}

func TestMoveTaskToDoneCompletes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	a := mustCreate(t, s, TaskParams{Title: "a"})

	if err := s.MoveTask(ctx, a.ID, model.StatusDone, 0); err != nil {
		t.Fatalf("move: %v", err)
	}
	task, _ := s.Task(a.ID)
	if !task.Completed || task.CompletedAt == nil {
		t.Fatalf("move to done did not complete: %+v", task)
	}
}

func TestMoveTaskReflowRespectsFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	high := mustCreate(t, s, TaskParams{Title: "high1", Priority: model.PriorityHigh})
	mustCreate(t, s, TaskParams{Title: "low", Priority: model.PriorityLow})
	high2 := mustCreate(t, s, TaskParams{Title: "high2", Priority: model.PriorityHigh})

	if err := s.SetPriorityFilter(model.PriorityHigh); err != nil {
		t.Fatalf("set filter: %v", err)
	}
	// Only high1 is visible besides high2; dropping high2 at index 0 puts
	// it before high1 regardless of the hidden low task.
	if err := s.MoveTask(ctx, high2.ID, model.StatusTodo, 0); err != nil {
		t.Fatalf("move: %v", err)
	}

	moved, _ := s.Task(high2.ID)
	other, _ := s.Task(high.ID)
	if moved.Order >= other.Order {
		t.Fatalf("filtered reflow: high2 order %d, high1 order %d", moved.Order, other.Order)
	}
}
