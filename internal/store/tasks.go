package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/taskplan/internal/model"
	"github.com/sandeepkv93/taskplan/internal/quickadd"
)

// TaskParams carries the fields a new task may be created with. Zero
// values fall back to defaults: medium priority, todo status.
type TaskParams struct {
	Title       string
	Description string
	ProjectID   string
	Priority    model.Priority
	Deadline    string
	Reminder    string
	Status      model.Status
	Tags        []string
	Subtasks    []model.Subtask
}

// CreateTask appends a new task at the end of its status column.
func (s *Store) CreateTask(ctx context.Context, params TaskParams) (model.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return model.Task{}, fmt.Errorf("store: task title is required")
	}
	status := params.Status
	if !status.IsValid() {
		status = model.StatusTodo
	}
	priority := params.Priority
	if !priority.IsValid() {
		priority = model.PriorityMedium
	}
	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}
	subtasks := params.Subtasks
	if subtasks == nil {
		subtasks = []model.Subtask{}
	}

	task := model.Task{
		ID:          s.newID(),
		Title:       title,
		Description: params.Description,
		ProjectID:   params.ProjectID,
		Priority:    priority,
		Deadline:    params.Deadline,
		Reminder:    params.Reminder,
		Status:      status,
		Tags:        tags,
		Subtasks:    subtasks,
		CreatedAt:   s.now(),
		Order:       s.countByStatus(status),
	}
	task = s.normalizeCompletion(task)

	s.tasks = append(s.tasks, task)
	return task, s.persist(ctx)
}

// CreateFromQuickAdd parses a quick-add line and creates the task it
// describes. Project tokens resolve by case-insensitive name substring.
func (s *Store) CreateFromQuickAdd(ctx context.Context, input string, status model.Status) (model.Task, error) {
	draft, err := quickadd.Parse(input, status, s.now(), s.resolveProject)
	if err != nil {
		return model.Task{}, err
	}
	return s.CreateTask(ctx, TaskParams{
		Title:     draft.Title,
		Priority:  draft.Priority,
		ProjectID: draft.ProjectID,
		Tags:      draft.Tags,
		Deadline:  draft.Deadline,
		Status:    draft.Status,
	})
}

func (s *Store) resolveProject(name string) string {
	for _, p := range s.projects {
		if strings.Contains(strings.ToLower(p.Name), name) {
			return p.ID
		}
	}
	return ""
}

// TaskPatch updates a task field-by-field; nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	ProjectID   *string
	Priority    *model.Priority
	Deadline    *string
	Reminder    *string
	Status      *model.Status
	Tags        *[]string
	Subtasks    *[]model.Subtask
	Completed   *bool
}

// UpdateTask applies a patch. An unknown id is a silent no-op; the second
// return reports whether a task was found. A status change and a completed
// change are reconciled into one consistent transition, with the status
// change taking precedence.
func (s *Store) UpdateTask(ctx context.Context, id string, patch TaskPatch) (model.Task, bool, error) {
	idx := s.taskIndex(id)
	if idx < 0 {
		return model.Task{}, false, nil
	}
	task := s.tasks[idx]

	if patch.Title != nil {
		if title := strings.TrimSpace(*patch.Title); title != "" {
			task.Title = title
		}
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.ProjectID != nil {
		task.ProjectID = *patch.ProjectID
	}
	if patch.Priority != nil && patch.Priority.IsValid() {
		task.Priority = *patch.Priority
	}
	if patch.Deadline != nil {
		task.Deadline = *patch.Deadline
	}
	if patch.Reminder != nil {
		task.Reminder = *patch.Reminder
	}
	if patch.Tags != nil {
		task.Tags = *patch.Tags
	}
	if patch.Subtasks != nil {
		task.Subtasks = *patch.Subtasks
	}

	switch {
	case patch.Status != nil && patch.Status.IsValid():
		if *patch.Status != task.Status {
			task.Order = s.countByStatus(*patch.Status)
		}
		task.Status = *patch.Status
	case patch.Completed != nil:
		if *patch.Completed {
			task.Status = model.StatusDone
		} else if task.Status == model.StatusDone {
			task.Status = model.StatusTodo
		}
	}
	task = s.normalizeCompletion(task)

	s.tasks[idx] = task
	return task, true, s.persist(ctx)
}

// DeleteTask removes a task. An unknown id is a silent no-op; the return
// reports whether anything was removed so callers can release timer and
// reminder state bound to the id.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	idx := s.taskIndex(id)
	if idx < 0 {
		return false, nil
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return true, s.persist(ctx)
}

// ToggleComplete flips a task between done and todo.
func (s *Store) ToggleComplete(ctx context.Context, id string) (model.Task, bool, error) {
	task, ok := s.Task(id)
	if !ok {
		return model.Task{}, false, nil
	}
	completed := !task.Completed
	return s.UpdateTask(ctx, id, TaskPatch{Completed: &completed})
}

// ToggleSubtask flips one subtask's completed flag. Unknown ids are
// silent no-ops.
func (s *Store) ToggleSubtask(ctx context.Context, taskID, subtaskID string) error {
	idx := s.taskIndex(taskID)
	if idx < 0 {
		return nil
	}
	for i, sub := range s.tasks[idx].Subtasks {
		if sub.ID == subtaskID {
			s.tasks[idx].Subtasks[i].Completed = !sub.Completed
			return s.persist(ctx)
		}
	}
	return nil
}

// AddSubtask appends a subtask to a task.
func (s *Store) AddSubtask(ctx context.Context, taskID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("store: subtask title is required")
	}
	idx := s.taskIndex(taskID)
	if idx < 0 {
		return nil
	}
	s.tasks[idx].Subtasks = append(s.tasks[idx].Subtasks, model.Subtask{
		ID:    s.newID(),
		Title: title,
	})
	return s.persist(ctx)
}

// IncrementPomodoro bumps the completed-pomodoro counter of the task a
// finished work session was bound to.
func (s *Store) IncrementPomodoro(ctx context.Context, taskID string) error {
	idx := s.taskIndex(taskID)
	if idx < 0 {
		return nil
	}
	s.tasks[idx].PomodoroCount++
	return s.persist(ctx)
}

// MoveTask places a task into a status column at targetIndex and reflows
// the dense order of that column. The reflow runs over the tasks the
// current filters make visible, so a drop lands exactly where the user
// aimed even when the column is filtered. A targetIndex outside the
// column appends.
func (s *Store) MoveTask(ctx context.Context, id string, status model.Status, targetIndex int) error {
	idx := s.taskIndex(id)
	if idx < 0 {
		return nil
	}
	if !status.IsValid() {
		return fmt.Errorf("store: unknown status %q", status)
	}

	task := s.tasks[idx]
	task.Status = status
	task = s.normalizeCompletion(task)
	s.tasks[idx] = task

	column := make([]*model.Task, 0)
	for i := range s.tasks {
		if s.tasks[i].ID == id || s.tasks[i].Status != status {
			continue
		}
		if s.matchesFilters(s.tasks[i]) {
			column = append(column, &s.tasks[i])
		}
	}
	sortByOrder(column)

	// An index outside the column, negative included, means append.
	if targetIndex < 0 || targetIndex > len(column) {
		targetIndex = len(column)
	}
	column = append(column, nil)
	copy(column[targetIndex+1:], column[targetIndex:])
	column[targetIndex] = &s.tasks[idx]

	for order, t := range column {
		t.Order = order
	}
	return s.persist(ctx)
}

// normalizeCompletion derives the completed flag and completion timestamp
// from the status, keeping the pair consistent in one place.
func (s *Store) normalizeCompletion(task model.Task) model.Task {
	done := task.Status == model.StatusDone
	if done && !task.Completed {
		now := s.now()
		task.CompletedAt = &now
	}
	if !done {
		task.CompletedAt = nil
	}
	task.Completed = done
	return task
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) countByStatus(status model.Status) int {
	n := 0
	for _, t := range s.tasks {
		if t.Status == status {
			n++
		}
	}
	return n
}
