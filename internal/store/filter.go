package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandeepkv93/taskplan/internal/model"
)

// SelectProject scopes all views to one project; an empty id shows every
// task. The selection persists across restarts.
func (s *Store) SelectProject(ctx context.Context, projectID string) error {
	s.currentProject = projectID
	return s.persist(ctx)
}

// SetSearch filters views by a case-insensitive substring over title,
// description and tags. Session-only, never persisted.
func (s *Store) SetSearch(query string) {
	s.search = strings.ToLower(strings.TrimSpace(query))
	if s.onChange != nil {
		s.onChange()
	}
}

// SetPriorityFilter restricts views to one priority; empty clears it.
func (s *Store) SetPriorityFilter(priority model.Priority) error {
	if priority != "" && !priority.IsValid() {
		return fmt.Errorf("store: unknown priority %q", priority)
	}
	s.priorityFilter = priority
	if s.onChange != nil {
		s.onChange()
	}
	return nil
}

// SetSortBy selects the list-view sort order.
func (s *Store) SetSortBy(sortBy SortBy) error {
	if !sortBy.IsValid() {
		return fmt.Errorf("store: unknown sort %q", sortBy)
	}
	s.sortBy = sortBy
	if s.onChange != nil {
		s.onChange()
	}
	return nil
}

func (s *Store) matchesFilters(task model.Task) bool {
	if s.currentProject != "" && task.ProjectID != s.currentProject {
		return false
	}
	if s.priorityFilter != "" && task.Priority != s.priorityFilter {
		return false
	}
	if s.search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(task.Title), s.search) {
		return true
	}
	if strings.Contains(strings.ToLower(task.Description), s.search) {
		return true
	}
	for _, tag := range task.Tags {
		if strings.Contains(strings.ToLower(tag), s.search) {
			return true
		}
	}
	return false
}

// FilteredTasks applies the current project, search and priority filters
// and sorts by the current sort order.
func (s *Store) FilteredTasks() []model.Task {
	filtered := make([]model.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if s.matchesFilters(task) {
			filtered = append(filtered, task)
		}
	}
	s.sortTasks(filtered)
	return filtered
}

// TasksByStatus returns the visible tasks of one kanban column in dense
// display order.
func (s *Store) TasksByStatus(status model.Status) []model.Task {
	column := make([]model.Task, 0)
	for _, task := range s.FilteredTasks() {
		if task.Status == status {
			column = append(column, task)
		}
	}
	sort.SliceStable(column, func(i, j int) bool {
		return column[i].Order < column[j].Order
	})
	return column
}

// TasksForDate returns the open tasks due on an ISO date, for the
// calendar view. The calendar shows every task regardless of the active
// filters, so this scans the full list.
func (s *Store) TasksForDate(date string) []model.Task {
	due := make([]model.Task, 0)
	for _, task := range s.tasks {
		if task.Deadline == date && !task.Completed {
			due = append(due, task)
		}
	}
	return due
}

// TaskCountByProject counts open tasks per project id, for the sidebar.
func (s *Store) TaskCountByProject() map[string]int {
	counts := make(map[string]int)
	for _, task := range s.tasks {
		if task.ProjectID != "" && !task.Completed {
			counts[task.ProjectID]++
		}
	}
	return counts
}

// sortTasks orders tasks by the active sort. Missing deadlines sort last;
// the sort is stable so equal keys keep their stored order.
func (s *Store) sortTasks(tasks []model.Task) {
	switch s.sortBy {
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		})
	case SortByDeadline:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].Deadline, tasks[j].Deadline
			if a == "" || b == "" {
				return a != "" && b == ""
			}
			return a < b
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Order < tasks[j].Order
		})
	}
}

func sortByOrder(tasks []*model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Order < tasks[j].Order
	})
}
