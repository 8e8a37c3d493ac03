package store

import "github.com/sandeepkv93/taskplan/internal/model"

// Stats summarizes the whole task list, ignoring the active filters.
type Stats struct {
	Total          int
	Todo           int
	InProgress     int
	Done           int
	Overdue        int
	CompletedToday int
	TotalPomodoros int
}

func (s *Store) Stats() Stats {
	now := s.now()
	today := now.Format(model.DateLayout)

	var stats Stats
	stats.Total = len(s.tasks)
	for _, task := range s.tasks {
		switch task.Status {
		case model.StatusTodo:
			stats.Todo++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusDone:
			stats.Done++
		}
		if !task.Completed && task.IsOverdue(now) {
			stats.Overdue++
		}
		if task.CompletedAt != nil && task.CompletedAt.In(now.Location()).Format(model.DateLayout) == today {
			stats.CompletedToday++
		}
		stats.TotalPomodoros += task.PomodoroCount
	}
	return stats
}
