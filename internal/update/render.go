package update

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/sandeepkv93/taskplan/internal/calendar"
	"github.com/sandeepkv93/taskplan/internal/model"
	"github.com/sandeepkv93/taskplan/internal/store"
	"github.com/sandeepkv93/taskplan/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	palette := views.PaletteFor(string(m.Store.Theme()))

	body := ""
	switch {
	case m.HelpVisible:
		body = views.RenderHelp(string(m.Store.Theme()))
	case m.Store.View() == store.ViewKanban:
		body = views.RenderKanban(m.kanbanData(palette))
		if sidebar := m.sidebar(palette); sidebar != "" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar+"  ", body)
		}
	case m.Store.View() == store.ViewList:
		body = views.RenderList(views.ListData{
			Tasks:   m.taskRows(m.Store.FilteredTasks(), true),
			SortBy:  string(m.Store.SortBy()),
			Palette: palette,
		})
	default:
		body = views.RenderCalendar(m.calendarData(palette))
	}

	if bar := m.pomodoroBar(palette); bar != "" {
		body = bar + "\n" + body
	}
	if m.mode == modeQuickAdd {
		body = "add: " + m.quickAddInput.View() + "\n" + body
	}
	if m.mode == modeSearch || m.Store.Search() != "" {
		body = "search: " + m.searchInput.View() + "\n" + body
	}

	return views.RenderApp(views.AppData{
		Header:     m.headerLine(),
		Body:       body,
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     fmt.Sprintf("%s/%s/%s views | %s add | %s search | %s help | %s quit", m.Keys.Kanban, m.Keys.List, m.Keys.Calendar, m.Keys.QuickAdd, m.Keys.Search, m.Keys.Help, m.Keys.Quit),
		Palette:    palette,
	})
}

func (m Model) headerLine() string {
	scope := "all tasks"
	if id := m.Store.CurrentProject(); id != "" {
		if project, ok := m.Store.Project(id); ok {
			scope = project.Name
		}
	}
	return fmt.Sprintf("taskplan | %s | %s", m.Store.View(), scope)
}

var columnTitles = map[model.Status]string{
	model.StatusTodo:       "To Do",
	model.StatusInProgress: "In Progress",
	model.StatusDone:       "Done",
}

func (m Model) kanbanData(palette views.Palette) views.KanbanData {
	columns := make([]views.KanbanColumnData, 0, len(model.Statuses()))
	for i, status := range model.Statuses() {
		columns = append(columns, views.KanbanColumnData{
			Title: columnTitles[status],
			Tasks: m.taskRows(m.Store.TasksByStatus(status), i == m.column),
		})
	}
	return views.KanbanData{Columns: columns, Palette: palette, Width: m.width}
}

// sidebar lists the project scopes with open-task counts. Hidden when no
// projects exist.
func (m Model) sidebar(palette views.Palette) string {
	projects := m.Store.Projects()
	if len(projects) == 0 {
		return ""
	}
	counts := m.Store.TaskCountByProject()
	current := m.Store.CurrentProject()

	rows := make([]views.ProjectRowData, len(projects))
	openTotal := 0
	for i, project := range projects {
		rows[i] = views.ProjectRowData{
			Name:      project.Name,
			Color:     project.Color,
			OpenTasks: counts[project.ID],
			Selected:  project.ID == current,
		}
	}
	for _, task := range m.Store.Tasks() {
		if !task.Completed {
			openTotal++
		}
	}
	return views.RenderSidebar(views.SidebarData{
		Projects: rows,
		AllCount: openTotal,
		AllView:  current == "",
		Palette:  palette,
	})
}

func (m Model) taskRows(tasks []model.Task, selectable bool) []views.TaskRowData {
	now := m.now()
	rows := make([]views.TaskRowData, len(tasks))
	for i, task := range tasks {
		row := views.TaskRowData{
			Title:     task.Title,
			Priority:  string(task.Priority),
			Deadline:  task.Deadline,
			Tags:      task.Tags,
			Completed: task.Completed,
			Overdue:   !task.Completed && task.IsOverdue(now),
			DueSoon:   !task.Completed && task.IsDueSoon(now),
			Selected:  selectable && i == m.cursor,
			Pomodoros: task.PomodoroCount,
		}
		if project, ok := m.Store.Project(task.ProjectID); ok {
			row.ProjectName = project.Name
		}
		if progress, ok := task.Progress(); ok {
			row.Progress = fmt.Sprintf("%d/%d", progress.Completed, progress.Total)
		}
		rows[i] = row
	}
	return rows
}

func (m Model) calendarData(palette views.Palette) views.CalendarData {
	// The calendar ignores the active filters and shows all open tasks.
	grid := calendar.BuildMonth(m.calendarMonth, m.now(), m.Store.Tasks())
	cells := make([]views.CalendarCellData, len(grid.Cells))
	for i, cell := range grid.Cells {
		titles := make([]string, len(cell.Tasks))
		for j, task := range cell.Tasks {
			titles[j] = task.Title
		}
		cells[i] = views.CalendarCellData{
			Day:      cell.Day,
			InMonth:  cell.InMonth,
			Today:    cell.Today,
			Titles:   titles,
			Overflow: cell.Overflow,
		}
	}
	return views.CalendarData{
		Title:    fmt.Sprintf("%s %d", grid.Month, grid.Year),
		Weekdays: calendar.Weekdays(),
		Cells:    cells,
		Palette:  palette,
	}
}

func (m Model) pomodoroBar(palette views.Palette) string {
	if m.Timer.TaskID() == "" && !m.Timer.IsRunning() {
		return ""
	}
	taskTitle := ""
	if task, ok := m.Store.Task(m.Timer.TaskID()); ok {
		taskTitle = task.Title
	}

	total := m.Timer.Settings().DurationSeconds(m.Timer.Mode())
	progressView := ""
	if total > 0 {
		progressView = m.pomodoroProgress.ViewAs(1 - float64(m.Timer.TimeLeft())/float64(total))
	}

	return views.RenderPomodoroBar(views.PomodoroData{
		Mode:               string(m.Timer.Mode()),
		Clock:              views.FormatClock(m.Timer.TimeLeft()),
		Running:            m.Timer.IsRunning(),
		Paused:             m.Timer.IsPaused(),
		TaskTitle:          taskTitle,
		CompletedPomodoros: m.Timer.CompletedPomodoros(),
		ProgressView:       progressView,
		Palette:            palette,
	})
}
