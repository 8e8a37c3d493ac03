package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TaskRowData struct {
	Title       string
	Priority    string
	ProjectName string
	Deadline    string
	Tags        []string
	Completed   bool
	Overdue     bool
	DueSoon     bool
	Selected    bool
	Pomodoros   int
	Progress    string // "2/3" when the task has subtasks
}

type KanbanColumnData struct {
	Title string
	Tasks []TaskRowData
}

type KanbanData struct {
	Columns []KanbanColumnData
	Palette Palette
	Width   int
}

func RenderKanban(data KanbanData) string {
	columnWidth := 36
	if data.Width > 0 {
		if w := data.Width/len(data.Columns) - 2; w > 20 {
			columnWidth = w
		}
	}
	panelStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(columnWidth)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(data.Palette.Accent)

	columns := make([]string, 0, len(data.Columns))
	for _, column := range data.Columns {
		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", column.Title, len(column.Tasks))))
		b.WriteString("\n")
		if len(column.Tasks) == 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(data.Palette.Muted).Render("empty"))
		}
		for _, task := range column.Tasks {
			b.WriteString(renderTaskRow(task, data.Palette))
			b.WriteString("\n")
		}
		columns = append(columns, panelStyle.Render(strings.TrimRight(b.String(), "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

type ListData struct {
	Tasks   []TaskRowData
	SortBy  string
	Palette Palette
}

func RenderList(data ListData) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(data.Palette.Muted).Render("sort: " + data.SortBy))
	b.WriteString("\n")
	if len(data.Tasks) == 0 {
		b.WriteString("no tasks match the current filters")
		return b.String()
	}
	for _, task := range data.Tasks {
		b.WriteString(renderTaskRow(task, data.Palette))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderTaskRow(task TaskRowData, palette Palette) string {
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}
	cursor := "  "
	if task.Selected {
		cursor = "> "
	}

	var meta []string
	if task.Priority != "" {
		meta = append(meta, "!"+task.Priority)
	}
	if task.ProjectName != "" {
		meta = append(meta, "@"+task.ProjectName)
	}
	for _, tag := range task.Tags {
		meta = append(meta, "#"+tag)
	}
	if task.Deadline != "" {
		meta = append(meta, ">"+task.Deadline)
	}
	if task.Progress != "" {
		meta = append(meta, task.Progress)
	}
	if task.Pomodoros > 0 {
		meta = append(meta, fmt.Sprintf("%d🍅", task.Pomodoros))
	}

	line := cursor + check + " " + task.Title
	if len(meta) > 0 {
		line += "  " + lipgloss.NewStyle().Foreground(palette.Muted).Render(strings.Join(meta, " "))
	}

	style := lipgloss.NewStyle()
	switch {
	case task.Completed:
		style = style.Foreground(palette.Done).Strikethrough(true)
	case task.Overdue:
		style = style.Foreground(palette.Overdue)
	case task.DueSoon:
		style = style.Foreground(palette.DueSoon)
	}
	if task.Selected {
		style = style.Bold(true).Foreground(palette.Selected)
	}
	return style.Render(line)
}

type CalendarCellData struct {
	Day      int
	InMonth  bool
	Today    bool
	Titles   []string
	Overflow int
}

type CalendarData struct {
	Title    string
	Weekdays []string
	Cells    []CalendarCellData // 42 cells, row-major
	Palette  Palette
}

func RenderCalendar(data CalendarData) string {
	cellStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Width(14).Height(4)
	mutedStyle := lipgloss.NewStyle().Foreground(data.Palette.Muted)
	todayStyle := lipgloss.NewStyle().Bold(true).Foreground(data.Palette.Selected)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(data.Palette.Accent).Render(data.Title))
	b.WriteString("\n")
	header := make([]string, len(data.Weekdays))
	for i, day := range data.Weekdays {
		header[i] = lipgloss.NewStyle().Width(16).Render(mutedStyle.Render(day))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for row := 0; row < len(data.Cells)/7; row++ {
		cells := make([]string, 7)
		for col := 0; col < 7; col++ {
			cell := data.Cells[row*7+col]
			day := fmt.Sprintf("%d", cell.Day)
			switch {
			case cell.Today:
				day = todayStyle.Render(day)
			case !cell.InMonth:
				day = mutedStyle.Render(day)
			}
			lines := []string{day}
			for _, title := range cell.Titles {
				if len(title) > 12 {
					title = title[:11] + "…"
				}
				lines = append(lines, "· "+title)
			}
			if cell.Overflow > 0 {
				lines = append(lines, mutedStyle.Render(fmt.Sprintf("+%d more", cell.Overflow)))
			}
			cells[col] = cellStyle.Render(strings.Join(lines, "\n"))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type PomodoroData struct {
	Mode               string
	Clock              string
	Running            bool
	Paused             bool
	TaskTitle          string
	CompletedPomodoros int
	ProgressView       string
	Palette            Palette
}

// RenderPomodoroBar is the one-line timer summary shown above every view
// while a session is bound.
func RenderPomodoroBar(data PomodoroData) string {
	state := "idle"
	switch {
	case data.Paused:
		state = "paused"
	case data.Running:
		state = "running"
	}
	parts := []string{fmt.Sprintf("pomodoro: %s %s [%s]", data.Mode, data.Clock, state)}
	if data.TaskTitle != "" {
		parts = append(parts, "on "+data.TaskTitle)
	}
	parts = append(parts, fmt.Sprintf("done %d", data.CompletedPomodoros))
	line := strings.Join(parts, " | ")
	if data.ProgressView != "" {
		line += "\n" + data.ProgressView
	}
	return lipgloss.NewStyle().Foreground(data.Palette.Accent).Render(line)
}

type ProjectRowData struct {
	Name      string
	Color     string
	OpenTasks int
	Selected  bool
}

type SidebarData struct {
	Projects []ProjectRowData
	AllCount int
	AllView  bool
	Palette  Palette
}

func RenderSidebar(data SidebarData) string {
	var b strings.Builder
	all := fmt.Sprintf("All tasks (%d)", data.AllCount)
	if data.AllView {
		all = "> " + all
	} else {
		all = "  " + all
	}
	b.WriteString(all + "\n")
	for _, project := range data.Projects {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(project.Color)).Render("●")
		row := fmt.Sprintf("%s %s (%d)", dot, project.Name, project.OpenTasks)
		if project.Selected {
			row = "> " + row
		} else {
			row = "  " + row
		}
		b.WriteString(row + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

type StatsData struct {
	Total          int
	Todo           int
	InProgress     int
	Done           int
	Overdue        int
	CompletedToday int
	TotalPomodoros int
}

func RenderStats(data StatsData) string {
	return strings.Join([]string{
		fmt.Sprintf("total:           %d", data.Total),
		fmt.Sprintf("todo:            %d", data.Todo),
		fmt.Sprintf("in progress:     %d", data.InProgress),
		fmt.Sprintf("done:            %d", data.Done),
		fmt.Sprintf("overdue:         %d", data.Overdue),
		fmt.Sprintf("completed today: %d", data.CompletedToday),
		fmt.Sprintf("pomodoros:       %d", data.TotalPomodoros),
	}, "\n")
}

const helpMarkdown = `# taskplan

## Views
- **1** kanban | **2** list | **3** calendar | **v** cycle

## Tasks
- **a** quick add (` + "`!prio @project #tag >deadline`" + `)
- **j/k** select | **h/l** switch column
- **enter** toggle done | **J/K** reorder | **H/L** move across columns
- **d** delete | **s** cycle sort | **f** cycle priority filter
- **o** cycle project scope | **/** search

## Pomodoro
- **p** start/pause on selected task | **P** stop

## App
- **t** theme | **n** notifications | **?** help | **q** quit
`

func RenderHelp(theme string) string {
	return RenderMarkdown(helpMarkdown, theme)
}
