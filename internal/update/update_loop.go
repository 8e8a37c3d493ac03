package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskplan/internal/model"
	"github.com/sandeepkv93/taskplan/internal/store"
)

func pomodoroTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return pomodoroTickMsg{} })
}

func reminderPollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return reminderPollMsg{} })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(reminderPollCmd(m.PollInterval), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeQuickAdd:
			return m.handleQuickAddKey(typed)
		case modeSearch:
			return m.handleSearchKey(typed)
		}
		return m.handleNormalKey(typed)

	case pomodoroTickMsg:
		return m.onPomodoroTick()

	case reminderPollMsg:
		m.Checker.SetEnabled(m.Store.NotificationsEnabled())
		m.Checker.Check(m.now(), m.Store.Tasks())
		return m, reminderPollCmd(m.PollInterval)

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	}

	return m, nil
}

func (m Model) onPomodoroTick() (tea.Model, tea.Cmd) {
	if !m.Timer.Active() {
		return m, nil
	}
	before := m.Timer.Mode()
	m.Timer.Tick()
	if after := m.Timer.Mode(); after != before {
		m.Status = StatusBar{Text: fmt.Sprintf("pomodoro: %s finished, %s started", before, after)}
	}
	return m, pomodoroTickCmd()
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit

	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil

	case m.Keys.Kanban:
		m.warnOnErr(m.Store.SetView(ctx, store.ViewKanban))
		m.clampCursor()
		return m, nil
	case m.Keys.List:
		m.warnOnErr(m.Store.SetView(ctx, store.ViewList))
		m.clampCursor()
		return m, nil
	case m.Keys.Calendar:
		m.warnOnErr(m.Store.SetView(ctx, store.ViewCalendar))
		return m, nil
	case m.Keys.Cycle:
		m.warnOnErr(m.Store.CycleView(ctx))
		m.clampCursor()
		return m, nil

	case m.Keys.QuickAdd:
		m.mode = modeQuickAdd
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
		return m, nil

	case m.Keys.Search:
		m.mode = modeSearch
		m.searchInput.SetValue(m.Store.Search())
		m.searchInput.Focus()
		return m, nil

	case "j", "down":
		m.cursor++
		m.clampCursor()
		return m, nil
	case "k", "up":
		m.cursor--
		m.clampCursor()
		return m, nil
	case "h", "left":
		if m.Store.View() == store.ViewCalendar {
			m.calendarMonth = m.calendarMonth.AddDate(0, -1, 0)
			return m, nil
		}
		m.column--
		m.clampCursor()
		return m, nil
	case "l", "right":
		if m.Store.View() == store.ViewCalendar {
			m.calendarMonth = m.calendarMonth.AddDate(0, 1, 0)
			return m, nil
		}
		m.column++
		m.clampCursor()
		return m, nil

	case "enter", " ":
		if task, ok := m.selectedTask(); ok {
			_, _, err := m.Store.ToggleComplete(ctx, task.ID)
			m.warnOnErr(err)
			m.clampCursor()
		}
		return m, nil

	case "d":
		if task, ok := m.selectedTask(); ok {
			removed, err := m.Store.DeleteTask(ctx, task.ID)
			m.warnOnErr(err)
			if removed {
				m.Timer.TaskDeleted(task.ID)
				m.Checker.TaskDeleted(task.ID)
				m.Status = StatusBar{Text: "task deleted"}
			}
			m.clampCursor()
		}
		return m, nil

	case "J":
		return m.moveSelected(ctx, m.currentStatus(), m.cursor+1)
	case "K":
		return m.moveSelected(ctx, m.currentStatus(), m.cursor-1)
	case "H":
		if status, ok := adjacentStatus(m.currentStatus(), -1); ok {
			next, cmd := m.moveSelected(ctx, status, m.cursor)
			moved := next.(Model)
			moved.column--
			moved.clampCursor()
			return moved, cmd
		}
		return m, nil
	case "L":
		if status, ok := adjacentStatus(m.currentStatus(), 1); ok {
			next, cmd := m.moveSelected(ctx, status, m.cursor)
			moved := next.(Model)
			moved.column++
			moved.clampCursor()
			return moved, cmd
		}
		return m, nil

	case "p":
		return m.togglePomodoro()
	case "P":
		m.Timer.Stop()
		m.Status = StatusBar{Text: "pomodoro stopped"}
		return m, nil

	case "s":
		m.warnOnErr(m.Store.SetSortBy(nextSort(m.Store.SortBy())))
		return m, nil
	case "f":
		m.warnOnErr(m.Store.SetPriorityFilter(nextPriorityFilter(m.Store.PriorityFilter())))
		m.clampCursor()
		return m, nil

	case "o":
		m.warnOnErr(m.Store.SelectProject(ctx, nextProject(m.Store.Projects(), m.Store.CurrentProject())))
		m.clampCursor()
		return m, nil

	case "t":
		m.warnOnErr(m.Store.ToggleTheme(ctx))
		return m, nil
	case "n":
		enabled := !m.Store.NotificationsEnabled()
		m.warnOnErr(m.Store.SetNotificationsEnabled(ctx, enabled))
		m.Checker.SetEnabled(enabled)
		if enabled {
			// check right away; the regular poll takes over afterwards
			m.Checker.Check(m.now(), m.Store.Tasks())
			m.Status = StatusBar{Text: "notifications on"}
		} else {
			m.Status = StatusBar{Text: "notifications off"}
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleQuickAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.quickAddInput.Blur()
		return m, nil
	case "enter":
		input := m.quickAddInput.Value()
		m.mode = modeNormal
		m.quickAddInput.Blur()
		task, err := m.Store.CreateFromQuickAdd(context.Background(), input, m.currentStatus())
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: fmt.Sprintf("added %q", task.Title)}
		return m, nil
	}
	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.Store.SetSearch("")
		m.clampCursor()
		return m, nil
	case "enter":
		m.mode = modeNormal
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.Store.SetSearch(m.searchInput.Value())
	m.clampCursor()
	return m, cmd
}

func (m Model) togglePomodoro() (tea.Model, tea.Cmd) {
	if m.Timer.Active() {
		m.Timer.Pause()
		m.Status = StatusBar{Text: "pomodoro paused"}
		return m, nil
	}

	taskID := m.Timer.TaskID()
	if task, ok := m.selectedTask(); ok {
		taskID = task.ID
	}
	if taskID == "" {
		m.Status = StatusBar{Text: "select a task to start a pomodoro", IsError: true}
		return m, nil
	}
	m.Timer.Start(taskID)
	m.Status = StatusBar{Text: "pomodoro running"}
	return m, pomodoroTickCmd()
}

func (m Model) moveSelected(ctx context.Context, status model.Status, index int) (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}
	// Keyboard moves stay within the column; a negative index would
	// otherwise send the task to the bottom.
	if index < 0 {
		index = 0
	}
	m.warnOnErr(m.Store.MoveTask(ctx, task.ID, status, index))
	m.cursor = index
	m.clampCursor()
	return m, nil
}

// currentStatus is the kanban column the selection sits in; list and
// calendar views create into todo.
func (m Model) currentStatus() model.Status {
	if m.Store.View() != store.ViewKanban {
		if task, ok := m.selectedTask(); ok {
			return task.Status
		}
		return model.StatusTodo
	}
	return model.Statuses()[m.column]
}

func adjacentStatus(status model.Status, delta int) (model.Status, bool) {
	all := model.Statuses()
	for i, s := range all {
		if s == status {
			j := i + delta
			if j < 0 || j >= len(all) {
				return status, false
			}
			return all[j], true
		}
	}
	return status, false
}

func nextSort(current store.SortBy) store.SortBy {
	switch current {
	case store.SortByCreated:
		return store.SortByPriority
	case store.SortByPriority:
		return store.SortByDeadline
	default:
		return store.SortByCreated
	}
}

// nextProject cycles the project scope: all tasks, then each project in
// creation order, then back to all.
func nextProject(projects []model.Project, current string) string {
	if current == "" {
		if len(projects) == 0 {
			return ""
		}
		return projects[0].ID
	}
	for i, p := range projects {
		if p.ID == current {
			if i+1 < len(projects) {
				return projects[i+1].ID
			}
			return ""
		}
	}
	return ""
}

func nextPriorityFilter(current model.Priority) model.Priority {
	switch current {
	case "":
		return model.PriorityHigh
	case model.PriorityHigh:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityLow
	default:
		return ""
	}
}

func (m *Model) warnOnErr(err error) {
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	}
}

// visibleRows is the task list the cursor moves over in the active view.
func (m Model) visibleRows() []model.Task {
	switch m.Store.View() {
	case store.ViewList:
		return m.Store.FilteredTasks()
	case store.ViewKanban:
		return m.Store.TasksByStatus(model.Statuses()[m.column])
	default:
		return nil
	}
}

func (m *Model) clampCursor() {
	if m.column < 0 {
		m.column = 0
	}
	if max := len(model.Statuses()) - 1; m.column > max {
		m.column = max
	}
	rows := m.visibleRows()
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	rows := m.visibleRows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return model.Task{}, false
	}
	return rows[m.cursor], true
}
