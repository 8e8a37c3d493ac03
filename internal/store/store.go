// Package store holds the in-memory planner state and is the only writer
// of the persisted snapshot. Every mutation is applied in memory first and
// then written through the storage gateway; a failed write is reported to
// the caller as a warning while the in-memory state keeps operating.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/taskplan/internal/model"
	"github.com/sandeepkv93/taskplan/internal/pomodoro"
	"github.com/sandeepkv93/taskplan/internal/storage"
)

// View names the three task layouts.
type View string

const (
	ViewKanban   View = "kanban"
	ViewList     View = "list"
	ViewCalendar View = "calendar"
)

func (v View) IsValid() bool {
	switch v {
	case ViewKanban, ViewList, ViewCalendar:
		return true
	default:
		return false
	}
}

// Theme names the two color schemes.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// SortBy names the list-view sort orders.
type SortBy string

const (
	SortByCreated  SortBy = "created"
	SortByPriority SortBy = "priority"
	SortByDeadline SortBy = "deadline"
)

func (s SortBy) IsValid() bool {
	switch s {
	case SortByCreated, SortByPriority, SortByDeadline:
		return true
	default:
		return false
	}
}

// Store is the planner's domain state. It is not safe for concurrent use;
// the TUI update loop is its single caller.
type Store struct {
	gateway *storage.Gateway

	tasks                []model.Task
	projects             []model.Project
	theme                Theme
	view                 View
	currentProject       string
	pomodoroSettings     pomodoro.Settings
	notificationsEnabled bool

	// session-only view filters, never persisted
	search         string
	priorityFilter model.Priority
	sortBy         SortBy

	now      func() time.Time
	newID    func() string
	onChange func()
}

type Option func(*Store)

// WithClock fixes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource fixes the id generator, for tests.
func WithIDSource(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithChangeHook registers a callback invoked after every successful
// in-memory mutation, before persistence.
func WithChangeHook(fn func()) Option {
	return func(s *Store) { s.onChange = fn }
}

func New(gateway *storage.Gateway, opts ...Option) *Store {
	s := &Store{
		gateway: gateway,
		tasks:   []model.Task{},
		theme:   ThemeLight,
		view:    ViewKanban,
		sortBy:  SortByCreated,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	s.pomodoroSettings = pomodoro.DefaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load hydrates the store from the persisted snapshot. Read failures fall
// back to defaults and are returned as a warning.
func (s *Store) Load(ctx context.Context) error {
	state, err := s.gateway.Load(ctx)
	s.tasks = state.Tasks
	s.projects = state.Projects
	s.theme = Theme(state.Theme)
	if s.theme != ThemeDark {
		s.theme = ThemeLight
	}
	s.view = View(state.View)
	if !s.view.IsValid() {
		s.view = ViewKanban
	}
	s.currentProject = state.CurrentProject
	s.pomodoroSettings = state.PomodoroSettings.Normalize()
	s.notificationsEnabled = state.NotificationsEnabled
	if err != nil {
		return fmt.Errorf("store: load: %w", err)
	}
	return nil
}

func (s *Store) snapshot() storage.State {
	return storage.State{
		Tasks:                s.tasks,
		Projects:             s.projects,
		Theme:                string(s.theme),
		View:                 string(s.view),
		CurrentProject:       s.currentProject,
		PomodoroSettings:     s.pomodoroSettings,
		NotificationsEnabled: s.notificationsEnabled,
	}
}

// persist writes the current state through the gateway. The in-memory
// mutation has already happened; the caller surfaces the error as a
// warning, not a rollback.
func (s *Store) persist(ctx context.Context) error {
	if s.onChange != nil {
		s.onChange()
	}
	if err := s.gateway.Save(ctx, s.snapshot()); err != nil {
		return fmt.Errorf("store: persist: %w", err)
	}
	return nil
}

func (s *Store) Tasks() []model.Task       { return s.tasks }
func (s *Store) Projects() []model.Project { return s.projects }
func (s *Store) Theme() Theme              { return s.theme }
func (s *Store) View() View                { return s.view }
func (s *Store) CurrentProject() string    { return s.currentProject }
func (s *Store) Search() string            { return s.search }
func (s *Store) SortBy() SortBy            { return s.sortBy }

func (s *Store) PriorityFilter() model.Priority      { return s.priorityFilter }
func (s *Store) PomodoroSettings() pomodoro.Settings { return s.pomodoroSettings }
func (s *Store) NotificationsEnabled() bool          { return s.notificationsEnabled }

// Task looks up a task by id.
func (s *Store) Task(id string) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Project looks up a project by id.
func (s *Store) Project(id string) (model.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme(ctx context.Context) error {
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	return s.persist(ctx)
}

// SetView switches the task layout.
func (s *Store) SetView(ctx context.Context, view View) error {
	if !view.IsValid() {
		return fmt.Errorf("store: unknown view %q", view)
	}
	s.view = view
	return s.persist(ctx)
}

// CycleView advances kanban -> list -> calendar -> kanban.
func (s *Store) CycleView(ctx context.Context) error {
	switch s.view {
	case ViewKanban:
		s.view = ViewList
	case ViewList:
		s.view = ViewCalendar
	default:
		s.view = ViewKanban
	}
	return s.persist(ctx)
}

// SetNotificationsEnabled records the reminder delivery preference.
func (s *Store) SetNotificationsEnabled(ctx context.Context, enabled bool) error {
	s.notificationsEnabled = enabled
	return s.persist(ctx)
}

// UpdatePomodoroSettings stores normalized timer settings.
func (s *Store) UpdatePomodoroSettings(ctx context.Context, settings pomodoro.Settings) error {
	s.pomodoroSettings = settings.Normalize()
	return s.persist(ctx)
}

// ClearAll wipes every task, project and preference, both in memory and
// in the persisted snapshot.
func (s *Store) ClearAll(ctx context.Context) error {
	def := storage.DefaultState()
	s.tasks = def.Tasks
	s.projects = def.Projects
	s.theme = Theme(def.Theme)
	s.view = View(def.View)
	s.currentProject = ""
	s.pomodoroSettings = def.PomodoroSettings
	s.notificationsEnabled = def.NotificationsEnabled
	s.search = ""
	s.priorityFilter = ""
	s.sortBy = SortByCreated
	if s.onChange != nil {
		s.onChange()
	}
	if err := s.gateway.Clear(ctx); err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}
	return nil
}
