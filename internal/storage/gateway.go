package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/sandeepkv93/taskplan/internal/model"
	"github.com/sandeepkv93/taskplan/internal/pomodoro"
)

// State is the full persisted snapshot of the planner.
type State struct {
	Tasks                []model.Task
	Projects             []model.Project
	Theme                string
	View                 string
	CurrentProject       string
	PomodoroSettings     pomodoro.Settings
	NotificationsEnabled bool
}

func DefaultState() State {
	return State{
		Tasks:            []model.Task{},
		Projects:         []model.Project{},
		Theme:            "light",
		View:             "kanban",
		PomodoroSettings: pomodoro.DefaultSettings(),
	}
}

// Gateway serializes the domain state to and from the key-value store.
// It owns no business logic.
type Gateway struct {
	kv Store
}

func NewGateway(kv Store) *Gateway {
	return &Gateway{kv: kv}
}

func (g *Gateway) Save(ctx context.Context, state State) error {
	tasks, err := json.Marshal(state.Tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	projects, err := json.Marshal(state.Projects)
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}
	settings, err := json.Marshal(state.PomodoroSettings)
	if err != nil {
		return fmt.Errorf("marshal pomodoro settings: %w", err)
	}

	writes := []struct {
		key   string
		value string
	}{
		{KeyTasks, string(tasks)},
		{KeyProjects, string(projects)},
		{KeyTheme, state.Theme},
		{KeyView, state.View},
		{KeyCurrentProject, state.CurrentProject},
		{KeyPomodoroSettings, string(settings)},
		{KeyNotificationsEnabled, strconv.FormatBool(state.NotificationsEnabled)},
	}
	for _, w := range writes {
		if err := g.kv.Set(ctx, w.key, w.value); err != nil {
			return fmt.Errorf("save %s: %w", w.key, err)
		}
	}
	return nil
}

// Load reads the snapshot, falling back to defaults for any key that is
// absent or unparsable. The returned error reports read failures; the
// returned state is always usable.
func (g *Gateway) Load(ctx context.Context) (State, error) {
	state := DefaultState()
	var errs []error

	if raw, err := g.read(ctx, KeyTasks, &errs); raw != "" && err == nil {
		var tasks []model.Task
		if json.Unmarshal([]byte(raw), &tasks) == nil {
			state.Tasks = tasks
		}
	}
	if raw, err := g.read(ctx, KeyProjects, &errs); raw != "" && err == nil {
		var projects []model.Project
		if json.Unmarshal([]byte(raw), &projects) == nil {
			state.Projects = projects
		}
	}
	if raw, err := g.read(ctx, KeyTheme, &errs); raw != "" && err == nil {
		state.Theme = raw
	}
	if raw, err := g.read(ctx, KeyView, &errs); raw != "" && err == nil {
		state.View = raw
	}
	if raw, err := g.read(ctx, KeyCurrentProject, &errs); err == nil {
		state.CurrentProject = raw
	}
	if raw, err := g.read(ctx, KeyPomodoroSettings, &errs); raw != "" && err == nil {
		var settings pomodoro.Settings
		if json.Unmarshal([]byte(raw), &settings) == nil {
			state.PomodoroSettings = settings.Normalize()
		}
	}
	if raw, err := g.read(ctx, KeyNotificationsEnabled, &errs); raw != "" && err == nil {
		state.NotificationsEnabled = raw == "true"
	}

	return state, errors.Join(errs...)
}

// Clear removes every persisted key.
func (g *Gateway) Clear(ctx context.Context) error {
	for _, key := range AllKeys() {
		if err := g.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}

func (g *Gateway) read(ctx context.Context, key string, errs *[]error) (string, error) {
	value, err := g.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			*errs = append(*errs, fmt.Errorf("load %s: %w", key, err))
		}
		return "", err
	}
	return value, nil
}
