package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Keys of the persisted state layout. Everything the planner remembers
// between runs lives under one of these.
const (
	KeyTasks                = "tasks"
	KeyProjects             = "projects"
	KeyTheme                = "theme"
	KeyView                 = "view"
	KeyCurrentProject       = "currentProject"
	KeyPomodoroSettings     = "pomodoroSettings"
	KeyNotificationsEnabled = "notificationsEnabled"
)

// AllKeys lists every persisted key, used by Clear.
func AllKeys() []string {
	return []string{
		KeyTasks,
		KeyProjects,
		KeyTheme,
		KeyView,
		KeyCurrentProject,
		KeyPomodoroSettings,
		KeyNotificationsEnabled,
	}
}

// Store is a flat key-value store holding string values. Missing keys
// return ErrNotFound.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
