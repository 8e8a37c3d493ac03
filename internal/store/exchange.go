package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/taskplan/internal/model"
)

// ErrInvalidImport marks a rejected import payload. Nothing is mutated
// when it is returned.
var ErrInvalidImport = errors.New("store: invalid import payload")

// backupVersion tags exported files; imports accept any payload that
// carries well-formed task and project arrays, so old backups restore.
const backupVersion = "2.0"

// Backup is the export file format.
type Backup struct {
	Tasks      []model.Task    `json:"tasks"`
	Projects   []model.Project `json:"projects"`
	ExportDate time.Time       `json:"exportDate"`
	Version    string          `json:"version"`
}

// Export serializes the current tasks and projects as an indented backup
// document.
func (s *Store) Export() ([]byte, error) {
	backup := Backup{
		Tasks:      s.tasks,
		Projects:   s.projects,
		ExportDate: s.now(),
		Version:    backupVersion,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: export: %w", err)
	}
	return data, nil
}

// Import replaces tasks and projects from a backup document. Each array is
// applied only when present; an absent array leaves the current data
// untouched. Only the payload shape is checked, not individual entries,
// so backups written by older versions still restore. Both arrays are
// decoded before anything is replaced, so a rejected import never
// partially mutates the store.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var payload struct {
		Tasks    json.RawMessage `json:"tasks"`
		Projects json.RawMessage `json:"projects"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	tasks := s.tasks
	if len(payload.Tasks) > 0 && string(payload.Tasks) != "null" {
		var imported []model.Task
		if err := json.Unmarshal(payload.Tasks, &imported); err != nil {
			return fmt.Errorf("%w: tasks: %v", ErrInvalidImport, err)
		}
		if imported == nil {
			imported = []model.Task{}
		}
		tasks = imported
	}

	projects := s.projects
	if len(payload.Projects) > 0 && string(payload.Projects) != "null" {
		var imported []model.Project
		if err := json.Unmarshal(payload.Projects, &imported); err != nil {
			return fmt.Errorf("%w: projects: %v", ErrInvalidImport, err)
		}
		if imported == nil {
			imported = []model.Project{}
		}
		projects = imported
	}

	s.tasks = tasks
	s.projects = projects
	return s.persist(ctx)
}
