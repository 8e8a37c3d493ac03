package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/taskplan/internal/model"
)

// CreateProject adds a project. An empty color falls back to the default
// accent.
func (s *Store) CreateProject(ctx context.Context, name, color string) (model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Project{}, fmt.Errorf("store: project name is required")
	}
	if color == "" {
		color = model.DefaultProjectColor
	}
	project := model.Project{
		ID:        s.newID(),
		Name:      name,
		Color:     color,
		CreatedAt: s.now(),
	}
	if err := project.Validate(); err != nil {
		return model.Project{}, err
	}
	s.projects = append(s.projects, project)
	return project, s.persist(ctx)
}

// ProjectPatch updates a project field-by-field; nil fields are left
// untouched.
type ProjectPatch struct {
	Name  *string
	Color *string
}

// UpdateProject applies a patch. An unknown id is a silent no-op.
func (s *Store) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (model.Project, bool, error) {
	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Project{}, false, nil
	}

	project := s.projects[idx]
	if patch.Name != nil {
		if name := strings.TrimSpace(*patch.Name); name != "" {
			project.Name = name
		}
	}
	if patch.Color != nil && *patch.Color != "" {
		project.Color = *patch.Color
	}
	if err := project.Validate(); err != nil {
		return model.Project{}, true, err
	}

	s.projects[idx] = project
	return project, true, s.persist(ctx)
}

// DeleteProject removes a project, detaches its tasks and drops it from
// the current selection. Tasks survive their project.
func (s *Store) DeleteProject(ctx context.Context, id string) (bool, error) {
	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	for i := range s.tasks {
		if s.tasks[i].ProjectID == id {
			s.tasks[i].ProjectID = ""
		}
	}
	if s.currentProject == id {
		s.currentProject = ""
	}
	return true, s.persist(ctx)
}
