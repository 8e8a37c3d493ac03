package store

import (
	"context"
	"testing"

	"github.com/sandeepkv93/taskplan/internal/model"
)

func TestCreateProjectDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())

	project, err := s.CreateProject(ctx, "  Web  ", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.Name != "Web" || project.Color != model.DefaultProjectColor {
		t.Fatalf("project = %+v", project)
	}

	if _, err := s.CreateProject(ctx, "", ""); err == nil {
		t.Fatal("expected error for blank name")
	}
	if _, err := s.CreateProject(ctx, "Bad", "red"); err == nil {
		t.Fatal("expected error for malformed color")
	}
}

func TestUpdateProject(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	project, err := s.CreateProject(ctx, "Web", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Website"
	color := "#22c55e"
	updated, found, err := s.UpdateProject(ctx, project.ID, ProjectPatch{Name: &name, Color: &color})
	if err != nil || !found {
		t.Fatalf("update: found=%v err=%v", found, err)
	}
	if updated.Name != "Website" || updated.Color != "#22c55e" {
		t.Fatalf("updated = %+v", updated)
	}

	if _, found, err := s.UpdateProject(ctx, "missing", ProjectPatch{}); err != nil || found {
		t.Fatalf("unknown id: found=%v err=%v, want silent no-op", found, err)
	}
}

func TestDeleteProjectDetachesTasks(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, newMemKV())
	project, err := s.CreateProject(ctx, "Web", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	task := mustCreate(t, s, TaskParams{Title: "a", ProjectID: project.ID})
	if err := s.SelectProject(ctx, project.ID); err != nil {
		t.Fatalf("select: %v", err)
	}

	removed, err := s.DeleteProject(ctx, project.ID)
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}
	detached, _ := s.Task(task.ID)
	if detached.ProjectID != "" {
		t.Fatalf("task still references deleted project: %+v", detached)
	}
	if s.CurrentProject() != "" {
		t.Fatalf("currentProject = %q, want cleared", s.CurrentProject())
	}

	if removed, err := s.DeleteProject(ctx, "missing"); err != nil || removed {
		t.Fatalf("unknown id: removed=%v err=%v, want silent no-op", removed, err)
	}
}
