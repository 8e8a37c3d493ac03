package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ErrInvalidColor = errors.New("model: invalid project color")

// DefaultProjectColor is used when a project is created without one.
const DefaultProjectColor = "#6366f1"

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p Project) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("model: project id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("model: project name is required")
	}
	if !hexColorPattern.MatchString(p.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, p.Color)
	}
	if p.CreatedAt.IsZero() {
		return errors.New("model: project created_at is required")
	}
	return nil
}
