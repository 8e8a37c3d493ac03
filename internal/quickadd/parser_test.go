package quickadd

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/sandeepkv93/taskplan/internal/model"
)

var parseNow = time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC)

func resolveTestProject(name string) string {
	if name == "web" || name == "website" {
		return "proj-web"
	}
	return ""
}

func TestParseFullGrammar(t *testing.T) {
	draft, err := Parse("Fix login !h @web #bug #auth >2026-03-15", model.StatusTodo, parseNow, resolveTestProject)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Draft{
		Title:     "Fix login",
		Priority:  model.PriorityHigh,
		ProjectID: "proj-web",
		Tags:      []string{"bug", "auth"},
		Deadline:  "2026-03-15",
		Status:    model.StatusTodo,
	}
	if !reflect.DeepEqual(draft, want) {
		t.Fatalf("draft mismatch:\n got %+v\nwant %+v", draft, want)
	}
}

func TestParsePriorityTokens(t *testing.T) {
	tests := []struct {
		input string
		want  model.Priority
	}{
		{"task !h", model.PriorityHigh},
		{"task !HIGH", model.PriorityHigh},
		{"task !m", model.PriorityMedium},
		{"task !low", model.PriorityLow},
		{"task !hurry", model.PriorityMedium}, // no word boundary match, default
		{"plain task", model.PriorityMedium},
	}

	for _, tt := range tests {
		draft, err := Parse(tt.input, model.StatusTodo, parseNow, nil)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.input, err)
		}
		if draft.Priority != tt.want {
			t.Errorf("parse %q: priority = %s, want %s", tt.input, draft.Priority, tt.want)
		}
	}
}

func TestParseRelativeDeadlines(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"task >heute", "2026-03-09"},
		{"task >today", "2026-03-09"},
		{"task >morgen", "2026-03-10"},
		{"task >Tomorrow", "2026-03-10"},
		{"task >2026-12-24", "2026-12-24"},
		{"task >whenever", ""}, // unrecognized, token still stripped
	}

	for _, tt := range tests {
		draft, err := Parse(tt.input, model.StatusTodo, parseNow, nil)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.input, err)
		}
		if draft.Deadline != tt.want {
			t.Errorf("parse %q: deadline = %q, want %q", tt.input, draft.Deadline, tt.want)
		}
		if draft.Title != "task" {
			t.Errorf("parse %q: title = %q, want %q", tt.input, draft.Title, "task")
		}
	}
}

func TestParseUnresolvedProjectStripped(t *testing.T) {
	draft, err := Parse("call dentist @personal", model.StatusTodo, parseNow, resolveTestProject)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.ProjectID != "" {
		t.Fatalf("projectID = %q, want empty", draft.ProjectID)
	}
	if draft.Title != "call dentist" {
		t.Fatalf("title = %q, want %q", draft.Title, "call dentist")
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	draft, err := Parse("  write   report  #q3   >heute ", model.StatusInProgress, parseNow, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if draft.Title != "write report" {
		t.Fatalf("title = %q, want %q", draft.Title, "write report")
	}
	if draft.Status != model.StatusInProgress {
		t.Fatalf("status = %s, want %s", draft.Status, model.StatusInProgress)
	}
}

func TestParseEmptyTitleRejected(t *testing.T) {
	if _, err := Parse("!h #tag >heute", model.StatusTodo, parseNow, nil); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("err = %v, want ErrEmptyTitle", err)
	}
}
