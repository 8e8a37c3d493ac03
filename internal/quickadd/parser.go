// Package quickadd turns a single free-text line into a structured task
// draft. Tokens may appear anywhere in the line and are stripped from the
// title after extraction:
//
//	!h !high !m !medium !l !low   priority
//	@name                         project (substring match, first wins)
//	#tag                          tags, in order of appearance
//	>2026-03-10 >heute >morgen    deadline (also: today, tomorrow)
package quickadd

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/sandeepkv93/taskplan/internal/model"
)

var ErrEmptyTitle = errors.New("quickadd: empty title after extraction")

var (
	priorityPattern = regexp.MustCompile(`(?i)!(h|high|m|medium|l|low)\b`)
	projectPattern  = regexp.MustCompile(`@(\S+)`)
	tagPattern      = regexp.MustCompile(`#(\S+)`)
	deadlinePattern = regexp.MustCompile(`>(\S+)`)
	isoDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Draft is a parsed task draft ready for store.CreateTask.
type Draft struct {
	Title     string
	Priority  model.Priority
	ProjectID string
	Tags      []string
	Deadline  string
	Status    model.Status
}

// ProjectResolver maps a lowercased @name token to a project id. An empty
// return means no project matched; the token is stripped either way.
type ProjectResolver func(name string) string

// Parse extracts metadata tokens from input. now anchors the relative
// deadline keywords.
func Parse(input string, defaultStatus model.Status, now time.Time, resolve ProjectResolver) (Draft, error) {
	draft := Draft{
		Title:    input,
		Priority: model.PriorityMedium,
		Tags:     []string{},
		Status:   defaultStatus,
	}

	if match := priorityPattern.FindStringSubmatch(draft.Title); match != nil {
		switch strings.ToLower(match[1]) {
		case "h", "high":
			draft.Priority = model.PriorityHigh
		case "l", "low":
			draft.Priority = model.PriorityLow
		default:
			draft.Priority = model.PriorityMedium
		}
		draft.Title = strings.Replace(draft.Title, match[0], "", 1)
	}

	if match := projectPattern.FindStringSubmatch(draft.Title); match != nil {
		if resolve != nil {
			draft.ProjectID = resolve(strings.ToLower(match[1]))
		}
		draft.Title = strings.Replace(draft.Title, match[0], "", 1)
	}

	for _, match := range tagPattern.FindAllStringSubmatch(draft.Title, -1) {
		draft.Tags = append(draft.Tags, match[1])
	}
	draft.Title = tagPattern.ReplaceAllString(draft.Title, "")

	if match := deadlinePattern.FindStringSubmatch(draft.Title); match != nil {
		switch value := strings.ToLower(match[1]); {
		case value == "heute" || value == "today":
			draft.Deadline = now.Format(model.DateLayout)
		case value == "morgen" || value == "tomorrow":
			draft.Deadline = now.AddDate(0, 0, 1).Format(model.DateLayout)
		case isoDatePattern.MatchString(value):
			draft.Deadline = value
		}
		draft.Title = strings.Replace(draft.Title, match[0], "", 1)
	}

	draft.Title = strings.Join(strings.Fields(draft.Title), " ")
	if draft.Title == "" {
		return Draft{}, ErrEmptyTitle
	}
	return draft, nil
}
