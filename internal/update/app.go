// Package update wires the planner into a bubbletea program. The Model is
// the single writer of the store; the pomodoro timer and the reminder
// checker are driven by tick messages inside the update loop, so no
// goroutine mutates state behind its back.
package update

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/taskplan/internal/pomodoro"
	"github.com/sandeepkv93/taskplan/internal/remind"
	"github.com/sandeepkv93/taskplan/internal/store"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type Notification struct {
	Title string
	Body  string
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

// ExecDesktopNotifier shells out to the platform notification command.
// Command overrides the default program when set.
type ExecDesktopNotifier struct {
	Command string
}

func (n ExecDesktopNotifier) Send(msg Notification) error {
	if n.Command != "" {
		return exec.Command(n.Command, msg.Title, msg.Body).Run()
	}
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", msg.Title, msg.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(msg.Body), escapeAppleScript(msg.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// terminalBell rings the terminal bell. Written to stderr so it reaches
// the terminal even while bubbletea owns stdout.
func terminalBell() {
	fmt.Fprint(os.Stderr, "\a")
}

type inputMode int

const (
	modeNormal inputMode = iota
	modeQuickAdd
	modeSearch
)

type GlobalKeyMap struct {
	Kanban   string
	List     string
	Calendar string
	Cycle    string
	QuickAdd string
	Search   string
	Help     string
	Quit     string
}

type pomodoroTickMsg struct{}

type reminderPollMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type Model struct {
	Store   *store.Store
	Timer   *pomodoro.Timer
	Checker *remind.Checker

	PollInterval time.Duration
	Status       StatusBar
	Keys         GlobalKeyMap
	HelpVisible  bool
	Quitting     bool

	// kanban/list selection
	column int
	cursor int

	// month shown in the calendar view
	calendarMonth time.Time

	mode             inputMode
	quickAddInput    textinput.Model
	searchInput      textinput.Model
	pomodoroProgress progress.Model

	width  int
	height int

	now func() time.Time
}

// RuntimeConfig carries the environment-level settings the TUI needs.
type RuntimeConfig struct {
	PollInterval time.Duration
	Notifier     DesktopNotifier
	// Alert sounds when a pomodoro phase ends and sound is enabled.
	// Defaults to the terminal bell.
	Alert func()
}

func NewModel(s *store.Store, cfg RuntimeConfig) Model {
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NoopDesktopNotifier{}
	}
	alert := cfg.Alert
	if alert == nil {
		alert = terminalBell
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = time.Minute
	}

	quickAdd := textinput.New()
	quickAdd.Placeholder = "task title !prio @project #tag >deadline"
	quickAdd.CharLimit = 200
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 100

	checker := remind.NewChecker(func(title, body string) {
		_ = notifier.Send(Notification{Title: title, Body: body})
	}, s.NotificationsEnabled())

	timer := pomodoro.NewTimer(s.PomodoroSettings(), pomodoro.Hooks{
		Notify: func(title, body string) {
			_ = notifier.Send(Notification{Title: title, Body: body})
		},
		Alert: alert,
		PomodoroComplete: func(taskID string) {
			_ = s.IncrementPomodoro(context.Background(), taskID)
		},
	})

	m := Model{
		Store:        s,
		Timer:        timer,
		Checker:      checker,
		PollInterval: poll,
		Keys: GlobalKeyMap{
			Kanban:   "1",
			List:     "2",
			Calendar: "3",
			Cycle:    "v",
			QuickAdd: "a",
			Search:   "/",
			Help:     "?",
			Quit:     "q",
		},
		quickAddInput:    quickAdd,
		searchInput:      search,
		pomodoroProgress: progress.New(progress.WithDefaultGradient()),
		now:              time.Now,
	}
	m.calendarMonth = m.now()
	return m
}
