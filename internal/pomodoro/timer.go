package pomodoro

type Mode string

const (
	ModeWork      Mode = "work"
	ModeBreak     Mode = "break"
	ModeLongBreak Mode = "longBreak"
)

// Settings are configured in whole minutes and persisted as JSON.
type Settings struct {
	WorkDuration            int  `json:"workDuration"`
	BreakDuration           int  `json:"breakDuration"`
	LongBreakDuration       int  `json:"longBreakDuration"`
	PomodorosUntilLongBreak int  `json:"pomodorosUntilLongBreak"`
	SoundEnabled            bool `json:"soundEnabled"`
}

func DefaultSettings() Settings {
	return Settings{
		WorkDuration:            25,
		BreakDuration:           5,
		LongBreakDuration:       15,
		PomodorosUntilLongBreak: 4,
		SoundEnabled:            true,
	}
}

// Normalize replaces non-positive durations with defaults so imported or
// hand-edited settings cannot stall the countdown.
func (s Settings) Normalize() Settings {
	defaults := DefaultSettings()
	if s.WorkDuration <= 0 {
		s.WorkDuration = defaults.WorkDuration
	}
	if s.BreakDuration <= 0 {
		s.BreakDuration = defaults.BreakDuration
	}
	if s.LongBreakDuration <= 0 {
		s.LongBreakDuration = defaults.LongBreakDuration
	}
	if s.PomodorosUntilLongBreak <= 0 {
		s.PomodorosUntilLongBreak = defaults.PomodorosUntilLongBreak
	}
	return s
}

// DurationSeconds returns the configured countdown length for a mode.
func (s Settings) DurationSeconds(mode Mode) int {
	switch mode {
	case ModeBreak:
		return s.BreakDuration * 60
	case ModeLongBreak:
		return s.LongBreakDuration * 60
	default:
		return s.WorkDuration * 60
	}
}

// Hooks are the timer's outbound side effects. Nil hooks are skipped.
type Hooks struct {
	// Notify delivers a mode-transition notification.
	Notify func(title, body string)
	// Alert plays a single audible alert when sound is enabled.
	Alert func()
	// PomodoroComplete fires after a finished work session with the bound
	// task id, so the owner can bump the task's pomodoro count and persist.
	PomodoroComplete func(taskID string)
}

// Timer is the single process-wide pomodoro state machine. It holds no
// clock of its own; the owner calls Tick once per elapsed second while
// the timer is running.
type Timer struct {
	settings           Settings
	hooks              Hooks
	running            bool
	paused             bool
	taskID             string
	timeLeft           int
	mode               Mode
	completedPomodoros int
}

func NewTimer(settings Settings, hooks Hooks) *Timer {
	normalized := settings.Normalize()
	return &Timer{
		settings: normalized,
		hooks:    hooks,
		mode:     ModeWork,
		timeLeft: normalized.DurationSeconds(ModeWork),
	}
}

func (t *Timer) IsRunning() bool         { return t.running }
func (t *Timer) IsPaused() bool          { return t.paused }
func (t *Timer) TaskID() string          { return t.taskID }
func (t *Timer) TimeLeft() int           { return t.timeLeft }
func (t *Timer) Mode() Mode              { return t.mode }
func (t *Timer) CompletedPomodoros() int { return t.completedPomodoros }
func (t *Timer) Settings() Settings      { return t.settings }

// Active reports whether the countdown is currently decrementing.
func (t *Timer) Active() bool { return t.running && !t.paused }

// Start begins the countdown from idle, or resumes a paused one. A non-empty
// taskID binds that task as the current pomodoro target, replacing any
// previous binding.
func (t *Timer) Start(taskID string) {
	if taskID != "" {
		t.taskID = taskID
	}
	if !t.running {
		t.running = true
		t.paused = false
		return
	}
	if t.paused {
		t.paused = false
	}
}

// Pause halts the countdown, preserving the remaining time. Only valid
// while running.
func (t *Timer) Pause() {
	if t.running && !t.paused {
		t.paused = true
	}
}

// Stop resets the timer to idle: binding cleared, mode back to work,
// countdown back to the full work duration.
func (t *Timer) Stop() {
	t.running = false
	t.paused = false
	t.taskID = ""
	t.mode = ModeWork
	t.timeLeft = t.settings.DurationSeconds(ModeWork)
}

// Tick advances the countdown by one second. On reaching zero it completes
// the current phase, picks the next mode and keeps running in it, so
// sessions chain without manual restarts.
func (t *Timer) Tick() {
	if !t.Active() {
		return
	}
	t.timeLeft--
	if t.timeLeft > 0 {
		return
	}
	t.timeLeft = 0
	t.advance()
}

func (t *Timer) advance() {
	if t.settings.SoundEnabled && t.hooks.Alert != nil {
		t.hooks.Alert()
	}

	var body string
	if t.mode == ModeWork {
		t.completedPomodoros++
		if t.taskID != "" && t.hooks.PomodoroComplete != nil {
			t.hooks.PomodoroComplete(t.taskID)
		}
		if t.completedPomodoros%t.settings.PomodorosUntilLongBreak == 0 {
			t.mode = ModeLongBreak
			body = "Time for a long break!"
		} else {
			t.mode = ModeBreak
			body = "Time for a short break!"
		}
	} else {
		t.mode = ModeWork
		body = "Break over, back to work!"
	}

	t.timeLeft = t.settings.DurationSeconds(t.mode)
	if t.hooks.Notify != nil {
		t.hooks.Notify("Pomodoro", body)
	}
}

// UpdateSettings swaps the configuration. An idle timer picks up the new
// work duration immediately; a running or paused one keeps its current
// countdown.
func (t *Timer) UpdateSettings(settings Settings) {
	t.settings = settings.Normalize()
	if !t.running {
		t.timeLeft = t.settings.DurationSeconds(ModeWork)
	}
}

// TaskDeleted force-stops the timer when its bound task disappears.
// The binding is a weak reference; a deleted task must not keep ticking.
func (t *Timer) TaskDeleted(taskID string) {
	if taskID != "" && t.taskID == taskID {
		t.Stop()
	}
}
