package activity

import (
	"sync"
	"time"

	"proofit/internal/domain"
)

const (
	minSessions = 1
	maxSessions = 12

	minScore = 1
	maxScore = 5
)

// DeepForm is the focus session reducer: a pomodoro-style timer that rewrites
// the duration field as "Xh YYm" on every tick, a bounded session counter and
// a 1-5 focus score.
type DeepForm struct {
	mu      sync.Mutex
	session *Session
	timer   *Timer
	started bool
	data    domain.DeepData
}

func NewDeepForm(session *Session, tick time.Duration) *DeepForm {
	f := &DeepForm{
		session: session,
		data:    domain.DeepData{Sessions: 1, FocusScore: 3},
	}
	if current, ok := session.Data().(domain.DeepData); ok {
		f.data = current
	}
	f.timer = NewTimer(tick, f.onTick)
	return f
}

// StartTimer starts the focus clock at zero.
func (f *DeepForm) StartTimer() {
	f.mu.Lock()
	f.started = true
	f.mu.Unlock()
	f.timer.Start()
}

func (f *DeepForm) TogglePause() {
	f.timer.TogglePause()
}

// ResetTimer returns the clock to idle and writes the zero duration back
// into the session data.
func (f *DeepForm) ResetTimer() {
	f.timer.Reset()
	f.mu.Lock()
	f.started = false
	f.data.Duration = "0h 00m"
	f.pushLocked()
	f.mu.Unlock()
}

func (f *DeepForm) Stop() {
	f.timer.Stop()
}

func (f *DeepForm) Timer() *Timer {
	return f.timer
}

func (f *DeepForm) onTick(elapsed int) {
	f.mu.Lock()
	f.data.Duration = FormatHoursMinutes(elapsed)
	f.pushLocked()
	f.mu.Unlock()
}

// SetDuration applies a manual duration edit; ignored once the timer runs.
func (f *DeepForm) SetDuration(duration string) {
	f.mu.Lock()
	if !f.started {
		f.data.Duration = duration
		f.pushLocked()
	}
	f.mu.Unlock()
}

// SetSessions sets the completed session count, clamped to [1,12].
func (f *DeepForm) SetSessions(sessions int) {
	f.mu.Lock()
	f.data.Sessions = clamp(sessions, minSessions, maxSessions)
	f.pushLocked()
	f.mu.Unlock()
}

func (f *DeepForm) SetTask(task string) {
	f.mu.Lock()
	f.data.Task = task
	f.pushLocked()
	f.mu.Unlock()
}

// SetFocusScore sets the focus rating, clamped to [1,5].
func (f *DeepForm) SetFocusScore(score int) {
	f.mu.Lock()
	f.data.FocusScore = clamp(score, minScore, maxScore)
	f.pushLocked()
	f.mu.Unlock()
}

func (f *DeepForm) Data() domain.DeepData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *DeepForm) pushLocked() {
	_ = f.session.SetData(f.data)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
