package activity

import (
	"sync"
	"time"

	"proofit/internal/domain"
)

// PathForm is the run reducer: a stopwatch plus free-text distance, pace and
// elevation fields. While the timer runs it owns the duration field,
// rewriting it with the formatted clock on every tick; manual duration edits
// are only honored before the timer has been started. Pace and elevation are
// never derived from distance or duration.
type PathForm struct {
	mu      sync.Mutex
	session *Session
	timer   *Timer
	started bool
	data    domain.PathData
}

func NewPathForm(session *Session, tick time.Duration) *PathForm {
	f := &PathForm{
		session: session,
		data:    domain.PathData{DistanceUnit: domain.UnitMiles},
	}
	if current, ok := session.Data().(domain.PathData); ok {
		f.data = current
	}
	f.timer = NewTimer(tick, f.onTick)
	return f
}

// StartTimer starts the run clock at zero. Restarting mid-run resets it.
func (f *PathForm) StartTimer() {
	f.mu.Lock()
	f.started = true
	f.mu.Unlock()
	f.timer.Start()
}

func (f *PathForm) TogglePause() {
	f.timer.TogglePause()
}

func (f *PathForm) Stop() {
	f.timer.Stop()
}

func (f *PathForm) Timer() *Timer {
	return f.timer
}

func (f *PathForm) onTick(elapsed int) {
	f.mu.Lock()
	f.data.Duration = FormatClock(elapsed)
	f.pushLocked()
	f.mu.Unlock()
}

func (f *PathForm) SetDistance(distance string) {
	f.mu.Lock()
	f.data.Distance = distance
	f.pushLocked()
	f.mu.Unlock()
}

func (f *PathForm) SetDistanceUnit(unit domain.DistanceUnit) {
	f.mu.Lock()
	f.data.DistanceUnit = unit
	f.pushLocked()
	f.mu.Unlock()
}

// SetDuration applies a manual duration edit. Once the timer has started the
// ticks own this field and manual edits are dropped.
func (f *PathForm) SetDuration(duration string) {
	f.mu.Lock()
	if !f.started {
		f.data.Duration = duration
		f.pushLocked()
	}
	f.mu.Unlock()
}

func (f *PathForm) SetPace(pace string) {
	f.mu.Lock()
	f.data.Pace = pace
	f.pushLocked()
	f.mu.Unlock()
}

func (f *PathForm) SetElevation(elevation string) {
	f.mu.Lock()
	f.data.Elevation = elevation
	f.pushLocked()
	f.mu.Unlock()
}

func (f *PathForm) Data() domain.PathData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *PathForm) pushLocked() {
	_ = f.session.SetData(f.data)
}
