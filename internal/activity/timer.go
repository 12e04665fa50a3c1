package activity

import (
	"fmt"
	"sync"
	"time"
)

// Timer is the per-activity session stopwatch. One tick is one elapsed
// second while running and not paused. Start always resets elapsed to zero;
// there is no resume-from-draft continuation.
//
// A timer created with a positive interval drives itself from a background
// ticker between Start and Stop/Reset. A non-positive interval disables the
// ticker entirely and Tick must be called by hand; tests use this mode.
type Timer struct {
	mu      sync.Mutex
	elapsed int
	running bool
	paused  bool

	interval time.Duration
	onTick   func(elapsed int)
	stop     chan struct{}
}

// NewTimer creates an idle timer. onTick is invoked with the new elapsed
// count after every effective tick; it may be nil.
func NewTimer(interval time.Duration, onTick func(elapsed int)) *Timer {
	return &Timer{interval: interval, onTick: onTick}
}

// Start resets elapsed to 0 and begins ticking. Starting an already running
// timer restarts it from zero.
func (t *Timer) Start() {
	t.mu.Lock()
	t.stopTickerLocked()
	t.elapsed = 0
	t.running = true
	t.paused = false
	if t.interval > 0 {
		t.stop = make(chan struct{})
		go t.run(t.stop)
	}
	t.mu.Unlock()
}

func (t *Timer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

// Tick advances the clock by one second. It is a no-op unless the timer is
// running and not paused, so a straggling ticker fire after a pause or stop
// cannot corrupt the count.
func (t *Timer) Tick() {
	t.mu.Lock()
	if !t.running || t.paused {
		t.mu.Unlock()
		return
	}
	t.elapsed++
	elapsed := t.elapsed
	onTick := t.onTick
	t.mu.Unlock()

	if onTick != nil {
		onTick(elapsed)
	}
}

// TogglePause flips between ticking and holding. Pausing keeps the elapsed
// count; resuming continues from it.
func (t *Timer) TogglePause() {
	t.mu.Lock()
	if t.running {
		t.paused = !t.paused
	}
	t.mu.Unlock()
}

// Reset returns the timer to idle with elapsed zero and releases the ticker.
func (t *Timer) Reset() {
	t.mu.Lock()
	t.stopTickerLocked()
	t.elapsed = 0
	t.running = false
	t.paused = false
	t.mu.Unlock()
}

// Stop halts the ticker without clearing the elapsed count. Used on screen
// unmount so a torn-down reducer stops receiving callbacks.
func (t *Timer) Stop() {
	t.mu.Lock()
	t.stopTickerLocked()
	t.running = false
	t.paused = false
	t.mu.Unlock()
}

func (t *Timer) stopTickerLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Timer) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// FormatClock renders seconds as M:SS, or H:MM:SS once a full hour has
// elapsed. Used by the gym and run timers.
func FormatClock(seconds int) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatHoursMinutes renders seconds as "Xh YYm" (hours unpadded, minutes
// zero-padded). Used by the focus timer.
func FormatHoursMinutes(seconds int) string {
	mins := seconds / 60
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}
