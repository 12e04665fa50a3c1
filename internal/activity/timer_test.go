package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerTickOnlyWhileRunning(t *testing.T) {
	timer := NewTimer(0, nil)

	// Idle: ticks are dropped.
	timer.Tick()
	assert.Equal(t, 0, timer.Elapsed())

	timer.Start()
	timer.Tick()
	timer.Tick()
	assert.Equal(t, 2, timer.Elapsed())

	// Paused: ticks are dropped, elapsed is kept.
	timer.TogglePause()
	timer.Tick()
	assert.Equal(t, 2, timer.Elapsed())
	assert.True(t, timer.Paused())

	// Resumed: counting continues from where it left off.
	timer.TogglePause()
	timer.Tick()
	assert.Equal(t, 3, timer.Elapsed())
}

func TestTimerStartAlwaysResets(t *testing.T) {
	timer := NewTimer(0, nil)
	timer.Start()
	timer.Tick()
	timer.Tick()
	require.Equal(t, 2, timer.Elapsed())

	timer.Start()
	assert.Equal(t, 0, timer.Elapsed())
	assert.True(t, timer.Running())
}

func TestTimerStopKeepsElapsed(t *testing.T) {
	timer := NewTimer(0, nil)
	timer.Start()
	timer.Tick()
	timer.Stop()

	assert.Equal(t, 1, timer.Elapsed())
	assert.False(t, timer.Running())

	// A straggling tick after stop is ignored.
	timer.Tick()
	assert.Equal(t, 1, timer.Elapsed())
}

func TestTimerResetClearsEverything(t *testing.T) {
	timer := NewTimer(0, nil)
	timer.Start()
	timer.Tick()
	timer.TogglePause()
	timer.Reset()

	assert.Equal(t, 0, timer.Elapsed())
	assert.False(t, timer.Running())
	assert.False(t, timer.Paused())
}

func TestTimerOnTickCallback(t *testing.T) {
	var seen []int
	timer := NewTimer(0, func(elapsed int) { seen = append(seen, elapsed) })
	timer.Start()
	timer.Tick()
	timer.Tick()
	timer.Tick()

	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3665, "1:01:05"},
		{7325, "2:02:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatHoursMinutes(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0h 00m"},
		{59, "0h 00m"},
		{60, "0h 01m"},
		{2800, "0h 46m"},
		{3600, "1h 00m"},
		{5400, "1h 30m"},
		{36000, "10h 00m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHoursMinutes(tt.seconds), "seconds=%d", tt.seconds)
	}
}
