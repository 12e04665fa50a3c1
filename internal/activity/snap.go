package activity

import (
	"sync"

	"proofit/internal/domain"
)

// SnapForm is the daily check-in reducer: mood, energy and a free-text note.
// The only form without a timer. Note length is unconstrained here; the
// caption cap applies at compose time only.
type SnapForm struct {
	mu      sync.Mutex
	session *Session
	data    domain.SnapData
}

func NewSnapForm(session *Session) *SnapForm {
	f := &SnapForm{
		session: session,
		data:    domain.SnapData{Mood: domain.MoodGood, Energy: 3},
	}
	if current, ok := session.Data().(domain.SnapData); ok {
		f.data = current
	}
	return f
}

// SetMood selects a mood. Unknown values are ignored.
func (f *SnapForm) SetMood(mood domain.Mood) {
	if !mood.Valid() {
		return
	}
	f.mu.Lock()
	f.data.Mood = mood
	f.pushLocked()
	f.mu.Unlock()
}

// SetEnergy sets the energy level, clamped to [1,5].
func (f *SnapForm) SetEnergy(energy int) {
	f.mu.Lock()
	f.data.Energy = clamp(energy, minScore, maxScore)
	f.pushLocked()
	f.mu.Unlock()
}

func (f *SnapForm) SetNote(note string) {
	f.mu.Lock()
	f.data.Note = note
	f.pushLocked()
	f.mu.Unlock()
}

func (f *SnapForm) Data() domain.SnapData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *SnapForm) pushLocked() {
	_ = f.session.SetData(f.data)
}
