package activity

import (
	"errors"
	"strings"
	"sync"
	"time"

	"proofit/internal/catalog"
	"proofit/internal/domain"

	"github.com/google/uuid"
)

var ErrSessionNotStarted = errors.New("gym session not started")

// IronForm is the gym session reducer: a live stopwatch plus an ordered list
// of exercises, each with an ordered list of sets. Every mutation recomputes
// the derived aggregates and pushes the full snapshot into the session in the
// same critical section, so no reader can observe sets and aggregates out of
// sync.
type IronForm struct {
	mu        sync.Mutex
	session   *Session
	timer     *Timer
	started   bool
	exercises []domain.ExerciseEntry
	newID     func() string
}

// NewIronForm creates the reducer bound to a session. tick is the timer
// interval — time.Second in the app, non-positive in tests for manual
// ticking.
func NewIronForm(session *Session, tick time.Duration) *IronForm {
	f := &IronForm{
		session: session,
		newID:   uuid.NewString,
	}
	f.timer = NewTimer(tick, func(int) { f.push() })
	return f
}

// StartSession arms the form: timer starts at zero and exercises may be
// added. Calling it again mid-session is a no-op.
func (f *IronForm) StartSession() {
	f.mu.Lock()
	if f.started {
		f.mu.Unlock()
		return
	}
	f.started = true
	f.mu.Unlock()

	f.timer.Start()
	f.push()
}

// TogglePause pauses or resumes the session timer.
func (f *IronForm) TogglePause() {
	f.timer.TogglePause()
}

// Stop releases the timer. Called when the owning screen unmounts or the
// activity is discarded.
func (f *IronForm) Stop() {
	f.timer.Stop()
}

// Started reports whether the start gate has been passed.
func (f *IronForm) Started() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started
}

// Timer exposes the session stopwatch (pause state, elapsed display).
func (f *IronForm) Timer() *Timer {
	return f.timer
}

// AddExercise appends a catalog exercise with a single default set. The
// session must have been started first (the start screen gate).
func (f *IronForm) AddExercise(ex catalog.Exercise) (domain.ExerciseEntry, error) {
	return f.addExercise(ex.ID, ex.Name, string(ex.MuscleGroup))
}

// AddCustomExercise appends a free-text exercise. It gets a synthetic id and
// the full-body group, and otherwise behaves exactly like a catalog entry.
func (f *IronForm) AddCustomExercise(name string) (domain.ExerciseEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ExerciseEntry{}, errors.New("exercise name is empty")
	}
	return f.addExercise("custom-"+f.newID(), name, string(catalog.FullBody))
}

func (f *IronForm) addExercise(exerciseID, name, muscleGroup string) (domain.ExerciseEntry, error) {
	f.mu.Lock()
	if !f.started {
		f.mu.Unlock()
		return domain.ExerciseEntry{}, ErrSessionNotStarted
	}
	if muscleGroup == "" {
		muscleGroup = string(catalog.FullBody)
	}
	entry := domain.ExerciseEntry{
		ID:           f.newID(),
		ExerciseID:   exerciseID,
		ExerciseName: name,
		MuscleGroup:  muscleGroup,
		Sets: []domain.SetEntry{{
			ID:        f.newID(),
			Weight:    "",
			Unit:      domain.UnitLbs,
			Reps:      10,
			Completed: false,
		}},
	}
	f.exercises = append(f.exercises, entry)
	f.pushLocked()
	f.mu.Unlock()
	return entry, nil
}

// RemoveExercise deletes an exercise by id. Unknown ids are ignored.
func (f *IronForm) RemoveExercise(exerciseID string) {
	f.mu.Lock()
	kept := f.exercises[:0]
	for _, ex := range f.exercises {
		if ex.ID != exerciseID {
			kept = append(kept, ex)
		}
	}
	f.exercises = kept
	f.pushLocked()
	f.mu.Unlock()
}

// AddSet appends a new set to an exercise, copying the previous set's weight,
// unit and reps so consecutive sets need no re-entry. The new set is not
// completed.
func (f *IronForm) AddSet(exerciseID string) {
	f.mu.Lock()
	for i := range f.exercises {
		ex := &f.exercises[i]
		if ex.ID != exerciseID {
			continue
		}
		set := domain.SetEntry{
			ID:     f.newID(),
			Weight: "",
			Unit:   domain.UnitLbs,
			Reps:   10,
		}
		if n := len(ex.Sets); n > 0 {
			last := ex.Sets[n-1]
			set.Weight = last.Weight
			set.Unit = last.Unit
			set.Reps = last.Reps
		}
		ex.Sets = append(ex.Sets, set)
		break
	}
	f.pushLocked()
	f.mu.Unlock()
}

// SetUpdate carries a partial set edit; nil fields are left unchanged.
type SetUpdate struct {
	Weight    *string
	Unit      *domain.WeightUnit
	Reps      *int
	Completed *bool
}

// UpdateSet merges an update into one set.
func (f *IronForm) UpdateSet(exerciseID, setID string, update SetUpdate) {
	f.mu.Lock()
	if set := f.findSetLocked(exerciseID, setID); set != nil {
		if update.Weight != nil {
			set.Weight = *update.Weight
		}
		if update.Unit != nil {
			set.Unit = *update.Unit
		}
		if update.Reps != nil {
			set.Reps = *update.Reps
		}
		if update.Completed != nil {
			set.Completed = *update.Completed
		}
	}
	f.pushLocked()
	f.mu.Unlock()
}

// ToggleSetComplete flips a set's completed flag.
func (f *IronForm) ToggleSetComplete(exerciseID, setID string) {
	f.mu.Lock()
	if set := f.findSetLocked(exerciseID, setID); set != nil {
		set.Completed = !set.Completed
	}
	f.pushLocked()
	f.mu.Unlock()
}

// IncrementReps bumps a set's rep count. There is no upper bound.
func (f *IronForm) IncrementReps(exerciseID, setID string) {
	f.mu.Lock()
	if set := f.findSetLocked(exerciseID, setID); set != nil {
		set.Reps++
	}
	f.pushLocked()
	f.mu.Unlock()
}

// DecrementReps lowers a set's rep count, clamped at 1.
func (f *IronForm) DecrementReps(exerciseID, setID string) {
	f.mu.Lock()
	if set := f.findSetLocked(exerciseID, setID); set != nil && set.Reps > 1 {
		set.Reps--
	}
	f.pushLocked()
	f.mu.Unlock()
}

// ToggleUnit flips one set's weight unit between lbs and kg, independently of
// every other set.
func (f *IronForm) ToggleUnit(exerciseID, setID string) {
	f.mu.Lock()
	if set := f.findSetLocked(exerciseID, setID); set != nil {
		set.Unit = set.Unit.Toggle()
	}
	f.pushLocked()
	f.mu.Unlock()
}

func (f *IronForm) findSetLocked(exerciseID, setID string) *domain.SetEntry {
	for i := range f.exercises {
		if f.exercises[i].ID != exerciseID {
			continue
		}
		for j := range f.exercises[i].Sets {
			if f.exercises[i].Sets[j].ID == setID {
				return &f.exercises[i].Sets[j]
			}
		}
	}
	return nil
}

// Data returns the current snapshot with recomputed aggregates.
func (f *IronForm) Data() domain.IronData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *IronForm) snapshotLocked() domain.IronData {
	totalSets := 0
	completedSets := 0
	exercises := make([]domain.ExerciseEntry, len(f.exercises))
	for i, ex := range f.exercises {
		sets := make([]domain.SetEntry, len(ex.Sets))
		copy(sets, ex.Sets)
		ex.Sets = sets
		exercises[i] = ex

		totalSets += len(sets)
		for _, s := range sets {
			if s.Completed {
				completedSets++
			}
		}
	}
	return domain.IronData{
		Exercises:       exercises,
		DurationSeconds: f.timer.Elapsed(),
		TotalSets:       totalSets,
		CompletedSets:   completedSets,
	}
}

// push writes the current snapshot through the session, aggregates included.
func (f *IronForm) push() {
	f.mu.Lock()
	f.pushLocked()
	f.mu.Unlock()
}

func (f *IronForm) pushLocked() {
	_ = f.session.SetData(f.snapshotLocked())
}
