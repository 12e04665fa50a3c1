package activity

import (
	"testing"

	"proofit/internal/catalog"
	"proofit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIronFixture(t *testing.T) (*Session, *IronForm) {
	t.Helper()
	s := NewSession()
	require.NoError(t, s.Start(domain.PillarIron))
	return s, NewIronForm(s, 0)
}

func TestIronAddExerciseRequiresStart(t *testing.T) {
	_, form := newIronFixture(t)

	_, err := form.AddExercise(catalog.Exercise{ID: "bench_press", Name: "Bench Press", MuscleGroup: catalog.Chest})
	assert.ErrorIs(t, err, ErrSessionNotStarted)

	form.StartSession()
	_, err = form.AddExercise(catalog.Exercise{ID: "bench_press", Name: "Bench Press", MuscleGroup: catalog.Chest})
	assert.NoError(t, err)
}

func TestIronStartSessionIdempotent(t *testing.T) {
	_, form := newIronFixture(t)
	form.StartSession()
	form.Timer().Tick()
	form.Timer().Tick()

	form.StartSession()
	assert.Equal(t, 2, form.Timer().Elapsed())
}

func TestIronAddExerciseDefaultSet(t *testing.T) {
	_, form := newIronFixture(t)
	form.StartSession()

	entry, err := form.AddExercise(catalog.Exercise{ID: "squat", Name: "Squat", MuscleGroup: catalog.Quads})
	require.NoError(t, err)

	require.Len(t, entry.Sets, 1)
	set := entry.Sets[0]
	assert.Empty(t, set.Weight)
	assert.Equal(t, domain.UnitLbs, set.Unit)
	assert.Equal(t, 10, set.Reps)
	assert.False(t, set.Completed)
}

func TestIronAddCustomExercise(t *testing.T) {
	_, form := newIronFixture(t)
	form.StartSession()

	entry, err := form.AddCustomExercise("  Sled Push  ")
	require.NoError(t, err)
	assert.Equal(t, "Sled Push", entry.ExerciseName)
	assert.Equal(t, string(catalog.FullBody), entry.MuscleGroup)
	assert.Contains(t, entry.ExerciseID, "custom-")

	_, err = form.AddCustomExercise("   ")
	assert.Error(t, err)
}

func TestIronAddSetCopiesPrevious(t *testing.T) {
	_, form := newIronFixture(t)
	form.StartSession()

	entry, err := form.AddExercise(catalog.Exercise{ID: "deadlift", Name: "Deadlift", MuscleGroup: catalog.Back})
	require.NoError(t, err)

	weight := "225"
	unit := domain.UnitKg
	reps := 5
	form.UpdateSet(entry.ID, entry.Sets[0].ID, SetUpdate{Weight: &weight, Unit: &unit, Reps: &reps})

	form.AddSet(entry.ID)

	data := form.Data()
	require.Len(t, data.Exercises, 1)
	sets := data.Exercises[0].Sets
	require.Len(t, sets, 2)
	assert.Equal(t, "225", sets[1].Weight)
	assert.Equal(t, domain.UnitKg, sets[1].Unit)
	assert.Equal(t, 5, sets[1].Reps)
	assert.False(t, sets[1].Completed)
	assert.NotEqual(t, sets[0].ID, sets[1].ID)
}

func TestIronRepsClampAtOne(t *testing.T) {
	_, form := newIronFixture(t)
	form.StartSession()

	entry, err := form.AddExercise(catalog.Exercise{ID: "curl", Name: "Barbell Curl", MuscleGroup: catalog.Biceps})
	require.NoError(t, err)
	setID := entry.Sets[0].ID

	for i := 0; i < 15; i++ {
		form.DecrementReps(entry.ID, setID)
	}
	assert.Equal(t, 1, form.Data().Exercises[0].Sets[0].Reps)

	// No upper bound.
	for i := 0; i < 100; i++ {
		form.IncrementReps(entry.ID, setID)
	}
	assert.Equal(t, 101, form.Data().Exercises[0].Sets[0].Reps)
}

func TestIronToggleUnitPerSet(t *testing.T) {
	_, form := newIronFixture(t)
	form.StartSession()

	entry, err := form.AddExercise(catalog.Exercise{ID: "press", Name: "Overhead Press", MuscleGroup: catalog.Shoulders})
	require.NoError(t, err)
	form.AddSet(entry.ID)

	data := form.Data()
	firstID := data.Exercises[0].Sets[0].ID

	form.ToggleUnit(entry.ID, firstID)

	data = form.Data()
	assert.Equal(t, domain.UnitKg, data.Exercises[0].Sets[0].Unit)
	assert.Equal(t, domain.UnitLbs, data.Exercises[0].Sets[1].Unit, "toggling one set must not touch the other")
}

func TestIronAggregatesTrackMutations(t *testing.T) {
	s, form := newIronFixture(t)
	form.StartSession()

	entry, err := form.AddExercise(catalog.Exercise{ID: "row", Name: "Barbell Row", MuscleGroup: catalog.Back})
	require.NoError(t, err)
	form.AddSet(entry.ID)
	form.AddSet(entry.ID)

	data := form.Data()
	assert.Equal(t, 3, data.TotalSets)
	assert.Equal(t, 0, data.CompletedSets)

	form.ToggleSetComplete(entry.ID, data.Exercises[0].Sets[0].ID)
	form.ToggleSetComplete(entry.ID, data.Exercises[0].Sets[1].ID)

	data = form.Data()
	assert.Equal(t, 2, data.CompletedSets)

	// The session sees the same aggregates as the form.
	pushed, ok := s.Data().(domain.IronData)
	require.True(t, ok)
	assert.Equal(t, 3, pushed.TotalSets)
	assert.Equal(t, 2, pushed.CompletedSets)
}

func TestIronRemoveExercise(t *testing.T) {
	_, form := newIronFixture(t)
	form.StartSession()

	first, err := form.AddExercise(catalog.Exercise{ID: "a", Name: "A", MuscleGroup: catalog.Chest})
	require.NoError(t, err)
	second, err := form.AddExercise(catalog.Exercise{ID: "b", Name: "B", MuscleGroup: catalog.Back})
	require.NoError(t, err)

	form.RemoveExercise(first.ID)

	data := form.Data()
	require.Len(t, data.Exercises, 1)
	assert.Equal(t, second.ID, data.Exercises[0].ID)
	assert.Equal(t, 1, data.TotalSets)

	// Unknown ids are ignored.
	form.RemoveExercise("nope")
	assert.Len(t, form.Data().Exercises, 1)
}

func TestIronTimerTickPushesDuration(t *testing.T) {
	s, form := newIronFixture(t)
	form.StartSession()

	form.Timer().Tick()
	form.Timer().Tick()
	form.Timer().Tick()

	pushed, ok := s.Data().(domain.IronData)
	require.True(t, ok)
	assert.Equal(t, 3, pushed.DurationSeconds)
}

// Full gym flow: start, two exercises, edits, completion, aggregates.
func TestIronFullSessionFlow(t *testing.T) {
	s, form := newIronFixture(t)
	form.StartSession()

	bench, err := form.AddExercise(catalog.Exercise{ID: "bench_press", Name: "Bench Press", MuscleGroup: catalog.Chest})
	require.NoError(t, err)
	weight := "135"
	form.UpdateSet(bench.ID, bench.Sets[0].ID, SetUpdate{Weight: &weight})
	form.AddSet(bench.ID)

	squat, err := form.AddExercise(catalog.Exercise{ID: "squat", Name: "Squat", MuscleGroup: catalog.Quads})
	require.NoError(t, err)

	for i := 0; i < 90; i++ {
		form.Timer().Tick()
	}

	data := form.Data()
	assert.Equal(t, 3, data.TotalSets)
	assert.Equal(t, 90, data.DurationSeconds)

	// Second bench set inherited the weight.
	assert.Equal(t, "135", data.Exercises[0].Sets[1].Weight)

	form.ToggleSetComplete(bench.ID, data.Exercises[0].Sets[0].ID)
	form.ToggleSetComplete(bench.ID, data.Exercises[0].Sets[1].ID)
	form.ToggleSetComplete(squat.ID, data.Exercises[1].Sets[0].ID)

	final := form.Data()
	assert.Equal(t, 3, final.CompletedSets)

	// Snapshot lands in the session for publishing.
	s.SetPhoto("file://gym.jpg")
	post, err := s.CreatePost("leg day")
	require.NoError(t, err)
	posted := post.Data.(domain.IronData)
	assert.Equal(t, 3, posted.CompletedSets)
	assert.Equal(t, "1:30", FormatClock(posted.DurationSeconds))
}
