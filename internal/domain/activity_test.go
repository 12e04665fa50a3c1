package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPillarValid(t *testing.T) {
	for _, p := range PillarOrder {
		assert.True(t, p.Valid(), "pillar %q", p)
	}
	assert.False(t, PillarNone.Valid())
	assert.False(t, Pillar("swim").Valid())
}

func TestPillarRegistryComplete(t *testing.T) {
	require.Len(t, Pillars, 4)
	require.Len(t, PillarOrder, 4)
	for _, p := range PillarOrder {
		info, ok := Pillars[p]
		require.True(t, ok, "pillar %q missing from registry", p)
		assert.Equal(t, p, info.ID)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Description)
	}
}

func TestMoodValid(t *testing.T) {
	for _, m := range Moods {
		assert.True(t, m.Key.Valid())
		assert.NotEmpty(t, m.Emoji)
		assert.NotEmpty(t, m.Label)
		assert.NotEmpty(t, m.Color)
	}
	assert.False(t, Mood("ecstatic").Valid())
}

func TestWeightUnitToggle(t *testing.T) {
	assert.Equal(t, UnitKg, UnitLbs.Toggle())
	assert.Equal(t, UnitLbs, UnitKg.Toggle())
}

func TestDefaultDataFor(t *testing.T) {
	iron, ok := DefaultDataFor(PillarIron).(IronData)
	require.True(t, ok)
	assert.NotNil(t, iron.Exercises)
	assert.Empty(t, iron.Exercises)

	path, ok := DefaultDataFor(PillarPath).(PathData)
	require.True(t, ok)
	assert.Equal(t, UnitMiles, path.DistanceUnit)

	deep, ok := DefaultDataFor(PillarDeep).(DeepData)
	require.True(t, ok)
	assert.Equal(t, 1, deep.Sessions)
	assert.Equal(t, 3, deep.FocusScore)

	snap, ok := DefaultDataFor(PillarSnap).(SnapData)
	require.True(t, ok)
	assert.Equal(t, MoodGood, snap.Mood)
	assert.Equal(t, 3, snap.Energy)

	assert.Nil(t, DefaultDataFor(PillarNone))
}

func TestVariantTagsMatchPillars(t *testing.T) {
	assert.Equal(t, PillarIron, IronData{}.Pillar())
	assert.Equal(t, PillarPath, PathData{}.Pillar())
	assert.Equal(t, PillarDeep, DeepData{}.Pillar())
	assert.Equal(t, PillarSnap, SnapData{}.Pillar())
}

func TestIronDocumentShape(t *testing.T) {
	data := IronData{
		Exercises: []ExerciseEntry{{
			ExerciseName: "Bench Press",
			Sets: []SetEntry{
				{Weight: "135", Unit: UnitLbs, Reps: 10, Completed: true},
				{Weight: "155", Unit: UnitLbs, Reps: 8},
			},
		}},
		DurationSeconds: 90,
		TotalSets:       2,
		CompletedSets:   1,
	}

	doc := data.Document()
	assert.Equal(t, 90, doc["duration"])
	assert.Equal(t, 2, doc["totalSets"])
	assert.Equal(t, 1, doc["completedSets"])

	exercises, ok := doc["exercises"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Bench Press", exercises[0]["name"])

	sets, ok := exercises[0]["sets"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, sets, 2)
	assert.Equal(t, "135", sets[0]["weight"])
	assert.Equal(t, true, sets[0]["completed"])
}
