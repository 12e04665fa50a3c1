package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmptyQueryReturnsFullCatalog(t *testing.T) {
	assert.Equal(t, Exercises, Search(""))
	assert.Equal(t, Exercises, Search("   "))
}

func TestSearchByName(t *testing.T) {
	results := Search("bench press")
	require.NotEmpty(t, results)
	for _, ex := range results {
		assert.Contains(t, strings.ToLower(ex.Name), "bench press")
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	assert.Equal(t, Search("deadlift"), Search("DEADLIFT"))
}

func TestSearchByMuscleGroup(t *testing.T) {
	results := Search("hamstrings")
	require.NotEmpty(t, results)
	found := false
	for _, ex := range results {
		if ex.MuscleGroup == Hamstrings {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSearchByEquipment(t *testing.T) {
	results := Search("kettlebell")
	require.NotEmpty(t, results)
	for _, ex := range results {
		matched := strings.Contains(strings.ToLower(ex.Name), "kettlebell") ||
			strings.Contains(strings.ToLower(ex.Equipment), "kettlebell")
		assert.True(t, matched, "unexpected match %q", ex.Name)
	}
}

func TestSearchNoMatch(t *testing.T) {
	assert.Empty(t, Search("zzzz-not-an-exercise"))
}

func TestSearchPreservesDeclarationOrder(t *testing.T) {
	results := Search("press")
	require.Greater(t, len(results), 1)

	// Results must appear in the same relative order as the catalog.
	index := make(map[string]int, len(Exercises))
	for i, ex := range Exercises {
		index[ex.ID] = i
	}
	for i := 1; i < len(results); i++ {
		assert.Less(t, index[results[i-1].ID], index[results[i].ID])
	}
}

func TestByMuscleGroup(t *testing.T) {
	chest := ByMuscleGroup(Chest)
	require.NotEmpty(t, chest)
	for _, ex := range chest {
		assert.Equal(t, Chest, ex.MuscleGroup)
	}
}

func TestGroupedCoversWholeCatalog(t *testing.T) {
	grouped := Grouped()
	total := 0
	for _, exs := range grouped {
		total += len(exs)
	}
	assert.Equal(t, len(Exercises), total)
}

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool, len(Exercises))
	for _, ex := range Exercises {
		assert.NotEmpty(t, ex.ID)
		assert.NotEmpty(t, ex.Name)
		assert.False(t, seen[ex.ID], "duplicate exercise id %q", ex.ID)
		seen[ex.ID] = true

		_, labeled := MuscleGroupLabels[ex.MuscleGroup]
		assert.True(t, labeled, "exercise %q has unlabeled group %q", ex.ID, ex.MuscleGroup)
	}
}
