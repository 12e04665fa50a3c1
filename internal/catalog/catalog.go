// Package catalog holds the static exercise reference data used by gym
// sessions: a lookup table plus substring search. No state, no mutation.
package catalog

import "strings"

// MuscleGroup tags an exercise with its primary muscle group.
type MuscleGroup string

const (
	Chest      MuscleGroup = "chest"
	Back       MuscleGroup = "back"
	Shoulders  MuscleGroup = "shoulders"
	Biceps     MuscleGroup = "biceps"
	Triceps    MuscleGroup = "triceps"
	Forearms   MuscleGroup = "forearms"
	Core       MuscleGroup = "core"
	Quads      MuscleGroup = "quads"
	Hamstrings MuscleGroup = "hamstrings"
	Glutes     MuscleGroup = "glutes"
	Calves     MuscleGroup = "calves"
	FullBody   MuscleGroup = "full_body"
	Cardio     MuscleGroup = "cardio"
)

// MuscleGroupLabels maps group tags to display labels.
var MuscleGroupLabels = map[MuscleGroup]string{
	Chest:      "Chest",
	Back:       "Back",
	Shoulders:  "Shoulders",
	Biceps:     "Biceps",
	Triceps:    "Triceps",
	Forearms:   "Forearms",
	Core:       "Core",
	Quads:      "Quads",
	Hamstrings: "Hamstrings",
	Glutes:     "Glutes",
	Calves:     "Calves",
	FullBody:   "Full Body",
	Cardio:     "Cardio",
}

// Exercise is one entry in the static exercise library.
type Exercise struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	Equipment   string      `json:"equipment,omitempty"`
}

// Search returns all exercises whose name, muscle group label or equipment
// contains the query (case-insensitive). An empty or whitespace query returns
// the full catalog in declaration order.
func Search(query string) []Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Exercises
	}

	var result []Exercise
	for _, ex := range Exercises {
		if strings.Contains(strings.ToLower(ex.Name), q) ||
			strings.Contains(strings.ToLower(string(ex.MuscleGroup)), q) ||
			strings.Contains(strings.ToLower(ex.Equipment), q) {
			result = append(result, ex)
		}
	}
	return result
}

// ByMuscleGroup returns the exercises tagged with exactly the given group.
func ByMuscleGroup(group MuscleGroup) []Exercise {
	var result []Exercise
	for _, ex := range Exercises {
		if ex.MuscleGroup == group {
			result = append(result, ex)
		}
	}
	return result
}

// Grouped returns the catalog bucketed by muscle group, preserving
// declaration order within each bucket.
func Grouped() map[MuscleGroup][]Exercise {
	grouped := make(map[MuscleGroup][]Exercise)
	for _, ex := range Exercises {
		grouped[ex.MuscleGroup] = append(grouped[ex.MuscleGroup], ex)
	}
	return grouped
}
