package domain

// ActivityData is the structured payload of an activity, one variant per
// pillar. The variant tag (Pillar()) must always match the session's active
// pillar; constructing a session with a mismatched pair is rejected.
type ActivityData interface {
	// Pillar returns the variant tag.
	Pillar() Pillar
	// Document flattens the data into the loosely-typed shape stored on a
	// remote post (the overlay renderer on the feed consumes this).
	Document() map[string]any
}

// WeightUnit is the per-set weight unit. Toggling is binary and independent
// across sets.
type WeightUnit string

const (
	UnitLbs WeightUnit = "lbs"
	UnitKg  WeightUnit = "kg"
)

// Toggle returns the other unit.
func (u WeightUnit) Toggle() WeightUnit {
	if u == UnitLbs {
		return UnitKg
	}
	return UnitLbs
}

// DistanceUnit is the run distance unit.
type DistanceUnit string

const (
	UnitMiles DistanceUnit = "mi"
	UnitKm    DistanceUnit = "km"
)

// SetEntry is a single set within a gym exercise. Weight is free text,
// matching the numeric keyboard input of the app.
type SetEntry struct {
	ID        string     `json:"id"`
	Weight    string     `json:"weight"`
	Unit      WeightUnit `json:"weightUnit"`
	Reps      int        `json:"reps"`
	Completed bool       `json:"completed"`
}

// ExerciseEntry is one exercise in a gym session with its ordered sets.
type ExerciseEntry struct {
	ID           string     `json:"id"`
	ExerciseID   string     `json:"exerciseId"`
	ExerciseName string     `json:"exerciseName"`
	MuscleGroup  string     `json:"muscleGroup"`
	Sets         []SetEntry `json:"sets"`
}

// IronData is a gym session: ordered exercises with nested sets plus derived
// aggregates. DurationSeconds, TotalSets and CompletedSets are recomputed from
// the exercise list on every mutation, never set independently.
type IronData struct {
	Exercises       []ExerciseEntry `json:"exercises"`
	DurationSeconds int             `json:"duration"`
	TotalSets       int             `json:"totalSets"`
	CompletedSets   int             `json:"completedSets"`
}

func (IronData) Pillar() Pillar { return PillarIron }

func (d IronData) Document() map[string]any {
	exercises := make([]map[string]any, 0, len(d.Exercises))
	for _, ex := range d.Exercises {
		sets := make([]map[string]any, 0, len(ex.Sets))
		for _, s := range ex.Sets {
			sets = append(sets, map[string]any{
				"weight":     s.Weight,
				"weightUnit": string(s.Unit),
				"reps":       s.Reps,
				"completed":  s.Completed,
			})
		}
		exercises = append(exercises, map[string]any{
			"name": ex.ExerciseName,
			"sets": sets,
		})
	}
	return map[string]any{
		"exercises":     exercises,
		"duration":      d.DurationSeconds,
		"totalSets":     d.TotalSets,
		"completedSets": d.CompletedSets,
	}
}

// PathData is a run/walk session. All fields are free text at this layer;
// validation is a display concern.
type PathData struct {
	Distance     string       `json:"distance"`
	DistanceUnit DistanceUnit `json:"distanceUnit"`
	Duration     string       `json:"duration"`
	Pace         string       `json:"pace"`
	Elevation    string       `json:"elevation"`
}

func (PathData) Pillar() Pillar { return PillarPath }

func (d PathData) Document() map[string]any {
	return map[string]any{
		"distance":     d.Distance,
		"distanceUnit": string(d.DistanceUnit),
		"duration":     d.Duration,
		"pace":         d.Pace,
		"elevation":    d.Elevation,
	}
}

// DeepData is a focus/study session.
type DeepData struct {
	Duration   string `json:"duration"` // "Xh YYm"
	Sessions   int    `json:"sessions"` // 1..12
	Task       string `json:"task"`
	FocusScore int    `json:"focusScore"` // 1..5
}

func (DeepData) Pillar() Pillar { return PillarDeep }

func (d DeepData) Document() map[string]any {
	return map[string]any{
		"duration":   d.Duration,
		"sessions":   d.Sessions,
		"task":       d.Task,
		"focusScore": d.FocusScore,
	}
}

// SnapData is a lightweight mood check-in.
type SnapData struct {
	Mood   Mood   `json:"mood"`
	Energy int    `json:"energy"` // 1..5
	Note   string `json:"note"`
}

func (SnapData) Pillar() Pillar { return PillarSnap }

func (d SnapData) Document() map[string]any {
	return map[string]any{
		"mood":   string(d.Mood),
		"energy": d.Energy,
		"note":   d.Note,
	}
}

// DefaultDataFor returns the empty/default data variant a fresh session
// starts with.
func DefaultDataFor(pillar Pillar) ActivityData {
	switch pillar {
	case PillarIron:
		return IronData{Exercises: []ExerciseEntry{}}
	case PillarPath:
		return PathData{DistanceUnit: UnitMiles}
	case PillarDeep:
		return DeepData{Sessions: 1, FocusScore: 3}
	case PillarSnap:
		return SnapData{Mood: MoodGood, Energy: 3}
	default:
		return nil
	}
}
