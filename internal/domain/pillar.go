package domain

// Pillar identifies one of the four fixed activity categories. It selects
// which structured data variant and which form reducer applies to a session.
type Pillar string

const (
	PillarIron Pillar = "iron" // gym session
	PillarPath Pillar = "path" // run / walk
	PillarDeep Pillar = "deep" // focus / study
	PillarSnap Pillar = "snap" // daily check-in
)

// PillarNone is the zero value: no activity in progress.
const PillarNone Pillar = ""

func (p Pillar) Valid() bool {
	switch p {
	case PillarIron, PillarPath, PillarDeep, PillarSnap:
		return true
	}
	return false
}

// PillarInfo is the static display metadata for a pillar.
type PillarInfo struct {
	ID          Pillar `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Pillars holds the registry of all four pillars, keyed by id.
var Pillars = map[Pillar]PillarInfo{
	PillarIron: {ID: PillarIron, Name: "Gym", Description: "Log your workout", Icon: "Dumbbell", Color: "#888888"},
	PillarPath: {ID: PillarPath, Name: "Run", Description: "Track your run", Icon: "Route", Color: "#888888"},
	PillarDeep: {ID: PillarDeep, Name: "Study", Description: "Focus session", Icon: "Brain", Color: "#888888"},
	PillarSnap: {ID: PillarSnap, Name: "Notes", Description: "Daily check-in", Icon: "Sparkles", Color: "#888888"},
}

// PillarOrder is the display order used by capture and stats screens.
var PillarOrder = []Pillar{PillarIron, PillarPath, PillarDeep, PillarSnap}
