package domain

// Mood is the fixed 5-value check-in mood scale.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodMeh   Mood = "meh"
	MoodRough Mood = "rough"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodMeh, MoodRough:
		return true
	}
	return false
}

// MoodInfo is the display metadata attached to each mood value.
type MoodInfo struct {
	Key   Mood   `json:"key"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Moods lists all moods in picker order (best to worst).
var Moods = []MoodInfo{
	{Key: MoodGreat, Emoji: "🔥", Label: "Great", Color: "#00D26A"},
	{Key: MoodGood, Emoji: "😊", Label: "Good", Color: "#4ECDC4"},
	{Key: MoodOkay, Emoji: "😐", Label: "Okay", Color: "#F7DC6F"},
	{Key: MoodMeh, Emoji: "😕", Label: "Meh", Color: "#FF8C5A"},
	{Key: MoodRough, Emoji: "😞", Label: "Rough", Color: "#FF4757"},
}
