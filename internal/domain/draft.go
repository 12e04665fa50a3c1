package domain

import "time"

// Draft is an immutable snapshot of an in-progress activity saved for later.
// PhotoRef may be empty; a draft does not require a photo.
type Draft struct {
	ID        string       `json:"id"`
	Pillar    Pillar       `json:"pillar"`
	Data      ActivityData `json:"data"`
	PhotoRef  string       `json:"photoRef,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// LocalPost is the local snapshot of a published activity, kept in memory so
// the feed can show it before the remote copy is fetched back. A local post
// always has a photo; publishing is gated on photo presence.
type LocalPost struct {
	ID        string       `json:"id"`
	Pillar    Pillar       `json:"pillar"`
	Data      ActivityData `json:"data"`
	PhotoRef  string       `json:"photoRef"`
	Caption   string       `json:"caption"`
	CreatedAt time.Time    `json:"createdAt"`
}
