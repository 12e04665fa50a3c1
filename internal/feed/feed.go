// Package feed assembles the social feed: remote posts fetched from the
// backend merged with local posts that have not been fetched back yet.
package feed

import (
	"time"

	"proofit/internal/domain"
)

// Entry is one feed row, normalized from either a local or a remote post.
type Entry struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	Username    string         `json:"username"`
	DisplayName string         `json:"displayName,omitempty"`
	AvatarURL   string         `json:"avatarUrl,omitempty"`
	Pillar      domain.Pillar  `json:"pillar"`
	ImageURL    string         `json:"imageUrl"`
	Caption     string         `json:"caption,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Likes       int            `json:"likes"`
	Comments    int            `json:"comments"`
	IsLiked     bool           `json:"isLiked"`
	Local       bool           `json:"local"` // true until the remote copy is fetched back
}

// FromLocal converts an unsynced local post into a feed entry attributed to
// the current user.
func FromLocal(post domain.LocalPost, author domain.Profile) Entry {
	var data map[string]any
	if post.Data != nil {
		data = post.Data.Document()
	}
	return Entry{
		ID:          post.ID,
		UserID:      author.ID.Hex(),
		Username:    author.Username,
		DisplayName: author.DisplayName,
		AvatarURL:   author.AvatarURL,
		Pillar:      post.Pillar,
		ImageURL:    post.PhotoRef,
		Caption:     post.Caption,
		Data:        data,
		CreatedAt:   post.CreatedAt,
		Local:       true,
	}
}

// FromRemote converts a fetched post into a feed entry.
func FromRemote(post domain.PostWithAuthor) Entry {
	return Entry{
		ID:          post.ID.Hex(),
		UserID:      post.UserID.Hex(),
		Username:    post.Author.Username,
		DisplayName: post.Author.DisplayName,
		AvatarURL:   post.Author.AvatarURL,
		Pillar:      post.Pillar,
		ImageURL:    post.ImageURL,
		Caption:     post.Caption,
		Data:        post.ActivityData,
		CreatedAt:   post.CreatedAt,
		Likes:       post.LikesCount,
		Comments:    post.CommentsCount,
		IsLiked:     post.IsLiked,
	}
}

// Merge combines local entries with a remote page. A local entry whose id
// already appears remotely is dropped — the remote copy wins — so a post
// never shows up twice once it has synced. Locals keep their place ahead of
// the remote page (they are always newest).
func Merge(local, remote []Entry) []Entry {
	remoteIDs := make(map[string]struct{}, len(remote))
	for _, e := range remote {
		remoteIDs[e.ID] = struct{}{}
	}

	merged := make([]Entry, 0, len(local)+len(remote))
	for _, e := range local {
		if _, dup := remoteIDs[e.ID]; !dup {
			merged = append(merged, e)
		}
	}
	return append(merged, remote...)
}
