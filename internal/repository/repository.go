package repository

import (
	"context"

	"proofit/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("already exists")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository defines the interface for interacting with user profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.Profile, error)
	// UsernameAvailable reports whether a username is free, ignoring the
	// given profile (so a user can "change" to their own name).
	UsernameAvailable(ctx context.Context, username string, exclude primitive.ObjectID) (bool, error)
	// Search matches username or display name by substring, case-insensitive.
	Search(ctx context.Context, query string, limit int64) ([]domain.Profile, error)
}

// FeedFilter narrows a feed page.
type FeedFilter struct {
	Limit  int64
	Offset int64
	Pillar domain.Pillar // PillarNone means all pillars
}

// PostRepository defines the interface for interacting with posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PostWithAuthor, error)
	// Feed returns a page of posts with authors joined, newest first.
	Feed(ctx context.Context, filter FeedFilter) ([]domain.PostWithAuthor, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID, limit, offset int64) ([]domain.PostWithAuthor, error)
	// Delete removes a post only if it belongs to the given user.
	Delete(ctx context.Context, postID, userID primitive.ObjectID) error
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	// CountByPillar returns per-pillar post counts for the profile stats.
	CountByPillar(ctx context.Context, userID primitive.ObjectID) (map[domain.Pillar]int64, error)
	// AdjustCounters bumps the denormalized like/comment counters.
	AdjustCounters(ctx context.Context, postID primitive.ObjectID, likes, comments int) error
}

// LikeRepository defines the interface for interacting with post likes.
type LikeRepository interface {
	// Like is idempotent: liking an already-liked post reports created=false
	// without an error.
	Like(ctx context.Context, userID, postID primitive.ObjectID) (created bool, err error)
	Unlike(ctx context.Context, userID, postID primitive.ObjectID) (removed bool, err error)
	HasLiked(ctx context.Context, userID, postID primitive.ObjectID) (bool, error)
	// LikedSet returns which of the given posts the user has liked, for
	// decorating a feed page in one query.
	LikedSet(ctx context.Context, userID primitive.ObjectID, postIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error)
}

// FollowRepository defines the interface for interacting with follows.
type FollowRepository interface {
	// Follow is idempotent like Like.
	Follow(ctx context.Context, followerID, followingID primitive.ObjectID) (created bool, err error)
	Unfollow(ctx context.Context, followerID, followingID primitive.ObjectID) error
	IsFollowing(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error)
	FollowerCount(ctx context.Context, userID primitive.ObjectID) (int64, error)
	FollowingCount(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// CommentRepository defines the interface for interacting with comments.
type CommentRepository interface {
	Add(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error)
	// ListByPost returns comments oldest first, with authors joined.
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]domain.CommentWithAuthor, error)
	// Delete removes a comment only if it belongs to the given user.
	Delete(ctx context.Context, commentID, userID primitive.ObjectID) error
}
