package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a published proof: a photo paired with structured activity data.
// ActivityData is stored loosely typed; only the client-side session carries
// the full sum type.
type Post struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Pillar        Pillar             `bson:"activityType" json:"activityType"`
	ImageURL      string             `bson:"imageUrl" json:"imageUrl"`
	Caption       string             `bson:"caption,omitempty" json:"caption,omitempty"`
	ActivityData  map[string]any     `bson:"activityData,omitempty" json:"activityData,omitempty"`
	LocationName  string             `bson:"locationName,omitempty" json:"locationName,omitempty"`
	LikesCount    int                `bson:"likesCount" json:"likesCount"`
	CommentsCount int                `bson:"commentsCount" json:"commentsCount"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// PostWithAuthor joins a post with its author's profile, as returned by feed
// and single-post queries.
type PostWithAuthor struct {
	Post   `bson:",inline"`
	Author Profile `bson:"author" json:"author"`

	// IsLiked is filled in per requesting user, not stored.
	IsLiked bool `bson:"-" json:"isLiked"`
}

// Comment on a post.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CommentWithAuthor joins a comment with its author's profile.
type CommentWithAuthor struct {
	Comment `bson:",inline"`
	Author  Profile `bson:"author" json:"author"`
}

// Like links a user to a post they liked. The (UserID, PostID) pair is unique.
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Follow links a follower to the user they follow. The pair is unique and
// self-follows are rejected at the service layer.
type Follow struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FollowerID  primitive.ObjectID `bson:"followerId" json:"followerId"`
	FollowingID primitive.ObjectID `bson:"followingId" json:"followingId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
