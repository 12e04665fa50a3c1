package mongo

import (
	"context"
	"time"

	"proofit/internal/domain"
	"proofit/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	likeCollectionName   = "likes"
	followCollectionName = "follows"
)

// mongoLikeRepository implements repository.LikeRepository
type mongoLikeRepository struct {
	collection *mongo.Collection
}

// NewMongoLikeRepository creates a new like repository.
func NewMongoLikeRepository(db *mongo.Database) repository.LikeRepository {
	return &mongoLikeRepository{
		collection: db.Collection(likeCollectionName),
	}
}

// Like records a like. The unique (userId, postId) index makes it
// idempotent: a duplicate insert is reported as created=false, not an error.
func (r *mongoLikeRepository) Like(ctx context.Context, userID, postID primitive.ObjectID) (bool, error) {
	like := domain.Like{
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.collection.InsertOne(ctx, like)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Unlike removes a like. Removing a non-existent like is not an error.
func (r *mongoLikeRepository) Unlike(ctx context.Context, userID, postID primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "postId": postID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// HasLiked reports whether the user liked the post.
func (r *mongoLikeRepository) HasLiked(ctx context.Context, userID, postID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "postId": postID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// LikedSet returns the subset of postIDs the user has liked.
func (r *mongoLikeRepository) LikedSet(ctx context.Context, userID primitive.ObjectID, postIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	liked := make(map[primitive.ObjectID]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	filter := bson.M{"userId": userID, "postId": bson.M{"$in": postIDs}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var likes []domain.Like
	if err = cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	for _, l := range likes {
		liked[l.PostID] = true
	}
	return liked, nil
}

// EnsureLikeIndexes creates necessary indexes. Call during startup.
func EnsureLikeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One like per user per post; also serves the liked-set lookup.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "postId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "postId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}

// mongoFollowRepository implements repository.FollowRepository
type mongoFollowRepository struct {
	collection *mongo.Collection
}

// NewMongoFollowRepository creates a new follow repository.
func NewMongoFollowRepository(db *mongo.Database) repository.FollowRepository {
	return &mongoFollowRepository{
		collection: db.Collection(followCollectionName),
	}
}

// Follow records a follow edge, idempotently.
func (r *mongoFollowRepository) Follow(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	follow := domain.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := r.collection.InsertOne(ctx, follow)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Unfollow removes a follow edge. Removing a non-existent edge is not an
// error.
func (r *mongoFollowRepository) Unfollow(ctx context.Context, followerID, followingID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"followerId": followerID, "followingId": followingID})
	return err
}

// IsFollowing reports whether follower follows following.
func (r *mongoFollowRepository) IsFollowing(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"followerId": followerID, "followingId": followingID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FollowerCount returns how many users follow the given user.
func (r *mongoFollowRepository) FollowerCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"followingId": userID})
}

// FollowingCount returns how many users the given user follows.
func (r *mongoFollowRepository) FollowingCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"followerId": userID})
}

// EnsureFollowIndexes creates necessary indexes. Call during startup.
func EnsureFollowIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "followerId", Value: 1}, {Key: "followingId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "followingId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
