package mongo

import (
	"context"
	"errors"
	"time"

	"proofit/internal/domain"
	"proofit/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const commentCollectionName = "comments"

// mongoCommentRepository implements repository.CommentRepository
type mongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new comment repository.
func NewMongoCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &mongoCommentRepository{
		collection: db.Collection(commentCollectionName),
	}
}

// Add inserts a new comment.
func (r *mongoCommentRepository) Add(ctx context.Context, comment *domain.Comment) (primitive.ObjectID, error) {
	if comment.PostID == primitive.NilObjectID || comment.UserID == primitive.NilObjectID || comment.Text == "" {
		return primitive.NilObjectID, errors.New("comment requires postId, userId and text")
	}
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted comment ID")
	}
	return insertedID, nil
}

// ListByPost returns a post's comments oldest first with authors joined.
func (r *mongoCommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]domain.CommentWithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"postId": postID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         profileCollectionName,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: "$author"}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []domain.CommentWithAuthor{}
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// Delete removes a comment, but only when it belongs to the given user.
func (r *mongoCommentRepository) Delete(ctx context.Context, commentID, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": commentID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCommentIndexes creates necessary indexes. Call during startup.
func EnsureCommentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "postId", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
