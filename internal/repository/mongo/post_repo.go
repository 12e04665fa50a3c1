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

const postCollectionName = "posts"

// mongoPostRepository implements repository.PostRepository
type mongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new post repository.
func NewMongoPostRepository(db *mongo.Database) repository.PostRepository {
	return &mongoPostRepository{
		collection: db.Collection(postCollectionName),
	}
}

// Create inserts a new post. A post always has an image; the caption and
// activity data are optional.
func (r *mongoPostRepository) Create(ctx context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if post.UserID == primitive.NilObjectID || post.ImageURL == "" || !post.Pillar.Valid() {
		return primitive.NilObjectID, errors.New("post requires userId, imageUrl and a valid activity type")
	}
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now().UTC()
	post.LikesCount = 0
	post.CommentsCount = 0

	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted post ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single post with its author joined.
func (r *mongoPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PostWithAuthor, error) {
	posts, err := r.aggregateWithAuthor(ctx, bson.M{"_id": id}, 1, 0)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, repository.ErrNotFound
	}
	return &posts[0], nil
}

// Feed returns a page of posts newest first, optionally filtered by pillar.
func (r *mongoPostRepository) Feed(ctx context.Context, filter repository.FeedFilter) ([]domain.PostWithAuthor, error) {
	match := bson.M{}
	if filter.Pillar != domain.PillarNone {
		match["activityType"] = filter.Pillar
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	return r.aggregateWithAuthor(ctx, match, limit, filter.Offset)
}

// GetByUser returns a user's posts newest first.
func (r *mongoPostRepository) GetByUser(ctx context.Context, userID primitive.ObjectID, limit, offset int64) ([]domain.PostWithAuthor, error) {
	if limit <= 0 {
		limit = 20
	}
	return r.aggregateWithAuthor(ctx, bson.M{"userId": userID}, limit, offset)
}

// aggregateWithAuthor runs the shared feed pipeline: filter, sort newest
// first, page, then join the author profile.
func (r *mongoPostRepository) aggregateWithAuthor(ctx context.Context, match bson.M, limit, offset int64) ([]domain.PostWithAuthor, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$skip", Value: offset}},
		bson.D{{Key: "$limit", Value: limit}},
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

	posts := []domain.PostWithAuthor{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Delete removes a post, but only when it belongs to the given user.
func (r *mongoPostRepository) Delete(ctx context.Context, postID, userID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": postID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		// Post not found OR not owned by this user.
		return repository.ErrNotFound
	}
	return nil
}

// CountByUser returns the user's total post count.
func (r *mongoPostRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID})
}

// CountByPillar returns the user's post counts bucketed by activity type.
func (r *mongoPostRepository) CountByPillar(ctx context.Context, userID primitive.ObjectID) (map[domain.Pillar]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": userID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$activityType",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Pillar domain.Pillar `bson:"_id"`
		Count  int64         `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[domain.Pillar]int64, len(rows))
	for _, row := range rows {
		counts[row.Pillar] = row.Count
	}
	return counts, nil
}

// AdjustCounters bumps the denormalized like/comment counters on a post.
func (r *mongoPostRepository) AdjustCounters(ctx context.Context, postID primitive.ObjectID, likes, comments int) error {
	inc := bson.M{}
	if likes != 0 {
		inc["likesCount"] = likes
	}
	if comments != 0 {
		inc["commentsCount"] = comments
	}
	if len(inc) == 0 {
		return nil
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$inc": inc})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsurePostIndexes creates necessary indexes. Call during startup.
func EnsurePostIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Feed pages sort by recency.
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "activityType", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
