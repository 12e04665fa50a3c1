package mongo

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"proofit/internal/domain"
	"proofit/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new profile repository.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// Create inserts a new profile. Usernames are stored lowercase.
func (r *mongoProfileRepository) Create(ctx context.Context, profile *domain.Profile) (primitive.ObjectID, error) {
	if profile.Username == "" || profile.Email == "" {
		return primitive.NilObjectID, errors.New("profile requires username and email")
	}
	profile.ID = primitive.NewObjectID()
	profile.Username = strings.ToLower(profile.Username)
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted profile ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single profile by its ID.
func (r *mongoProfileRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail retrieves a profile by email (login path).
func (r *mongoProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByUsername retrieves a profile by its unique username.
func (r *mongoProfileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	return r.findOne(ctx, bson.M{"username": strings.ToLower(username)})
}

func (r *mongoProfileRepository) findOne(ctx context.Context, filter bson.M) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update applies the editable profile fields and returns the fresh document.
func (r *mongoProfileRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.Profile, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.DisplayName != nil {
		set["displayName"] = *update.DisplayName
	}
	if update.AvatarURL != nil {
		set["avatarUrl"] = *update.AvatarURL
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.IsPrivate != nil {
		set["isPrivate"] = *update.IsPrivate
	}

	var profile domain.Profile
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UsernameAvailable checks whether a username is unclaimed, ignoring the
// excluded profile id.
func (r *mongoProfileRepository) UsernameAvailable(ctx context.Context, username string, exclude primitive.ObjectID) (bool, error) {
	filter := bson.M{"username": strings.ToLower(username)}
	if exclude != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Search finds profiles whose username or display name contains the query,
// case-insensitive.
func (r *mongoProfileRepository) Search(ctx context.Context, query string, limit int64) ([]domain.Profile, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return []domain.Profile{}, nil
	}
	if limit <= 0 {
		limit = 20
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"username": pattern},
		{"displayName": pattern},
	}}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []domain.Profile
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// EnsureProfileIndexes creates necessary indexes. Call during startup.
func EnsureProfileIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
