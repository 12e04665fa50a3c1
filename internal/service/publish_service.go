package service

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"proofit/internal/activity"
	"proofit/internal/domain"
	"proofit/internal/repository"
	"proofit/internal/storage"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrPublishInFlight = errors.New("a publish is already in progress")
	ErrNoActiveSession = errors.New("no activity session to publish")
	ErrPhotoRequired   = errors.New("a post requires a photo")
)

// PublishInput carries everything the compose screen submits.
type PublishInput struct {
	Caption     string
	Location    string
	Photo       io.Reader
	ContentType string
}

// PublishService turns the current activity session into a published post:
// the photo is uploaded first, then the remote post is created, and only then
// is the local snapshot taken and the session reset.
type PublishService interface {
	Publish(ctx context.Context, userID primitive.ObjectID, input PublishInput) (*domain.Post, error)
}

type publishService struct {
	session  *activity.Session
	media    storage.MediaStorage
	postRepo repository.PostRepository

	// Single-flight guard: a second submit while one is running is rejected,
	// which is what stops the double-tap duplicate post.
	inFlight atomic.Bool
}

// NewPublishService creates a new publish service bound to a session.
func NewPublishService(session *activity.Session, media storage.MediaStorage, postRepo repository.PostRepository) PublishService {
	return &publishService{
		session:  session,
		media:    media,
		postRepo: postRepo,
	}
}

// Publish uploads the photo, creates the remote post and snapshots the session
// locally. The upload happens before the post create so a failed upload never
// leaves an orphan post pointing at a missing image.
func (s *publishService) Publish(ctx context.Context, userID primitive.ObjectID, input PublishInput) (*domain.Post, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrPublishInFlight
	}
	defer s.inFlight.Store(false)

	pillar := s.session.ActivePillar()
	if pillar == domain.PillarNone {
		return nil, ErrNoActiveSession
	}
	if input.Photo == nil {
		return nil, ErrPhotoRequired
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	imageURL, err := s.media.UploadPostImage(ctx, userID.Hex(), input.Photo, contentType)
	if err != nil {
		log.Printf("ERROR: photo upload failed for user %s: %v", userID.Hex(), err)
		return nil, err
	}

	var activityData map[string]any
	if data := s.session.Data(); data != nil {
		activityData = data.Document()
	}

	post := &domain.Post{
		UserID:       userID,
		Pillar:       pillar,
		ImageURL:     imageURL,
		Caption:      input.Caption,
		ActivityData: activityData,
		LocationName: input.Location,
	}
	postID, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = postID

	// Snapshot locally and reset the session. The remote post is already
	// durable at this point, so a local failure only costs the offline copy.
	s.session.SetPhoto(imageURL)
	if _, err := s.session.CreatePost(input.Caption); err != nil {
		log.Printf("WARN: local post snapshot failed after publish %s: %v", postID.Hex(), err)
	}

	log.Printf("INFO: published %s post %s for user %s", pillar, postID.Hex(), userID.Hex())
	return post, nil
}
