package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"proofit/internal/activity"
	"proofit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func publishFixture(t *testing.T) (*activity.Session, *fakeMedia, *fakePostRepo, PublishService) {
	t.Helper()
	session := activity.NewSession()
	media := &fakeMedia{}
	posts := newFakePostRepo()
	return session, media, posts, NewPublishService(session, media, posts)
}

func snapInput() PublishInput {
	return PublishInput{
		Caption:     "proof",
		Photo:       strings.NewReader("jpeg-bytes"),
		ContentType: "image/jpeg",
	}
}

func TestPublishHappyPath(t *testing.T) {
	session, media, posts, svc := publishFixture(t)
	require.NoError(t, session.Start(domain.PillarSnap))
	require.NoError(t, session.SetData(domain.SnapData{Mood: domain.MoodGreat, Energy: 4}))

	userID := primitive.NewObjectID()
	post, err := svc.Publish(context.Background(), userID, snapInput())
	require.NoError(t, err)

	assert.Equal(t, userID, post.UserID)
	assert.Equal(t, domain.PillarSnap, post.Pillar)
	assert.Contains(t, post.ImageURL, "posts/"+userID.Hex())
	assert.Equal(t, "great", post.ActivityData["mood"])
	assert.Equal(t, 1, media.uploads)
	require.Len(t, posts.posts, 1)

	// Session reset, local snapshot kept.
	assert.Equal(t, domain.PillarNone, session.ActivePillar())
	require.Len(t, session.Posts(), 1)
	assert.Equal(t, post.ImageURL, session.Posts()[0].PhotoRef)
}

func TestPublishRequiresActiveSession(t *testing.T) {
	_, media, posts, svc := publishFixture(t)

	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), snapInput())
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.Zero(t, media.uploads)
	assert.Empty(t, posts.posts)
}

func TestPublishRequiresPhoto(t *testing.T) {
	session, _, posts, svc := publishFixture(t)
	require.NoError(t, session.Start(domain.PillarSnap))

	input := snapInput()
	input.Photo = nil
	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), input)
	assert.ErrorIs(t, err, ErrPhotoRequired)
	assert.Empty(t, posts.posts)
}

func TestPublishUploadFailureCreatesNoPost(t *testing.T) {
	session, media, posts, svc := publishFixture(t)
	require.NoError(t, session.Start(domain.PillarDeep))
	media.uploadErr = errors.New("bucket unreachable")

	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), snapInput())
	require.Error(t, err)

	// Fail fast: no orphan post, session untouched for a retry.
	assert.Empty(t, posts.posts)
	assert.Equal(t, domain.PillarDeep, session.ActivePillar())
	assert.Empty(t, session.Posts())
}

func TestPublishCreateFailureKeepsSession(t *testing.T) {
	session, _, posts, svc := publishFixture(t)
	require.NoError(t, session.Start(domain.PillarSnap))
	posts.createErr = errors.New("db down")

	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), snapInput())
	require.Error(t, err)

	assert.Equal(t, domain.PillarSnap, session.ActivePillar())
	assert.Empty(t, session.Posts())
}

func TestPublishSingleFlight(t *testing.T) {
	session, _, posts, svc := publishFixture(t)
	require.NoError(t, session.Start(domain.PillarSnap))

	release := make(chan struct{})
	media := &blockingMedia{release: release, uploading: make(chan struct{})}
	svc = NewPublishService(session, media, posts)

	var wg sync.WaitGroup
	wg.Add(1)
	started := make(chan struct{})
	go func() {
		defer wg.Done()
		close(started)
		_, _ = svc.Publish(context.Background(), primitive.NewObjectID(), snapInput())
	}()

	<-started
	<-media.uploading

	// A second submit while the first is still uploading is rejected.
	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), snapInput())
	assert.ErrorIs(t, err, ErrPublishInFlight)

	close(release)
	wg.Wait()

	// The double tap produced exactly one post.
	assert.Len(t, posts.posts, 1)
}

// blockingMedia parks UploadPostImage until released, to hold a publish
// mid-flight.
type blockingMedia struct {
	fakeMedia
	release   chan struct{}
	uploading chan struct{}
	once      sync.Once
}

func (m *blockingMedia) UploadPostImage(ctx context.Context, userID string, body io.Reader, contentType string) (string, error) {
	m.once.Do(func() { close(m.uploading) })
	<-m.release
	return m.fakeMedia.UploadPostImage(ctx, userID, body, contentType)
}
