package service

import (
	"context"
	"strings"
	"testing"

	"proofit/internal/domain"
	"proofit/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type profileFixture struct {
	profiles *fakeProfileRepo
	posts    *fakePostRepo
	follows  *fakeFollowRepo
	media    *fakeMedia
	svc      ProfileService
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()
	f := &profileFixture{
		profiles: newFakeProfileRepo(),
		posts:    newFakePostRepo(),
		follows:  newFakeFollowRepo(),
		media:    &fakeMedia{},
	}
	f.svc = NewProfileService(f.profiles, f.posts, f.follows, f.media)
	return f
}

func TestProfileViewStats(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	alex := f.profiles.add("alex")
	sam := f.profiles.add("sam")

	for _, pillar := range []domain.Pillar{domain.PillarIron, domain.PillarIron, domain.PillarDeep} {
		_, err := f.posts.Create(ctx, &domain.Post{UserID: alex.ID, Pillar: pillar, ImageURL: "https://cdn/p.jpg"})
		require.NoError(t, err)
	}
	_, err := f.follows.Follow(ctx, sam.ID, alex.ID)
	require.NoError(t, err)

	view, err := f.svc.Get(ctx, sam.ID, alex.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), view.Stats.Posts)
	assert.Equal(t, int64(2), view.Stats.ByPillar[domain.PillarIron])
	assert.Equal(t, int64(1), view.Stats.ByPillar[domain.PillarDeep])
	assert.Equal(t, int64(1), view.Stats.Followers)
	assert.True(t, view.IsFollowing)
	assert.False(t, view.IsSelf)
}

func TestProfileViewSelf(t *testing.T) {
	f := newProfileFixture(t)
	sam := f.profiles.add("sam")

	view, err := f.svc.Get(context.Background(), sam.ID, sam.ID)
	require.NoError(t, err)
	assert.True(t, view.IsSelf)
	assert.False(t, view.IsFollowing)
}

func TestProfileGetByUsername(t *testing.T) {
	f := newProfileFixture(t)
	sam := f.profiles.add("sam")
	viewer := f.profiles.add("alex")

	view, err := f.svc.GetByUsername(context.Background(), viewer.ID, "SAM")
	require.NoError(t, err)
	assert.Equal(t, sam.ID, view.Profile.ID)

	_, err = f.svc.GetByUsername(context.Background(), viewer.ID, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileUpdate(t *testing.T) {
	f := newProfileFixture(t)
	sam := f.profiles.add("sam")

	name := "Sam R."
	bio := "four pillars a day"
	private := true
	updated, err := f.svc.Update(context.Background(), sam.ID, domain.ProfileUpdate{
		DisplayName: &name,
		Bio:         &bio,
		IsPrivate:   &private,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sam R.", updated.DisplayName)
	assert.Equal(t, "four pillars a day", updated.Bio)
	assert.True(t, updated.IsPrivate)
}

func TestProfileUploadAvatar(t *testing.T) {
	f := newProfileFixture(t)
	sam := f.profiles.add("sam")

	updated, err := f.svc.UploadAvatar(context.Background(), sam.ID, strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Contains(t, updated.AvatarURL, "avatars/"+sam.ID.Hex())
	assert.Equal(t, 1, f.media.uploads)
}

func TestProfileGetMissing(t *testing.T) {
	f := newProfileFixture(t)
	viewer := f.profiles.add("sam")

	_, err := f.svc.Get(context.Background(), viewer.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
