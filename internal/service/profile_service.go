package service

import (
	"context"
	"io"

	"proofit/internal/domain"
	"proofit/internal/repository"
	"proofit/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileStats are the counts shown on a profile screen.
type ProfileStats struct {
	Posts     int64                   `json:"posts"`
	Followers int64                   `json:"followers"`
	Following int64                   `json:"following"`
	ByPillar  map[domain.Pillar]int64 `json:"byPillar"`
}

// ProfileView is a profile with its stats and the viewer's follow state.
type ProfileView struct {
	Profile     domain.Profile `json:"profile"`
	Stats       ProfileStats   `json:"stats"`
	IsFollowing bool           `json:"isFollowing"`
	IsSelf      bool           `json:"isSelf"`
}

// ProfileService covers profile reads, edits and avatar uploads.
type ProfileService interface {
	Get(ctx context.Context, viewerID, profileID primitive.ObjectID) (*ProfileView, error)
	GetByUsername(ctx context.Context, viewerID primitive.ObjectID, username string) (*ProfileView, error)
	Update(ctx context.Context, userID primitive.ObjectID, update domain.ProfileUpdate) (*domain.Profile, error)
	UploadAvatar(ctx context.Context, userID primitive.ObjectID, body io.Reader, contentType string) (*domain.Profile, error)
	Search(ctx context.Context, query string, limit int64) ([]domain.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	postRepo    repository.PostRepository
	followRepo  repository.FollowRepository
	media       storage.MediaStorage
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, postRepo repository.PostRepository, followRepo repository.FollowRepository, media storage.MediaStorage) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		postRepo:    postRepo,
		followRepo:  followRepo,
		media:       media,
	}
}

// Get returns a profile with its stats and the viewer's follow state.
func (s *profileService) Get(ctx context.Context, viewerID, profileID primitive.ObjectID) (*ProfileView, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, viewerID, profile)
}

// GetByUsername resolves a profile by its unique username.
func (s *profileService) GetByUsername(ctx context.Context, viewerID primitive.ObjectID, username string) (*ProfileView, error) {
	profile, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, viewerID, profile)
}

func (s *profileService) buildView(ctx context.Context, viewerID primitive.ObjectID, profile *domain.Profile) (*ProfileView, error) {
	postCount, err := s.postRepo.CountByUser(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	byPillar, err := s.postRepo.CountByPillar(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.FollowerCount(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.FollowingCount(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		Profile: *profile,
		Stats: ProfileStats{
			Posts:     postCount,
			Followers: followers,
			Following: following,
			ByPillar:  byPillar,
		},
		IsSelf: viewerID == profile.ID,
	}
	if !view.IsSelf {
		isFollowing, err := s.followRepo.IsFollowing(ctx, viewerID, profile.ID)
		if err != nil {
			return nil, err
		}
		view.IsFollowing = isFollowing
	}
	return view, nil
}

// Update applies profile edits and returns the fresh document.
func (s *profileService) Update(ctx context.Context, userID primitive.ObjectID, update domain.ProfileUpdate) (*domain.Profile, error) {
	return s.profileRepo.Update(ctx, userID, update)
}

// UploadAvatar stores the new avatar and points the profile at it.
func (s *profileService) UploadAvatar(ctx context.Context, userID primitive.ObjectID, body io.Reader, contentType string) (*domain.Profile, error) {
	avatarURL, err := s.media.UploadAvatar(ctx, userID.Hex(), body, contentType)
	if err != nil {
		return nil, err
	}
	return s.profileRepo.Update(ctx, userID, domain.ProfileUpdate{AvatarURL: &avatarURL})
}

// Search matches profiles by username or display name substring.
func (s *profileService) Search(ctx context.Context, query string, limit int64) ([]domain.Profile, error) {
	return s.profileRepo.Search(ctx, query, limit)
}
