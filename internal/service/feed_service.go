package service

import (
	"context"
	"errors"

	"proofit/internal/activity"
	"proofit/internal/domain"
	"proofit/internal/feed"
	"proofit/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedService assembles feed pages: remote posts decorated with the viewer's
// like state, merged with any local posts that have not synced back yet.
type FeedService interface {
	Page(ctx context.Context, viewerID primitive.ObjectID, filter repository.FeedFilter) ([]feed.Entry, error)
	Post(ctx context.Context, viewerID, postID primitive.ObjectID) (*feed.Entry, error)
	UserPosts(ctx context.Context, viewerID, userID primitive.ObjectID, limit, offset int64) ([]feed.Entry, error)
}

type feedService struct {
	session     *activity.Session
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	profileRepo repository.ProfileRepository
	pageSize    int64
}

// NewFeedService creates a new feed service.
func NewFeedService(session *activity.Session, postRepo repository.PostRepository, likeRepo repository.LikeRepository, profileRepo repository.ProfileRepository, pageSize int64) FeedService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &feedService{
		session:     session,
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		profileRepo: profileRepo,
		pageSize:    pageSize,
	}
}

// Page returns one feed page. Local posts are only merged into the first page
// of the unfiltered feed; deeper pages and pillar-filtered views are purely
// remote.
func (s *feedService) Page(ctx context.Context, viewerID primitive.ObjectID, filter repository.FeedFilter) ([]feed.Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = s.pageSize
	}

	posts, err := s.postRepo.Feed(ctx, filter)
	if err != nil {
		return nil, err
	}
	remote, err := s.decorate(ctx, viewerID, posts)
	if err != nil {
		return nil, err
	}

	if filter.Offset > 0 {
		return remote, nil
	}
	local, err := s.localEntries(ctx, viewerID, filter.Pillar)
	if err != nil {
		return nil, err
	}
	return feed.Merge(local, remote), nil
}

// Post returns a single post as a feed entry.
func (s *feedService) Post(ctx context.Context, viewerID, postID primitive.ObjectID) (*feed.Entry, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likeRepo.HasLiked(ctx, viewerID, postID)
	if err != nil {
		return nil, err
	}
	post.IsLiked = liked
	entry := feed.FromRemote(*post)
	return &entry, nil
}

// UserPosts returns a page of one user's posts, newest first.
func (s *feedService) UserPosts(ctx context.Context, viewerID, userID primitive.ObjectID, limit, offset int64) ([]feed.Entry, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	posts, err := s.postRepo.GetByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, viewerID, posts)
}

// decorate fills in per-viewer like state with a single batched lookup and
// converts to feed entries.
func (s *feedService) decorate(ctx context.Context, viewerID primitive.ObjectID, posts []domain.PostWithAuthor) ([]feed.Entry, error) {
	postIDs := make([]primitive.ObjectID, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}
	liked, err := s.likeRepo.LikedSet(ctx, viewerID, postIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]feed.Entry, len(posts))
	for i, p := range posts {
		p.IsLiked = liked[p.ID]
		entries[i] = feed.FromRemote(p)
	}
	return entries, nil
}

// localEntries converts the session's unsynced posts, attributed to the
// viewer. A missing viewer profile is not fatal when there is nothing local.
func (s *feedService) localEntries(ctx context.Context, viewerID primitive.ObjectID, pillar domain.Pillar) ([]feed.Entry, error) {
	localPosts := s.session.Posts()
	if len(localPosts) == 0 {
		return nil, nil
	}
	author, err := s.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]feed.Entry, 0, len(localPosts))
	for _, p := range localPosts {
		if pillar != domain.PillarNone && p.Pillar != pillar {
			continue
		}
		entries = append(entries, feed.FromLocal(p, *author))
	}
	return entries, nil
}
