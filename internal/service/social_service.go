package service

import (
	"context"
	"errors"
	"strings"

	"proofit/internal/domain"
	"proofit/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrSelfFollow   = errors.New("you cannot follow yourself")
	ErrEmptyComment = errors.New("comment text cannot be empty")
)

// SocialService covers likes, comments and follows, keeping the denormalized
// post counters in step with the underlying collections.
type SocialService interface {
	Like(ctx context.Context, userID, postID primitive.ObjectID) error
	Unlike(ctx context.Context, userID, postID primitive.ObjectID) error
	AddComment(ctx context.Context, userID, postID primitive.ObjectID, text string) (*domain.Comment, error)
	Comments(ctx context.Context, postID primitive.ObjectID) ([]domain.CommentWithAuthor, error)
	DeleteComment(ctx context.Context, userID, postID, commentID primitive.ObjectID) error
	Follow(ctx context.Context, followerID, followingID primitive.ObjectID) error
	Unfollow(ctx context.Context, followerID, followingID primitive.ObjectID) error
}

type socialService struct {
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	followRepo  repository.FollowRepository
	commentRepo repository.CommentRepository
	profileRepo repository.ProfileRepository
}

// NewSocialService creates a new social service.
func NewSocialService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, followRepo repository.FollowRepository, commentRepo repository.CommentRepository, profileRepo repository.ProfileRepository) SocialService {
	return &socialService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
		commentRepo: commentRepo,
		profileRepo: profileRepo,
	}
}

// Like records a like and bumps the counter. Double-liking is a no-op so the
// counter can never drift upward from repeated taps.
func (s *socialService) Like(ctx context.Context, userID, postID primitive.ObjectID) error {
	created, err := s.likeRepo.Like(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !created {
		return nil
	}
	if err := s.postRepo.AdjustCounters(ctx, postID, 1, 0); err != nil {
		log.Printf("WARN: like counter bump failed for post %s: %v", postID.Hex(), err)
	}
	return nil
}

// Unlike removes a like and decrements the counter when one was removed.
func (s *socialService) Unlike(ctx context.Context, userID, postID primitive.ObjectID) error {
	removed, err := s.likeRepo.Unlike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}
	if err := s.postRepo.AdjustCounters(ctx, postID, -1, 0); err != nil {
		log.Printf("WARN: like counter decrement failed for post %s: %v", postID.Hex(), err)
	}
	return nil
}

// AddComment validates and stores a comment, then bumps the counter.
func (s *socialService) AddComment(ctx context.Context, userID, postID primitive.ObjectID, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	// Reject comments on posts that do not exist.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	commentID, err := s.commentRepo.Add(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = commentID

	if err := s.postRepo.AdjustCounters(ctx, postID, 0, 1); err != nil {
		log.Printf("WARN: comment counter bump failed for post %s: %v", postID.Hex(), err)
	}
	return comment, nil
}

// Comments lists a post's comments oldest first.
func (s *socialService) Comments(ctx context.Context, postID primitive.ObjectID) ([]domain.CommentWithAuthor, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// DeleteComment removes the user's own comment and decrements the counter.
func (s *socialService) DeleteComment(ctx context.Context, userID, postID, commentID primitive.ObjectID) error {
	if err := s.commentRepo.Delete(ctx, commentID, userID); err != nil {
		return err
	}
	if err := s.postRepo.AdjustCounters(ctx, postID, 0, -1); err != nil {
		log.Printf("WARN: comment counter decrement failed for post %s: %v", postID.Hex(), err)
	}
	return nil
}

// Follow records a follow edge. Self-follows are rejected; re-follows are
// no-ops.
func (s *socialService) Follow(ctx context.Context, followerID, followingID primitive.ObjectID) error {
	if followerID == followingID {
		return ErrSelfFollow
	}
	// The target must exist.
	if _, err := s.profileRepo.GetByID(ctx, followingID); err != nil {
		return err
	}
	_, err := s.followRepo.Follow(ctx, followerID, followingID)
	return err
}

// Unfollow removes a follow edge, tolerating an edge that never existed.
func (s *socialService) Unfollow(ctx context.Context, followerID, followingID primitive.ObjectID) error {
	return s.followRepo.Unfollow(ctx, followerID, followingID)
}
