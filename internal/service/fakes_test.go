package service

import (
	"context"
	"io"
	"strings"
	"time"

	"proofit/internal/domain"
	"proofit/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- storage fake ---

type fakeMedia struct {
	uploads   int
	uploadErr error
	lastKey   string
}

func (f *fakeMedia) UploadPostImage(_ context.Context, userID string, body io.Reader, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	_, _ = io.Copy(io.Discard, body)
	f.uploads++
	f.lastKey = "posts/" + userID + "/upload.jpg"
	return "https://cdn.example.com/" + f.lastKey, nil
}

func (f *fakeMedia) UploadAvatar(_ context.Context, userID string, body io.Reader, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	_, _ = io.Copy(io.Discard, body)
	f.uploads++
	return "https://cdn.example.com/avatars/" + userID + ".jpg?v=1", nil
}

func (f *fakeMedia) GeneratePresignedDownloadURL(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://cdn.example.com/" + objectKey + "?signed=1", nil
}

func (f *fakeMedia) DeleteObject(context.Context, string) error { return nil }

// --- post repo fake ---

type fakePostRepo struct {
	posts     []*domain.Post
	profiles  map[primitive.ObjectID]domain.Profile
	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{profiles: map[primitive.ObjectID]domain.Profile{}}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) (primitive.ObjectID, error) {
	if r.createErr != nil {
		return primitive.NilObjectID, r.createErr
	}
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now().UTC()
	r.posts = append([]*domain.Post{post}, r.posts...)
	return post.ID, nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.PostWithAuthor, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return &domain.PostWithAuthor{Post: *p, Author: r.profiles[p.UserID]}, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePostRepo) Feed(_ context.Context, filter repository.FeedFilter) ([]domain.PostWithAuthor, error) {
	var out []domain.PostWithAuthor
	for _, p := range r.posts {
		if filter.Pillar != domain.PillarNone && p.Pillar != filter.Pillar {
			continue
		}
		out = append(out, domain.PostWithAuthor{Post: *p, Author: r.profiles[p.UserID]})
	}
	if filter.Offset > 0 {
		if filter.Offset >= int64(len(out)) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *fakePostRepo) GetByUser(ctx context.Context, userID primitive.ObjectID, limit, offset int64) ([]domain.PostWithAuthor, error) {
	var out []domain.PostWithAuthor
	for _, p := range r.posts {
		if p.UserID == userID {
			out = append(out, domain.PostWithAuthor{Post: *p, Author: r.profiles[p.UserID]})
		}
	}
	return out, nil
}

func (r *fakePostRepo) Delete(_ context.Context, postID, userID primitive.ObjectID) error {
	for i, p := range r.posts {
		if p.ID == postID && p.UserID == userID {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakePostRepo) CountByUser(_ context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range r.posts {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakePostRepo) CountByPillar(_ context.Context, userID primitive.ObjectID) (map[domain.Pillar]int64, error) {
	counts := map[domain.Pillar]int64{}
	for _, p := range r.posts {
		if p.UserID == userID {
			counts[p.Pillar]++
		}
	}
	return counts, nil
}

func (r *fakePostRepo) AdjustCounters(_ context.Context, postID primitive.ObjectID, likes, comments int) error {
	for _, p := range r.posts {
		if p.ID == postID {
			p.LikesCount += likes
			p.CommentsCount += comments
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- like repo fake ---

type likeKey struct {
	user, post primitive.ObjectID
}

type fakeLikeRepo struct {
	likes map[likeKey]bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[likeKey]bool{}}
}

func (r *fakeLikeRepo) Like(_ context.Context, userID, postID primitive.ObjectID) (bool, error) {
	k := likeKey{userID, postID}
	if r.likes[k] {
		return false, nil
	}
	r.likes[k] = true
	return true, nil
}

func (r *fakeLikeRepo) Unlike(_ context.Context, userID, postID primitive.ObjectID) (bool, error) {
	k := likeKey{userID, postID}
	if !r.likes[k] {
		return false, nil
	}
	delete(r.likes, k)
	return true, nil
}

func (r *fakeLikeRepo) HasLiked(_ context.Context, userID, postID primitive.ObjectID) (bool, error) {
	return r.likes[likeKey{userID, postID}], nil
}

func (r *fakeLikeRepo) LikedSet(_ context.Context, userID primitive.ObjectID, postIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	out := map[primitive.ObjectID]bool{}
	for _, id := range postIDs {
		if r.likes[likeKey{userID, id}] {
			out[id] = true
		}
	}
	return out, nil
}

// --- follow repo fake ---

type fakeFollowRepo struct {
	edges map[likeKey]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[likeKey]bool{}}
}

func (r *fakeFollowRepo) Follow(_ context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	k := likeKey{followerID, followingID}
	if r.edges[k] {
		return false, nil
	}
	r.edges[k] = true
	return true, nil
}

func (r *fakeFollowRepo) Unfollow(_ context.Context, followerID, followingID primitive.ObjectID) error {
	delete(r.edges, likeKey{followerID, followingID})
	return nil
}

func (r *fakeFollowRepo) IsFollowing(_ context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	return r.edges[likeKey{followerID, followingID}], nil
}

func (r *fakeFollowRepo) FollowerCount(_ context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for k := range r.edges {
		if k.post == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeFollowRepo) FollowingCount(_ context.Context, userID primitive.ObjectID) (int64, error) {
	var n int64
	for k := range r.edges {
		if k.user == userID {
			n++
		}
	}
	return n, nil
}

// --- comment repo fake ---

type fakeCommentRepo struct {
	comments []*domain.Comment
}

func (r *fakeCommentRepo) Add(_ context.Context, comment *domain.Comment) (primitive.ObjectID, error) {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now().UTC()
	r.comments = append(r.comments, comment)
	return comment.ID, nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID primitive.ObjectID) ([]domain.CommentWithAuthor, error) {
	var out []domain.CommentWithAuthor
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, domain.CommentWithAuthor{Comment: *c})
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, commentID, userID primitive.ObjectID) error {
	for i, c := range r.comments {
		if c.ID == commentID && c.UserID == userID {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- profile repo fake ---

type fakeProfileRepo struct {
	profiles map[primitive.ObjectID]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[primitive.ObjectID]*domain.Profile{}}
}

func (r *fakeProfileRepo) add(username string) *domain.Profile {
	p := &domain.Profile{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: time.Now().UTC(),
	}
	r.profiles[p.ID] = p
	return p
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.Profile) (primitive.ObjectID, error) {
	for _, p := range r.profiles {
		if p.Email == profile.Email || p.Username == profile.Username {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	profile.ID = primitive.NewObjectID()
	profile.Username = strings.ToLower(profile.Username)
	profile.CreatedAt = time.Now().UTC()
	clone := *profile
	r.profiles[profile.ID] = &clone
	return profile.ID, nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProfileRepo) GetByUsername(_ context.Context, username string) (*domain.Profile, error) {
	for _, p := range r.profiles {
		if p.Username == strings.ToLower(username) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProfileRepo) Update(_ context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.DisplayName != nil {
		p.DisplayName = *update.DisplayName
	}
	if update.AvatarURL != nil {
		p.AvatarURL = *update.AvatarURL
	}
	if update.Bio != nil {
		p.Bio = *update.Bio
	}
	if update.IsPrivate != nil {
		p.IsPrivate = *update.IsPrivate
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProfileRepo) UsernameAvailable(_ context.Context, username string, exclude primitive.ObjectID) (bool, error) {
	for id, p := range r.profiles {
		if p.Username == strings.ToLower(username) && id != exclude {
			return false, nil
		}
	}
	return true, nil
}

func (r *fakeProfileRepo) Search(_ context.Context, query string, _ int64) ([]domain.Profile, error) {
	q := strings.ToLower(query)
	var out []domain.Profile
	for _, p := range r.profiles {
		if strings.Contains(p.Username, q) || strings.Contains(strings.ToLower(p.DisplayName), q) {
			out = append(out, *p)
		}
	}
	return out, nil
}
