package api

import (
	"errors"
	"net/http"
	"strconv"

	"proofit/internal/repository"
	"proofit/internal/service"

	"github.com/gin-gonic/gin"
)

// PostHandler covers publishing, fetching and deleting posts.
type PostHandler struct {
	publishService service.PublishService
	feedService    service.FeedService
	postRepo       repository.PostRepository
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(publishService service.PublishService, feedService service.FeedService, postRepo repository.PostRepository) *PostHandler {
	return &PostHandler{
		publishService: publishService,
		feedService:    feedService,
		postRepo:       postRepo,
	}
}

// Publish turns the current activity session into a post. The photo comes in
// as multipart form data alongside the caption and location fields.
func (h *PostHandler) Publish(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "A photo file is required")
		return
	}
	defer file.Close()

	input := service.PublishInput{
		Caption:     c.PostForm("caption"),
		Location:    c.PostForm("location"),
		Photo:       file,
		ContentType: header.Header.Get("Content-Type"),
	}

	post, err := h.publishService.Publish(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPublishInFlight):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrNoActiveSession), errors.Is(err, service.ErrPhotoRequired):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to publish post")
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost returns a single post as a feed entry.
func (h *PostHandler) GetPost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathObjectID(c, "postId")
	if !ok {
		return
	}

	entry, err := h.feedService.Post(c.Request.Context(), userID, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Post not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch post")
		}
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeletePost removes the caller's own post.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathObjectID(c, "postId")
	if !ok {
		return
	}

	if err := h.postRepo.Delete(c.Request.Context(), postID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Post not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// UserPosts returns a page of a user's posts.
func (h *PostHandler) UserPosts(c *gin.Context) {
	viewerID, ok := currentUserID(c)
	if !ok {
		return
	}
	userID, ok := pathObjectID(c, "userId")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	entries, err := h.feedService.UserPosts(c.Request.Context(), viewerID, userID, limit, offset)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// pagination reads the limit/offset query parameters, tolerating absence.
func pagination(c *gin.Context) (limit, offset int64) {
	limit, _ = strconv.ParseInt(c.Query("limit"), 10, 64)
	offset, _ = strconv.ParseInt(c.Query("offset"), 10, 64)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
