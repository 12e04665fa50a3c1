package api

import (
	"errors"
	"fmt"
	"net/http"

	"proofit/internal/repository"
	"proofit/internal/service"

	"github.com/gin-gonic/gin"
)

// SocialHandler covers likes, comments and follows.
type SocialHandler struct {
	socialService service.SocialService
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(socialService service.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// Like likes a post. Liking twice succeeds quietly.
func (h *SocialHandler) Like(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathObjectID(c, "postId")
	if !ok {
		return
	}

	if err := h.socialService.Like(c.Request.Context(), userID, postID); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to like post")
		return
	}
	c.Status(http.StatusNoContent)
}

// Unlike removes a like.
func (h *SocialHandler) Unlike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathObjectID(c, "postId")
	if !ok {
		return
	}

	if err := h.socialService.Unlike(c.Request.Context(), userID, postID); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to unlike post")
		return
	}
	c.Status(http.StatusNoContent)
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Comments lists a post's comments, oldest first.
func (h *SocialHandler) Comments(c *gin.Context) {
	postID, ok := pathObjectID(c, "postId")
	if !ok {
		return
	}

	comments, err := h.socialService.Comments(c.Request.Context(), postID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment adds a comment to a post.
func (h *SocialHandler) AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathObjectID(c, "postId")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	comment, err := h.socialService.AddComment(c.Request.Context(), userID, postID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "Post not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to add comment")
		}
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment removes the caller's own comment.
func (h *SocialHandler) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathObjectID(c, "postId")
	if !ok {
		return
	}
	commentID, ok := pathObjectID(c, "commentId")
	if !ok {
		return
	}

	if err := h.socialService.DeleteComment(c.Request.Context(), userID, postID, commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Comment not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete comment")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Follow follows a user.
func (h *SocialHandler) Follow(c *gin.Context) {
	followerID, ok := currentUserID(c)
	if !ok {
		return
	}
	followingID, ok := pathObjectID(c, "userId")
	if !ok {
		return
	}

	if err := h.socialService.Follow(c.Request.Context(), followerID, followingID); err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFollow):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			abortWithError(c, http.StatusNotFound, "User not found")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to follow user")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Unfollow unfollows a user.
func (h *SocialHandler) Unfollow(c *gin.Context) {
	followerID, ok := currentUserID(c)
	if !ok {
		return
	}
	followingID, ok := pathObjectID(c, "userId")
	if !ok {
		return
	}

	if err := h.socialService.Unfollow(c.Request.Context(), followerID, followingID); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to unfollow user")
		return
	}
	c.Status(http.StatusNoContent)
}
