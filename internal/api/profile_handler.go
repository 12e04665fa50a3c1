package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"proofit/internal/domain"
	"proofit/internal/repository"
	"proofit/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler covers profile reads, edits, avatar upload and search.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Me returns the caller's own profile view.
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.profileService.Get(c.Request.Context(), userID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile")
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetByUsername returns a profile view looked up by username.
func (h *ProfileHandler) GetByUsername(c *gin.Context) {
	viewerID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.profileService.GetByUsername(c.Request.Context(), viewerID, c.Param("username"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile")
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
	IsPrivate   *bool   `json:"isPrivate"`
}

// Update applies profile edits for the caller.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, domain.ProfileUpdate{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// UploadAvatar replaces the caller's avatar image.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "An avatar file is required")
		return
	}
	defer file.Close()

	profile, err := h.profileService.UploadAvatar(c.Request.Context(), userID, file, header.Header.Get("Content-Type"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}
	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// Search matches profiles by username or display name substring.
func (h *ProfileHandler) Search(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	profiles, err := h.profileService.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to search profiles")
		return
	}

	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = MapProfileToResponse(&profiles[i])
	}
	c.JSON(http.StatusOK, responses)
}
