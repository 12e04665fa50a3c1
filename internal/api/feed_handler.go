package api

import (
	"net/http"

	"proofit/internal/domain"
	"proofit/internal/repository"
	"proofit/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedHandler serves feed pages.
type FeedHandler struct {
	feedService service.FeedService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// Feed returns a page of the feed, optionally filtered to one pillar via the
// ?pillar= query parameter.
func (h *FeedHandler) Feed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pillar := domain.PillarNone
	if raw := c.Query("pillar"); raw != "" {
		pillar = domain.Pillar(raw)
		if !pillar.Valid() {
			abortWithError(c, http.StatusBadRequest, "Invalid pillar filter")
			return
		}
	}
	limit, offset := pagination(c)

	entries, err := h.feedService.Page(c.Request.Context(), userID, repository.FeedFilter{
		Limit:  limit,
		Offset: offset,
		Pillar: pillar,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch feed")
		return
	}
	c.JSON(http.StatusOK, entries)
}
