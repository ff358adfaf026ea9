package handlers

import (
	"errors"
	"net/http"

	"foodbridge/middleware"
	"foodbridge/models"
	"foodbridge/services/matching"
	"foodbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MatchingHandler serves the recommendation endpoint.
type MatchingHandler struct {
	MatchingService matching.MatchingService
}

// NewMatchingHandler creates a MatchingHandler.
func NewMatchingHandler(svc matching.MatchingService) *MatchingHandler {
	return &MatchingHandler{MatchingService: svc}
}

// MatchListingHandler handles POST /api/matching. It returns the listing id
// and the raw reasoning output; the text is not parsed or validated here.
func (h *MatchingHandler) MatchListingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.MatchingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.MatchingService.MatchListing(c.Request.Context(), req.ListingID, actor)
	if err != nil {
		var upstream *matching.UpstreamError
		var reasoning *matching.ReasoningError
		switch {
		case errors.Is(err, matching.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, matching.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, matching.ErrLocationUnset):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &upstream), errors.As(err, &reasoning):
			logger.Error("Matching upstream failure", zap.String("listingID", req.ListingID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			logger.Error("Matching failed", zap.String("listingID", req.ListingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
