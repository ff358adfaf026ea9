package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodbridge/middleware"
	"foodbridge/models"
	"foodbridge/services/listing"
	"foodbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler serves listing endpoints.
type ListingHandler struct {
	ListingService listing.ListingService
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{ListingService: svc}
}

// CreateListingHandler handles POST /api/listings.
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		Title       string    `json:"title" binding:"required"`
		Description string    `json:"description" binding:"required"`
		Category    string    `json:"category" binding:"required"`
		Quantity    int       `json:"quantity" binding:"min=0"`
		ExpiryDate  time.Time `json:"expiry_date" binding:"required"`
		Location    string    `json:"location"`
		ImageURL    string    `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.ListingService.Create(models.Listing{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    req.Quantity,
		ExpiryDate:  req.ExpiryDate,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	}, actor)
	if err != nil {
		if errors.Is(err, listing.ErrRoleNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create listing", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Listing created successfully", "listing_id": created.ID})
}

// GetListingsHandler handles GET /api/listings with skip/limit pagination.
func (h *ListingHandler) GetListingsHandler(c *gin.Context) {
	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	listings, err := h.ListingService.List(skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	c.JSON(http.StatusOK, listings)
}

// GetListingHandler handles GET /api/listings/:id.
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	l, err := h.ListingService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, l)
}

// UpdateListingHandler handles PUT /api/listings/:id.
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req models.Listing
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ListingService.Update(c.Param("id"), req, actor); err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Listing updated successfully"})
}

// DeleteListingHandler handles DELETE /api/listings/:id.
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.ListingService.Delete(c.Param("id"), actor); err != nil {
		writeListingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Listing deleted successfully"})
}

func writeListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, listing.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
	case errors.Is(err, listing.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
