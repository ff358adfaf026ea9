package handlers

import (
	"errors"
	"net/http"

	"foodbridge/middleware"
	"foodbridge/models"
	"foodbridge/services/request"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves request endpoints.
type RequestHandler struct {
	RequestService request.RequestService
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc request.RequestService) *RequestHandler {
	return &RequestHandler{RequestService: svc}
}

// CreateRequestHandler handles POST /api/requests.
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		ListingID string `json:"listing_id" binding:"required"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.RequestService.Create(req.ListingID, req.Notes, actor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Request created successfully", "request_id": created.ID})
}

// GetRequestsHandler handles GET /api/requests.
func (h *RequestHandler) GetRequestsHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	requests, err := h.RequestService.ListFor(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if requests == nil {
		requests = []models.Request{}
	}
	c.JSON(http.StatusOK, requests)
}

// GetRequestHandler handles GET /api/requests/:id.
func (h *RequestHandler) GetRequestHandler(c *gin.Context) {
	req, err := h.RequestService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, request.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// UpdateRequestHandler handles PUT /api/requests/:id.
func (h *RequestHandler) UpdateRequestHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.RequestService.UpdateStatus(c.Param("id"), req.Status, actor); err != nil {
		switch {
		case errors.Is(err, request.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		case errors.Is(err, request.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, request.ErrBadStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Request updated successfully"})
}
