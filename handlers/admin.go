package handlers

import (
	"net/http"

	"foodbridge/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves admin read endpoints.
type AdminHandler struct {
	AdminService admin.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{AdminService: svc}
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.AdminService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAllListingsHandler handles GET /api/admin/listings.
func (h *AdminHandler) GetAllListingsHandler(c *gin.Context) {
	listings, err := h.AdminService.GetAllListings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetAllRequestsHandler handles GET /api/admin/requests.
func (h *AdminHandler) GetAllRequestsHandler(c *gin.Context) {
	requests, err := h.AdminService.GetAllRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetStatsHandler handles GET /api/admin/stats.
func (h *AdminHandler) GetStatsHandler(c *gin.Context) {
	stats, err := h.AdminService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
