package handlers

import (
	"net/http"

	"foodbridge/middleware"
	"foodbridge/models"
	"foodbridge/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves notification endpoints.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{NotificationService: svc}
}

// GetNotificationsHandler handles GET /api/notifications.
func (h *NotificationHandler) GetNotificationsHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	notifications, err := h.NotificationService.ListFor(actor.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler handles PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.NotificationService.MarkRead(c.Param("id"), actor.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Notification marked as read"})
}
