package notificationRepo

import "foodbridge/models"

// NotificationRepository defines methods for notification data access.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(n *models.Notification) error
	// GetByUser retrieves all notifications addressed to a user.
	GetByUser(userID string) ([]models.Notification, error)
	// MarkRead flags a notification as read, scoped to its owner.
	MarkRead(id, userID string) error
}
