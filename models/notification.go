// models/notification.go
package models

import "time"

// Notification types.
const (
	NotificationNewListing          = "new_listing"
	NotificationRequestReceived     = "request_received"
	NotificationRequestStatusUpdate = "request_status_update"
)

// Notification is a persisted message shown to a user.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Type      string    `bson:"type" json:"type"`
	Message   string    `bson:"message" json:"message"`
	IsRead    bool      `bson:"is_read" json:"is_read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
