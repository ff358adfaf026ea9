// models/request.go
package models

import "time"

// Request statuses.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestDeclined = "declined"
)

// Request is a claim on a listing made by a food bank or consumer.
type Request struct {
	ID          string    `bson:"id" json:"id"`
	ListingID   string    `bson:"listing_id" json:"listing_id"`
	RequesterID string    `bson:"requester_id" json:"requester_id"`
	Location    string    `bson:"location" json:"location"`
	Status      string    `bson:"status" json:"status"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
