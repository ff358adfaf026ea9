// models/listing.go
package models

import "time"

// Listing is a surplus-inventory offer posted by a supermarket. Location is
// the origin city name used by the matching subsystem.
type Listing struct {
	ID            string    `bson:"id" json:"id"`
	SupermarketID string    `bson:"supermarket_id" json:"supermarket_id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Category      string    `bson:"category" json:"category"`
	Quantity      int       `bson:"quantity" json:"quantity"`
	ExpiryDate    time.Time `bson:"expiry_date" json:"expiry_date"`
	Location      string    `bson:"location" json:"location"`
	ImageURL      string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
