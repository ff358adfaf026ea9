package listingRepo

import (
	"errors"

	"foodbridge/models"
)

// ErrNotFound is returned when no listing matches the lookup.
var ErrNotFound = errors.New("listing not found")

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// Create inserts a new listing record.
	Create(listing *models.Listing) error
	// GetByID retrieves a listing by its unique ID. Returns ErrNotFound when absent.
	GetByID(id string) (*models.Listing, error)
	// GetAll retrieves listings with skip/limit pagination.
	GetAll(skip, limit int64) ([]models.Listing, error)
	// GetBySupermarket retrieves all listings owned by a supermarket account.
	GetBySupermarket(supermarketID string) ([]models.Listing, error)
	// UpdateWithDocument applies a partial update document to a listing record.
	UpdateWithDocument(id string, update map[string]any) error
	// Delete removes a listing record by its ID.
	Delete(id string) error
	// Count returns the total number of listing records.
	Count() (int64, error)
}
