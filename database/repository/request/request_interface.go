package requestRepo

import (
	"errors"

	"foodbridge/models"
)

// ErrNotFound is returned when no request matches the lookup.
var ErrNotFound = errors.New("request not found")

// RequestRepository defines methods for request data access.
type RequestRepository interface {
	// Create inserts a new request record.
	Create(req *models.Request) error
	// GetByID retrieves a request by its unique ID. Returns ErrNotFound when absent.
	GetByID(id string) (*models.Request, error)
	// GetByRequester retrieves all requests created by a user.
	GetByRequester(requesterID string) ([]models.Request, error)
	// GetByListingIDs retrieves all requests against any of the given listings.
	GetByListingIDs(listingIDs []string) ([]models.Request, error)
	// GetAll retrieves all request records.
	GetAll() ([]models.Request, error)
	// UpdateWithDocument applies a partial update document to a request record.
	UpdateWithDocument(id string, update map[string]any) error
	// Count returns the total number of request records.
	Count() (int64, error)
}
