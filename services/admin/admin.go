// Package admin exposes read-only platform views for admin accounts.
package admin

import (
	listingRepo "foodbridge/database/repository/listing"
	requestRepo "foodbridge/database/repository/request"
	userRepo "foodbridge/database/repository/user"
	"foodbridge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Stats aggregates platform counts for the admin dashboard.
type Stats struct {
	UserCount    int64 `json:"user_count"`
	ListingCount int64 `json:"listing_count"`
	RequestCount int64 `json:"request_count"`
}

// AdminService defines admin read operations.
type AdminService interface {
	GetAllUsers() ([]models.User, error)
	GetAllListings() ([]models.Listing, error)
	GetAllRequests() ([]models.Request, error)
	GetStats() (*Stats, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Listings listingRepo.ListingRepository
	Requests requestRepo.RequestRepository
}

// GetAllUsers returns all accounts without credential fields.
func (s *DefaultAdminService) GetAllUsers() ([]models.User, error) {
	return s.Users.GetAllWithProjection(bson.M{"password_hash": 0})
}

// GetAllListings returns all listings.
func (s *DefaultAdminService) GetAllListings() ([]models.Listing, error) {
	return s.Listings.GetAll(0, 0)
}

// GetAllRequests returns all requests.
func (s *DefaultAdminService) GetAllRequests() ([]models.Request, error) {
	return s.Requests.GetAll()
}

// GetStats returns platform counts.
func (s *DefaultAdminService) GetStats() (*Stats, error) {
	users, err := s.Users.Count()
	if err != nil {
		return nil, err
	}
	listings, err := s.Listings.Count()
	if err != nil {
		return nil, err
	}
	requests, err := s.Requests.Count()
	if err != nil {
		return nil, err
	}
	return &Stats{UserCount: users, ListingCount: listings, RequestCount: requests}, nil
}
