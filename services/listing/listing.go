// Package listing manages surplus-inventory offers posted by supermarkets.
package listing

import (
	"errors"
	"fmt"

	listingRepo "foodbridge/database/repository/listing"
	"foodbridge/models"
	"foodbridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service-level failures surfaced to handlers.
var (
	ErrNotFound       = errors.New("listing not found")
	ErrNotOwner       = errors.New("not authorized to modify this listing")
	ErrRoleNotAllowed = errors.New("only supermarkets can create listings")
)

// ListingService defines listing operations.
type ListingService interface {
	Create(l models.Listing, owner *models.User) (*models.Listing, error)
	GetByID(id string) (*models.Listing, error)
	List(skip, limit int64) ([]models.Listing, error)
	Update(id string, update models.Listing, actor *models.User) error
	Delete(id string, actor *models.User) error
}

// DefaultListingService implements ListingService on top of the listing
// repository. Created listings are announced through the optional Announcer.
type DefaultListingService struct {
	Repo listingRepo.ListingRepository
	// Announcer is invoked after a successful create, e.g. to enqueue
	// notification fan-out. May be nil.
	Announcer func(listingID string)
}

// Create stores a new listing owned by the acting supermarket.
func (s *DefaultListingService) Create(l models.Listing, owner *models.User) (*models.Listing, error) {
	logger := utils.GetLogger()

	if owner.Role != models.RoleSupermarket && owner.Role != models.RoleAdmin {
		return nil, ErrRoleNotAllowed
	}
	if l.Quantity < 0 {
		return nil, fmt.Errorf("quantity must be non-negative")
	}

	l.ID = uuid.NewString()
	l.SupermarketID = owner.ID
	if l.Location == "" {
		l.Location = owner.Location
	}

	if err := s.Repo.Create(&l); err != nil {
		logger.Error("Failed to create listing", zap.String("supermarketID", owner.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	if s.Announcer != nil {
		s.Announcer(l.ID)
	}

	logger.Info("Listing created", zap.String("listingID", l.ID), zap.String("location", l.Location))
	return &l, nil
}

// GetByID retrieves a listing by id.
func (s *DefaultListingService) GetByID(id string) (*models.Listing, error) {
	l, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return l, nil
}

// List retrieves listings with pagination.
func (s *DefaultListingService) List(skip, limit int64) ([]models.Listing, error) {
	return s.Repo.GetAll(skip, limit)
}

// Update applies a partial update. Only the owning supermarket may modify a
// listing.
func (s *DefaultListingService) Update(id string, update models.Listing, actor *models.User) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if existing.SupermarketID != actor.ID {
		return ErrNotOwner
	}

	fields := map[string]any{}
	if update.Title != "" {
		fields["title"] = update.Title
	}
	if update.Description != "" {
		fields["description"] = update.Description
	}
	if update.Category != "" {
		fields["category"] = update.Category
	}
	if update.Quantity > 0 {
		fields["quantity"] = update.Quantity
	}
	if !update.ExpiryDate.IsZero() {
		fields["expiry_date"] = update.ExpiryDate
	}
	if update.Location != "" {
		fields["location"] = update.Location
	}
	if update.ImageURL != "" {
		fields["image_url"] = update.ImageURL
	}
	if len(fields) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(id, fields); err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

// Delete removes a listing. Only the owning supermarket may delete it.
func (s *DefaultListingService) Delete(id string, actor *models.User) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if existing.SupermarketID != actor.ID {
		return ErrNotOwner
	}

	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}
