// Package request manages claims made by food banks and consumers against
// listings.
package request

import (
	"errors"
	"fmt"

	listingRepo "foodbridge/database/repository/listing"
	notificationRepo "foodbridge/database/repository/notification"
	requestRepo "foodbridge/database/repository/request"
	"foodbridge/models"
	"foodbridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service-level failures surfaced to handlers.
var (
	ErrNotFound      = errors.New("request not found")
	ErrNotAuthorized = errors.New("not authorized to update this request")
	ErrBadStatus     = errors.New("status must be pending, approved or declined")
)

// RequestService defines request operations.
type RequestService interface {
	Create(listingID, notes string, requester *models.User) (*models.Request, error)
	GetByID(id string) (*models.Request, error)
	// ListFor returns the requests visible to the user: a supermarket sees
	// requests against its listings, everyone else sees their own.
	ListFor(u *models.User) ([]models.Request, error)
	// UpdateStatus changes a request's status; only the owner of the target
	// listing may do so.
	UpdateStatus(id, status string, actor *models.User) error
}

// DefaultRequestService implements RequestService.
type DefaultRequestService struct {
	Repo          requestRepo.RequestRepository
	Listings      listingRepo.ListingRepository
	Notifications notificationRepo.NotificationRepository
}

// Create stores a pending request stamped with the requester's identity and
// location, and notifies the listing owner.
func (s *DefaultRequestService) Create(listingID, notes string, requester *models.User) (*models.Request, error) {
	logger := utils.GetLogger()

	listing, err := s.Listings.GetByID(listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return nil, fmt.Errorf("listing %s not found", listingID)
		}
		return nil, fmt.Errorf("failed to resolve listing: %w", err)
	}

	req := models.Request{
		ID:          uuid.NewString(),
		ListingID:   listingID,
		RequesterID: requester.ID,
		Location:    requester.Location,
		Status:      models.RequestPending,
		Notes:       notes,
	}
	if err := s.Repo.Create(&req); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	notification := models.Notification{
		ID:      uuid.NewString(),
		UserID:  listing.SupermarketID,
		Type:    models.NotificationRequestReceived,
		Message: fmt.Sprintf("%s requested your listing %q", requester.Name, listing.Title),
	}
	if err := s.Notifications.Create(&notification); err != nil {
		// The request itself succeeded; a lost notification is logged, not fatal.
		logger.Warn("Failed to create request notification", zap.String("requestID", req.ID), zap.Error(err))
	}

	return &req, nil
}

// GetByID retrieves a request by id.
func (s *DefaultRequestService) GetByID(id string) (*models.Request, error) {
	req, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return req, nil
}

// ListFor returns the requests visible to the user.
func (s *DefaultRequestService) ListFor(u *models.User) ([]models.Request, error) {
	if u.Role == models.RoleSupermarket {
		listings, err := s.Listings.GetBySupermarket(u.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list own listings: %w", err)
		}
		ids := make([]string, 0, len(listings))
		for _, l := range listings {
			ids = append(ids, l.ID)
		}
		return s.Repo.GetByListingIDs(ids)
	}
	return s.Repo.GetByRequester(u.ID)
}

// UpdateStatus transitions a request and notifies its requester.
func (s *DefaultRequestService) UpdateStatus(id, status string, actor *models.User) error {
	logger := utils.GetLogger()

	switch status {
	case models.RequestPending, models.RequestApproved, models.RequestDeclined:
	default:
		return ErrBadStatus
	}

	req, err := s.GetByID(id)
	if err != nil {
		return err
	}

	listing, err := s.Listings.GetByID(req.ListingID)
	if err != nil || listing.SupermarketID != actor.ID {
		return ErrNotAuthorized
	}

	if err := s.Repo.UpdateWithDocument(id, map[string]any{"status": status}); err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}

	notification := models.Notification{
		ID:      uuid.NewString(),
		UserID:  req.RequesterID,
		Type:    models.NotificationRequestStatusUpdate,
		Message: fmt.Sprintf("Your request for %q is now %s", listing.Title, status),
	}
	if err := s.Notifications.Create(&notification); err != nil {
		logger.Warn("Failed to create status notification", zap.String("requestID", id), zap.Error(err))
	}

	return nil
}
