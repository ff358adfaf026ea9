// Package notification exposes the persisted notification feed and the
// new-listing fan-out used by the background worker.
package notification

import (
	"context"
	"fmt"

	notificationRepo "foodbridge/database/repository/notification"
	userRepo "foodbridge/database/repository/user"
	"foodbridge/models"
	"foodbridge/services/matching"
	"foodbridge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService defines notification operations.
type NotificationService interface {
	// ListFor returns all notifications addressed to the user.
	ListFor(userID string) ([]models.Notification, error)
	// MarkRead flags one of the user's notifications as read.
	MarkRead(id, userID string) error
	// FanOutNewListing notifies food banks in the listing's city and its
	// direct neighbors that a listing was posted.
	FanOutNewListing(ctx context.Context, listing *models.Listing) error
}

// DefaultNotificationService implements NotificationService. It reuses the
// matching subsystem's proximity resolver so the fan-out audience matches
// what the recommender would consider.
type DefaultNotificationService struct {
	Repo      notificationRepo.NotificationRepository
	Proximity *matching.ProximityResolver
	Users     userRepo.UserRepository
}

// ListFor returns all notifications for the user.
func (s *DefaultNotificationService) ListFor(userID string) ([]models.Notification, error) {
	return s.Repo.GetByUser(userID)
}

// MarkRead flags a notification as read.
func (s *DefaultNotificationService) MarkRead(id, userID string) error {
	return s.Repo.MarkRead(id, userID)
}

// FanOutNewListing creates one new-listing notification per food bank in the
// proximity set of the listing's origin city.
func (s *DefaultNotificationService) FanOutNewListing(ctx context.Context, listing *models.Listing) error {
	logger := utils.GetLogger()

	proximity, err := s.Proximity.Neighbors(ctx, listing.Location)
	if err != nil {
		return fmt.Errorf("failed to resolve proximity for %s: %w", listing.Location, err)
	}

	cities := make([]string, 0, len(proximity))
	for _, entry := range proximity {
		cities = append(cities, entry.City)
	}

	banks, err := s.Users.FindByLocationsAndRole(cities, models.RoleFoodBank)
	if err != nil {
		return fmt.Errorf("failed to locate food banks: %w", err)
	}

	message := fmt.Sprintf("New listing %q posted in %s", listing.Title, listing.Location)
	for _, bank := range banks {
		n := models.Notification{
			ID:      uuid.NewString(),
			UserID:  bank.ID,
			Type:    models.NotificationNewListing,
			Message: message,
		}
		if err := s.Repo.Create(&n); err != nil {
			logger.Warn("Failed to persist new-listing notification",
				zap.String("listingID", listing.ID), zap.String("userID", bank.ID), zap.Error(err))
		}
	}

	logger.Info("New-listing fan-out complete",
		zap.String("listingID", listing.ID), zap.Int("recipients", len(banks)))
	return nil
}
