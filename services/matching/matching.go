package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	listingRepo "foodbridge/database/repository/listing"
	"foodbridge/models"
	"foodbridge/utils"

	"go.uber.org/zap"
)

// reasoningTimeout bounds the external reasoning call so an unresponsive
// service cannot stall the request indefinitely.
const reasoningTimeout = 60 * time.Second

// DefaultMatchingService composes the proximity resolver, recipient locator,
// prompt builder and reasoning client into the end-to-end matching flow.
// Every call recomputes from scratch; nothing is cached or persisted.
type DefaultMatchingService struct {
	Listings  listingRepo.ListingRepository
	Proximity *ProximityResolver
	Locator   *RecipientLocator
	Reasoner  ReasoningClient
}

// MatchListing recommends recipient food banks for the given listing.
func (s *DefaultMatchingService) MatchListing(ctx context.Context, listingID string, requester *models.User) (*models.MatchResult, error) {
	logger := utils.GetLogger()

	if requester == nil || (requester.Role != models.RoleSupermarket && requester.Role != models.RoleAdmin) {
		return nil, ErrForbidden
	}

	listing, err := s.Listings.GetByID(listingID)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to resolve listing %s: %w", listingID, err)
	}
	if listing.Location == "" {
		return nil, ErrLocationUnset
	}

	proximity, err := s.Proximity.Neighbors(ctx, listing.Location)
	if err != nil {
		return nil, err
	}

	cities := make([]string, 0, len(proximity))
	for _, entry := range proximity {
		cities = append(cities, entry.City)
	}

	// An empty candidate set does not short-circuit: the reasoning service is
	// still called and its answer returned as-is.
	recipientsByCity, err := s.Locator.FindInCities(cities, models.RoleFoodBank)
	if err != nil {
		return nil, err
	}

	prompt := BuildRecommendationPrompt(listing, proximity, recipientsByCity)
	logger.Debug("matching prompt built",
		zap.String("listingID", listingID),
		zap.String("origin", listing.Location),
		zap.Int("cities", len(cities)))

	callCtx, cancel := context.WithTimeout(ctx, reasoningTimeout)
	defer cancel()

	text, err := s.Reasoner.Recommend(callCtx, prompt)
	if err != nil {
		logger.Error("reasoning call failed", zap.String("listingID", listingID), zap.Error(err))
		return nil, err
	}

	return &models.MatchResult{ListingID: listingID, Recommendation: text}, nil
}
