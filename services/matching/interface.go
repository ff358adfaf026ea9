// Package matching recommends recipient food banks for a listing. It resolves
// the listing's origin city against the city graph (single hop), joins the
// result with registered food banks, renders a prompt and asks the reasoning
// service for ranked suggestions.
package matching

import (
	"context"

	"foodbridge/models"
)

// MatchingService is the orchestrator entry point.
type MatchingService interface {
	// MatchListing runs the end-to-end recommendation flow for a listing on
	// behalf of the requesting user.
	MatchListing(ctx context.Context, listingID string, requester *models.User) (*models.MatchResult, error)
}

// ReasoningClient sends a prompt to the external generative service and
// returns the accumulated response text. Output is non-deterministic and is
// not validated against any schema.
type ReasoningClient interface {
	Recommend(ctx context.Context, prompt string) (string, error)
}
