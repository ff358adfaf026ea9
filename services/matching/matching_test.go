package matching

import (
	"context"
	"errors"
	"testing"

	"foodbridge/models"

	"github.com/stretchr/testify/require"
)

func newMatchingFixture(t *testing.T) (*DefaultMatchingService, *fakeGraph, *fakeUserRepo, *fakeListingRepo, *fakeReasoner) {
	t.Helper()

	g := newFakeGraph()
	require.NoError(t, g.MergeNeighbor(context.Background(), "Springfield", "Shelbyville", 10))
	require.NoError(t, g.MergeNeighbor(context.Background(), "Springfield", "Ogdenville", 5))

	users := &fakeUserRepo{users: []models.User{
		{Name: "Central Bank", Role: models.RoleFoodBank, Location: "Shelbyville"},
	}}

	listings := &fakeListingRepo{}
	require.NoError(t, listings.Create(testListing()))

	reasoner := &fakeReasoner{answer: `{"inventory_item_id":"42","recommended_food_bank_id":"1","explanation":"closest"}`}

	svc := &DefaultMatchingService{
		Listings:  listings,
		Proximity: &ProximityResolver{Graph: g},
		Locator:   &RecipientLocator{Users: users},
		Reasoner:  reasoner,
	}
	return svc, g, users, listings, reasoner
}

func supermarketUser() *models.User {
	return &models.User{ID: "u1", Role: models.RoleSupermarket, Location: "Springfield"}
}

func TestMatchListingSuccess(t *testing.T) {
	svc, _, _, _, reasoner := newMatchingFixture(t)

	result, err := svc.MatchListing(context.Background(), "42", supermarketUser())
	require.NoError(t, err)

	require.Equal(t, "42", result.ListingID)
	require.Equal(t, reasoner.answer, result.Recommendation)

	require.Len(t, reasoner.prompts, 1)
	require.Contains(t, reasoner.prompts[0], "Central Bank (City: Shelbyville, Distance: 10 km)")
}

func TestMatchListingRoleGate(t *testing.T) {
	tests := []struct {
		role    string
		allowed bool
	}{
		{models.RoleSupermarket, true},
		{models.RoleAdmin, true},
		{models.RoleFoodBank, false},
		{models.RoleConsumer, false},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			svc, _, _, _, _ := newMatchingFixture(t)

			_, err := svc.MatchListing(context.Background(), "42", &models.User{Role: tt.role})
			if tt.allowed {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}

func TestMatchListingUnknownListing(t *testing.T) {
	svc, g, _, _, reasoner := newMatchingFixture(t)

	_, err := svc.MatchListing(context.Background(), "no-such-id", supermarketUser())
	require.ErrorIs(t, err, ErrListingNotFound)

	// Invalid input must not trigger any external call.
	require.Zero(t, g.queriesCount)
	require.Empty(t, reasoner.prompts)
}

func TestMatchListingMissingLocation(t *testing.T) {
	svc, _, _, listings, _ := newMatchingFixture(t)

	bad := testListing()
	bad.ID = "43"
	bad.Location = ""
	require.NoError(t, listings.Create(bad))

	_, err := svc.MatchListing(context.Background(), "43", supermarketUser())
	require.ErrorIs(t, err, ErrLocationUnset)
}

func TestMatchListingGraphDown(t *testing.T) {
	svc, g, _, _, _ := newMatchingFixture(t)
	g.failNext = errors.New("bolt connection refused")

	_, err := svc.MatchListing(context.Background(), "42", supermarketUser())

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestMatchListingReasoningFailure(t *testing.T) {
	svc, _, _, _, reasoner := newMatchingFixture(t)
	reasoner.failErr = &ReasoningError{Err: errors.New("503 from upstream")}

	_, err := svc.MatchListing(context.Background(), "42", supermarketUser())

	var rerr *ReasoningError
	require.ErrorAs(t, err, &rerr)
}

func TestMatchListingNoRecipientsStillCallsReasoner(t *testing.T) {
	svc, _, users, _, reasoner := newMatchingFixture(t)
	users.users = nil

	result, err := svc.MatchListing(context.Background(), "42", supermarketUser())
	require.NoError(t, err)
	require.Equal(t, reasoner.answer, result.Recommendation)

	require.Len(t, reasoner.prompts, 1)
	require.Contains(t, reasoner.prompts[0], "Nearby Food Banks:")
}
