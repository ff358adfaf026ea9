package matching

import (
	"strings"
	"testing"
	"time"

	"foodbridge/graph"
	"foodbridge/models"

	"github.com/stretchr/testify/require"
)

func testListing() *models.Listing {
	return &models.Listing{
		ID:          "42",
		Title:       "Day-old bread",
		Description: "30 loaves of sourdough",
		Category:    "bakery",
		Quantity:    30,
		ExpiryDate:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Location:    "Springfield",
	}
}

func TestRecipientLinesFollowProximityOrder(t *testing.T) {
	proximity := []graph.Neighbor{
		{City: "Shelbyville", Distance: 10},
		{City: "Ogdenville", Distance: 5},
		{City: "Springfield", Distance: 0},
	}
	recipients := map[string][]string{
		"Shelbyville": {"Central Bank"},
		"Springfield": {"Home Pantry", "Second Harvest"},
	}

	got := RecipientLines(proximity, recipients)
	require.Equal(t, []string{
		"Central Bank (City: Shelbyville, Distance: 10 km)",
		"Home Pantry (City: Springfield, Distance: 0 km)",
		"Second Harvest (City: Springfield, Distance: 0 km)",
	}, got)
}

func TestRecipientLinesFractionalDistance(t *testing.T) {
	got := RecipientLines(
		[]graph.Neighbor{{City: "Ogdenville", Distance: 7.5}},
		map[string][]string{"Ogdenville": {"Harbor Bank"}},
	)
	require.Equal(t, []string{"Harbor Bank (City: Ogdenville, Distance: 7.5 km)"}, got)
}

func TestBuildRecommendationPromptRendersListing(t *testing.T) {
	proximity := []graph.Neighbor{
		{City: "Shelbyville", Distance: 10},
		{City: "Springfield", Distance: 0},
	}
	recipients := map[string][]string{"Shelbyville": {"Central Bank"}}

	prompt := BuildRecommendationPrompt(testListing(), proximity, recipients)

	for _, want := range []string{
		"Title: Day-old bread",
		"Description: 30 loaves of sourdough",
		"Category: bakery",
		"Quantity: 30",
		"Location: Springfield",
		"Central Bank (City: Shelbyville, Distance: 10 km)",
		`"inventory_item_id"`,
		`"recommended_food_bank_id"`,
		`"explanation"`,
	} {
		require.Contains(t, prompt, want)
	}

	require.Contains(t, prompt, "2 possible ideal food banks")
}

func TestBuildRecommendationPromptEmptyRecipients(t *testing.T) {
	proximity := []graph.Neighbor{{City: "Springfield", Distance: 0}}

	prompt := BuildRecommendationPrompt(testListing(), proximity, map[string][]string{})

	// Listing details and the instruction block still render; the recipient
	// section is simply empty.
	require.Contains(t, prompt, "Title: Day-old bread")
	require.Contains(t, prompt, "Nearby Food Banks:")
	require.Contains(t, prompt, `"recommended_food_bank_id"`)
	require.False(t, strings.Contains(prompt, " km)"))
}
