package matching

import (
	"fmt"
	"strings"
	"time"

	"foodbridge/graph"
	"foodbridge/models"
)

// instructionBlock is appended to every prompt. The requested JSON shape is
// not enforced on the response; callers wanting strict output must validate
// it themselves.
const instructionBlock = `Based on the above information, provide matching suggestions for 2 possible ideal food banks that could receive this listing. Return your answer as JSON with the keys:
- "inventory_item_id": string,
- "recommended_food_bank_id": string,
- "explanation": string.`

// RecipientLines renders one display line per candidate recipient, iterating
// the proximity set in order and the recipients of each city in enumeration
// order.
func RecipientLines(proximity []graph.Neighbor, recipientsByCity map[string][]string) []string {
	var lines []string
	for _, entry := range proximity {
		for _, name := range recipientsByCity[entry.City] {
			lines = append(lines, fmt.Sprintf("%s (City: %s, Distance: %g km)", name, entry.City, entry.Distance))
		}
	}
	return lines
}

// BuildRecommendationPrompt assembles the reasoning prompt from the listing
// details and the grouped candidate recipients. An empty candidate set still
// yields a complete prompt with an empty recipient section.
func BuildRecommendationPrompt(listing *models.Listing, proximity []graph.Neighbor, recipientsByCity map[string][]string) string {
	var sb strings.Builder

	sb.WriteString("Listing Details:\n")
	sb.WriteString("Title: " + listing.Title + "\n")
	sb.WriteString("Description: " + listing.Description + "\n")
	sb.WriteString("Category: " + listing.Category + "\n")
	fmt.Fprintf(&sb, "Quantity: %d\n", listing.Quantity)
	sb.WriteString("Expiry Date: " + listing.ExpiryDate.Format(time.RFC3339) + "\n")
	sb.WriteString("Location: " + listing.Location + "\n")

	sb.WriteString("\nNearby Food Banks:\n")
	sb.WriteString(strings.Join(RecipientLines(proximity, recipientsByCity), "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(instructionBlock)

	return sb.String()
}
