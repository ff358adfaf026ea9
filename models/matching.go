// models/matching.go
package models

// MatchingRequest is the payload for the matching endpoint.
type MatchingRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
}

// MatchResult carries the raw reasoning output for a listing. The text is
// passed through verbatim; it is not parsed or validated against a schema.
type MatchResult struct {
	ListingID      string `json:"listing_id"`
	Recommendation string `json:"matches_llm_output"`
}
