package matching

import "errors"

// Failure taxonomy for the matching flow. Each error kind surfaces to the
// caller unchanged; nothing is retried or degraded to a default suggestion.
var (
	// ErrForbidden signals the requester's role is not allowed to run matching.
	ErrForbidden = errors.New("only supermarkets and admins can access matching suggestions")
	// ErrListingNotFound signals the listing id does not exist.
	ErrListingNotFound = errors.New("listing not found")
	// ErrLocationUnset signals the listing has no origin city.
	ErrLocationUnset = errors.New("listing location not set")
)

// UpstreamError wraps a city graph failure. Fatal for the enclosing match
// request; not retried internally.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "city graph unavailable: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// ReasoningError wraps a failed call to the external reasoning service.
type ReasoningError struct {
	Err error
}

func (e *ReasoningError) Error() string {
	return "reasoning service call failed: " + e.Err.Error()
}

func (e *ReasoningError) Unwrap() error { return e.Err }
