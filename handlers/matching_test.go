package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodbridge/middleware"
	"foodbridge/models"
	"foodbridge/services/matching"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubMatchingService struct {
	result *models.MatchResult
	err    error
}

func (s *stubMatchingService) MatchListing(ctx context.Context, listingID string, requester *models.User) (*models.MatchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newMatchingRouter(svc matching.MatchingService, actor *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/matching", func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.CurrentUserKey, actor)
		}
		c.Next()
	}, NewMatchingHandler(svc).MatchListingHandler)
	return r
}

func postMatching(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/matching", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMatchListingHandlerSuccess(t *testing.T) {
	svc := &stubMatchingService{result: &models.MatchResult{
		ListingID:      "listing-1",
		Recommendation: "recommended banks",
	}}
	r := newMatchingRouter(svc, &models.User{ID: "u1", Role: models.RoleSupermarket})

	w := postMatching(t, r, gin.H{"listing_id": "listing-1"})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "listing-1", body["listing_id"])
	require.Equal(t, "recommended banks", body["matches_llm_output"])
}

func TestMatchListingHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"forbidden", matching.ErrForbidden, http.StatusForbidden},
		{"listing missing", matching.ErrListingNotFound, http.StatusNotFound},
		{"location unset", matching.ErrLocationUnset, http.StatusBadRequest},
		{"graph down", &matching.UpstreamError{Err: errors.New("bolt refused")}, http.StatusBadGateway},
		{"reasoning failed", &matching.ReasoningError{Err: errors.New("stream aborted")}, http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMatchingRouter(&stubMatchingService{err: tc.err}, &models.User{ID: "u1", Role: models.RoleAdmin})
			w := postMatching(t, r, gin.H{"listing_id": "listing-1"})
			require.Equal(t, tc.want, w.Code)
		})
	}
}

func TestMatchListingHandlerRequiresAuth(t *testing.T) {
	r := newMatchingRouter(&stubMatchingService{}, nil)
	w := postMatching(t, r, gin.H{"listing_id": "listing-1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMatchListingHandlerRejectsMissingListingID(t *testing.T) {
	r := newMatchingRouter(&stubMatchingService{}, &models.User{ID: "u1", Role: models.RoleSupermarket})
	w := postMatching(t, r, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
