package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("bank@example.com", "food_bank", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "bank@example.com", email)
	require.Equal(t, "food_bank", role)
}

func TestExtractClaimsRejectsGarbage(t *testing.T) {
	_, _, err := ExtractClaimsFromToken("not-a-token")
	require.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("bank@example.com", "food_bank", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	require.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	require.Equal(t, a, b)
	require.Len(t, a, 64)
	require.NotEqual(t, a, HashToken("abd"))
}
