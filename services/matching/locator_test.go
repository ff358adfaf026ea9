package matching

import (
	"testing"

	"foodbridge/models"

	"github.com/stretchr/testify/require"
)

func TestLocatorGroupsByCity(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{
		{Name: "Central Bank", Role: models.RoleFoodBank, Location: "Shelbyville"},
		{Name: "North Pantry", Role: models.RoleFoodBank, Location: "Shelbyville"},
		{Name: "Harbor Bank", Role: models.RoleFoodBank, Location: "Ogdenville"},
		{Name: "MegaMart", Role: models.RoleSupermarket, Location: "Shelbyville"},
		{Name: "Far Bank", Role: models.RoleFoodBank, Location: "CapitalCity"},
	}}

	locator := &RecipientLocator{Users: repo}
	got, err := locator.FindInCities([]string{"Shelbyville", "Ogdenville", "Springfield"}, models.RoleFoodBank)
	require.NoError(t, err)

	require.Equal(t, map[string][]string{
		"Shelbyville": {"Central Bank", "North Pantry"},
		"Ogdenville":  {"Harbor Bank"},
	}, got)

	// Cities without matches are absent, not present with empty slices.
	_, ok := got["Springfield"]
	require.False(t, ok)
}

func TestLocatorNoRecipientsAnywhere(t *testing.T) {
	locator := &RecipientLocator{Users: &fakeUserRepo{}}

	got, err := locator.FindInCities([]string{"Springfield"}, models.RoleFoodBank)
	require.NoError(t, err)
	require.Empty(t, got)
}
