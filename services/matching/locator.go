package matching

import (
	"fmt"

	userRepo "foodbridge/database/repository/user"
)

// RecipientLocator finds candidate recipients registered in a set of cities.
type RecipientLocator struct {
	Users userRepo.UserRepository
}

// FindInCities runs one batched lookup for users located in any of the given
// cities with the given role and groups their names by city. Cities with no
// matches are absent from the map. Ordering within a city follows store
// enumeration order and carries no guarantee.
func (l *RecipientLocator) FindInCities(cities []string, role string) (map[string][]string, error) {
	recipients, err := l.Users.FindByLocationsAndRole(cities, role)
	if err != nil {
		return nil, fmt.Errorf("failed to locate recipients: %w", err)
	}

	byCity := make(map[string][]string, len(recipients))
	for _, r := range recipients {
		byCity[r.Location] = append(byCity[r.Location], r.Name)
	}
	return byCity, nil
}
