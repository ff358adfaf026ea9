package matching

import (
	"context"
	"errors"

	listingRepo "foodbridge/database/repository/listing"
	"foodbridge/graph"
	"foodbridge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeGraph is an in-memory Store with symmetric first-write-wins edges.
type fakeGraph struct {
	edges        map[string]map[string]float64
	failNext     error
	queriesCount int
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{edges: make(map[string]map[string]float64)}
}

func (g *fakeGraph) MergeCity(ctx context.Context, name string) error {
	if g.edges[name] == nil {
		g.edges[name] = make(map[string]float64)
	}
	return nil
}

func (g *fakeGraph) MergeNeighbor(ctx context.Context, a, b string, distance float64) error {
	_ = g.MergeCity(ctx, a)
	_ = g.MergeCity(ctx, b)
	if _, exists := g.edges[a][b]; !exists {
		g.edges[a][b] = distance
	}
	if _, exists := g.edges[b][a]; !exists {
		g.edges[b][a] = distance
	}
	return nil
}

func (g *fakeGraph) Neighbors(ctx context.Context, city string) ([]graph.Neighbor, error) {
	g.queriesCount++
	if g.failNext != nil {
		return nil, g.failNext
	}
	var out []graph.Neighbor
	for name, dist := range g.edges[city] {
		out = append(out, graph.Neighbor{City: name, Distance: dist})
	}
	return out, nil
}

func (g *fakeGraph) CitiesWithNeighbors(ctx context.Context) ([]models.CityWithNeighbors, error) {
	var out []models.CityWithNeighbors
	for name, adj := range g.edges {
		entry := models.CityWithNeighbors{Name: name, Neighbors: []string{}}
		for n := range adj {
			entry.Neighbors = append(entry.Neighbors, n)
		}
		out = append(out, entry)
	}
	return out, nil
}

// fakeUserRepo serves canned users for the locator lookup.
type fakeUserRepo struct {
	users   []models.User
	failErr error
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(user *models.User) error { r.users = append(r.users, *user); return nil }

func (r *fakeUserRepo) UpdateWithDocument(id string, update bson.M) error { return nil }

func (r *fakeUserRepo) GetAllWithProjection(projection bson.M) ([]models.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) FindByLocationsAndRole(cities []string, role string) ([]models.User, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	inCities := make(map[string]bool, len(cities))
	for _, c := range cities {
		inCities[c] = true
	}
	var out []models.User
	for _, u := range r.users {
		if u.Role == role && inCities[u.Location] {
			out = append(out, models.User{Name: u.Name, Location: u.Location})
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count() (int64, error) { return int64(len(r.users)), nil }

// fakeListingRepo serves canned listings.
type fakeListingRepo struct {
	listings map[string]*models.Listing
}

func (r *fakeListingRepo) Create(listing *models.Listing) error {
	if r.listings == nil {
		r.listings = make(map[string]*models.Listing)
	}
	r.listings[listing.ID] = listing
	return nil
}

func (r *fakeListingRepo) GetByID(id string) (*models.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, listingRepo.ErrNotFound
	}
	return l, nil
}

func (r *fakeListingRepo) GetAll(skip, limit int64) ([]models.Listing, error) { return nil, nil }

func (r *fakeListingRepo) GetBySupermarket(supermarketID string) ([]models.Listing, error) {
	return nil, nil
}

func (r *fakeListingRepo) UpdateWithDocument(id string, update map[string]any) error { return nil }

func (r *fakeListingRepo) Delete(id string) error { return nil }

func (r *fakeListingRepo) Count() (int64, error) { return int64(len(r.listings)), nil }

// fakeReasoner records prompts and replies with a fixed answer.
type fakeReasoner struct {
	prompts []string
	answer  string
	failErr error
}

func (f *fakeReasoner) Recommend(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.failErr != nil {
		return "", f.failErr
	}
	return f.answer, nil
}
