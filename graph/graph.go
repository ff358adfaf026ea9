// Package graph provides the city adjacency graph used by the matching
// subsystem. Cities are nodes identified by name; NEIGHBOR_OF edges carry a
// distance in kilometres and are kept symmetric by construction.
package graph

import (
	"context"

	"foodbridge/models"
)

// Neighbor is one (city, distance) entry of a proximity query.
type Neighbor struct {
	City     string  `json:"city"`
	Distance float64 `json:"distance"`
}

// Store is the city graph boundary. All mutations are idempotent upserts;
// re-merging an existing edge never overwrites its distance.
type Store interface {
	// MergeCity upserts a city node.
	MergeCity(ctx context.Context, name string) error
	// MergeNeighbor upserts the symmetric weighted edge (a, b, distance).
	// The distance is set only when the edge is first created.
	MergeNeighbor(ctx context.Context, a, b string, distance float64) error
	// Neighbors returns the cities directly adjacent to the given city with
	// their edge distances. Unknown cities yield an empty result, not an error.
	Neighbors(ctx context.Context, city string) ([]Neighbor, error)
	// CitiesWithNeighbors returns every city with its adjacency list.
	CitiesWithNeighbors(ctx context.Context) ([]models.CityWithNeighbors, error)
}
