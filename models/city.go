// models/city.go
package models

// City is a node in the city adjacency graph. Identity is the unique name.
type City struct {
	Name string `json:"name" binding:"required"`
}

// NeighborRelationship is a symmetric weighted edge between two cities.
// Distance is in kilometres and must be non-negative.
type NeighborRelationship struct {
	CityA    string  `json:"city_a" binding:"required"`
	CityB    string  `json:"city_b" binding:"required"`
	Distance float64 `json:"distance" binding:"min=0"`
}

// CityWithNeighbors is the read model for the city listing endpoint.
type CityWithNeighbors struct {
	Name      string   `json:"name"`
	Neighbors []string `json:"neighbors"`
}
