package graph

import (
	"context"
	"fmt"

	"foodbridge/models"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jStore implements Store on top of the official Neo4j driver.
type Neo4jStore struct {
	driver neo4j.DriverWithContext
	dbName string
}

// NewNeo4jStore creates a driver for the given instance and returns a Store
// bound to the named database. The caller owns the store and must Close it
// on shutdown.
func NewNeo4jStore(uri, username, password, dbName string) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("could not create Neo4j driver: %w", err)
	}
	return &Neo4jStore{driver: driver, dbName: dbName}, nil
}

// Verify checks connectivity to the Neo4j instance.
func (s *Neo4jStore) Verify(ctx context.Context) error {
	return s.driver.VerifyConnectivity(ctx)
}

// Close releases the underlying driver.
func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// run executes a Cypher query with ExecuteQuery, which manages sessions and
// transactions and buffers the full result.
func (s *Neo4jStore) run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		s.driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.dbName),
	)
	if err != nil {
		return nil, fmt.Errorf("error executing neo4j query: %w", err)
	}
	return result, nil
}

// MergeCity upserts a City node by name.
func (s *Neo4jStore) MergeCity(ctx context.Context, name string) error {
	_, err := s.run(ctx, `MERGE (c:City {name: $name})`, map[string]any{"name": name})
	return err
}

// MergeNeighbor upserts both directions of the NEIGHBOR_OF edge in a single
// statement. ON CREATE SET gives first-write-wins distance semantics, and the
// atomic merge keeps concurrent duplicate submissions from producing edges
// with diverging distances.
func (s *Neo4jStore) MergeNeighbor(ctx context.Context, a, b string, distance float64) error {
	query := `
		MERGE (a:City {name: $cityA})
		MERGE (b:City {name: $cityB})
		MERGE (a)-[r:NEIGHBOR_OF]->(b)
		ON CREATE SET r.distance = $distance
		MERGE (b)-[r2:NEIGHBOR_OF]->(a)
		ON CREATE SET r2.distance = $distance`
	_, err := s.run(ctx, query, map[string]any{
		"cityA":    a,
		"cityB":    b,
		"distance": distance,
	})
	return err
}

// Neighbors returns the single-hop adjacency of a city. The match follows
// outgoing edges only; both directions exist for every neighbor pair, so each
// neighbor appears exactly once.
func (s *Neo4jStore) Neighbors(ctx context.Context, city string) ([]Neighbor, error) {
	query := `
		MATCH (c:City {name: $city})-[r:NEIGHBOR_OF]->(neighbor:City)
		RETURN neighbor.name AS city, r.distance AS distance`
	result, err := s.run(ctx, query, map[string]any{"city": city})
	if err != nil {
		return nil, err
	}

	neighbors := make([]Neighbor, 0, len(result.Records))
	for _, record := range result.Records {
		name, ok := record.Get("city")
		if !ok {
			continue
		}
		nameStr, ok := name.(string)
		if !ok {
			continue
		}
		distVal, _ := record.Get("distance")
		neighbors = append(neighbors, Neighbor{City: nameStr, Distance: toFloat64(distVal)})
	}
	return neighbors, nil
}

// CitiesWithNeighbors returns every city and its adjacency list, including
// cities with no neighbors.
func (s *Neo4jStore) CitiesWithNeighbors(ctx context.Context) ([]models.CityWithNeighbors, error) {
	query := `
		MATCH (c:City)
		OPTIONAL MATCH (c)-[:NEIGHBOR_OF]->(neighbor:City)
		RETURN c.name AS city, collect(DISTINCT neighbor.name) AS neighbors`
	result, err := s.run(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	cities := make([]models.CityWithNeighbors, 0, len(result.Records))
	for _, record := range result.Records {
		nameVal, ok := record.Get("city")
		if !ok {
			continue
		}
		name, ok := nameVal.(string)
		if !ok {
			continue
		}
		entry := models.CityWithNeighbors{Name: name, Neighbors: []string{}}
		if raw, ok := record.Get("neighbors"); ok {
			if list, ok := raw.([]any); ok {
				for _, v := range list {
					if n, ok := v.(string); ok {
						entry.Neighbors = append(entry.Neighbors, n)
					}
				}
			}
		}
		cities = append(cities, entry)
	}
	return cities, nil
}

// toFloat64 normalizes Neo4j numeric property values.
func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}
