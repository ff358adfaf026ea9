package matching

import (
	"context"

	"foodbridge/graph"
)

// ProximityResolver answers single-hop proximity queries over the city graph.
// Recipients two or more hops away are never surfaced.
type ProximityResolver struct {
	Graph graph.Store
}

// Neighbors returns the cities directly adjacent to origin with their edge
// distances, followed by the origin itself at distance 0 so the origin's own
// recipients are always considered. A city absent from the graph yields only
// the origin entry.
func (p *ProximityResolver) Neighbors(ctx context.Context, origin string) ([]graph.Neighbor, error) {
	if origin == "" {
		return nil, ErrLocationUnset
	}

	neighbors, err := p.Graph.Neighbors(ctx, origin)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	return append(neighbors, graph.Neighbor{City: origin, Distance: 0}), nil
}
