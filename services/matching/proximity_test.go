package matching

import (
	"context"
	"errors"
	"testing"

	"foodbridge/graph"

	"github.com/stretchr/testify/require"
)

func TestProximityNeighborsAppendsOriginLast(t *testing.T) {
	g := newFakeGraph()
	require.NoError(t, g.MergeNeighbor(context.Background(), "Springfield", "Shelbyville", 10))
	require.NoError(t, g.MergeNeighbor(context.Background(), "Springfield", "Ogdenville", 5))

	resolver := &ProximityResolver{Graph: g}
	got, err := resolver.Neighbors(context.Background(), "Springfield")
	require.NoError(t, err)

	require.Len(t, got, 3)
	require.Equal(t, graph.Neighbor{City: "Springfield", Distance: 0}, got[len(got)-1])

	byCity := make(map[string]float64)
	for _, n := range got {
		byCity[n.City] = n.Distance
	}
	require.Equal(t, 10.0, byCity["Shelbyville"])
	require.Equal(t, 5.0, byCity["Ogdenville"])
}

func TestProximityNeighborsSymmetric(t *testing.T) {
	g := newFakeGraph()
	require.NoError(t, g.MergeNeighbor(context.Background(), "A", "B", 7.5))

	resolver := &ProximityResolver{Graph: g}

	fromA, err := resolver.Neighbors(context.Background(), "A")
	require.NoError(t, err)
	require.Contains(t, fromA, graph.Neighbor{City: "B", Distance: 7.5})

	fromB, err := resolver.Neighbors(context.Background(), "B")
	require.NoError(t, err)
	require.Contains(t, fromB, graph.Neighbor{City: "A", Distance: 7.5})
}

func TestProximityEdgeUpsertFirstWriteWins(t *testing.T) {
	g := newFakeGraph()
	require.NoError(t, g.MergeNeighbor(context.Background(), "A", "B", 7))
	require.NoError(t, g.MergeNeighbor(context.Background(), "A", "B", 99))

	resolver := &ProximityResolver{Graph: g}
	got, err := resolver.Neighbors(context.Background(), "A")
	require.NoError(t, err)
	require.Contains(t, got, graph.Neighbor{City: "B", Distance: 7})
}

func TestProximityUnknownCityReturnsOriginOnly(t *testing.T) {
	resolver := &ProximityResolver{Graph: newFakeGraph()}

	got, err := resolver.Neighbors(context.Background(), "Atlantis")
	require.NoError(t, err)
	require.Equal(t, []graph.Neighbor{{City: "Atlantis", Distance: 0}}, got)
}

func TestProximityEmptyOrigin(t *testing.T) {
	resolver := &ProximityResolver{Graph: newFakeGraph()}

	_, err := resolver.Neighbors(context.Background(), "")
	require.ErrorIs(t, err, ErrLocationUnset)
}

func TestProximityGraphFailureWrapsUpstreamError(t *testing.T) {
	g := newFakeGraph()
	g.failNext = errors.New("bolt connection refused")

	resolver := &ProximityResolver{Graph: g}
	_, err := resolver.Neighbors(context.Background(), "Springfield")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
}
