package walkgraph

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corridor() *Graph {
	g := New()
	g.BuildFromEntities([]Entity{
		node("A", 0, 0, false),
		node("B", 3, 4, false),
		node("C", 3, 10, true),
		node("D", 20, 20, false),
		edge("AB", 0, 0, 3, 4),
		edge("CB", 3, 10, 3, 4), // stored C→B, looked up B→C
	})
	return g
}

func TestFindPathCoordinatesToEntrance(t *testing.T) {
	g := corridor()

	route, ok := g.FindPathCoordinatesToEntrance(0.2, -0.1, 1)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C"}, route.NodeIDs)
	assert.Equal(t, []orb.Point{{0, 0}, {3, 4}, {3, 10}}, route.Points)
	assert.InDelta(t, 11.0, route.Distance, 1e-12)

	// on the entrance itself
	route, ok = g.FindPathCoordinatesToEntrance(3, 10, 1)
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, route.NodeIDs)
	assert.Zero(t, route.Distance)
}

func TestFindPathCoordinatesToEntrance_Failures(t *testing.T) {
	g := corridor()

	_, ok := g.FindPathCoordinatesToEntrance(50, 50, 1)
	assert.False(t, ok, "no node in range")

	_, ok = g.FindPathCoordinatesToEntrance(20, 20, 1)
	assert.False(t, ok, "isolated node without entrance")
}

func TestGetEdgeHandlesForPath(t *testing.T) {
	g := corridor()

	assert.Equal(t, []string{"AB", "CB"}, g.GetEdgeHandlesForPath([]string{"A", "B", "C"}))
	assert.Equal(t, []string{"CB", "AB"}, g.GetEdgeHandlesForPath([]string{"C", "B", "A"}))
	assert.Empty(t, g.GetEdgeHandlesForPath([]string{"C"}))
	assert.Empty(t, g.GetEdgeHandlesForPath(nil))
	// no edge between A and D
	assert.Equal(t, []string{"AB"}, g.GetEdgeHandlesForPath([]string{"D", "A", "B"}))
}

func TestGetAllHandlesForPath(t *testing.T) {
	g := corridor()

	path, ok := g.FindPathToNearestEntrance("A")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "C", "AB", "CB"}, g.GetAllHandlesForPath(path))
	assert.Equal(t, []string{"A"}, g.GetAllHandlesForPath([]string{"A", "ghost"}))
}
