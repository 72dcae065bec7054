package walkgraph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FindPathCoordinatesToEntrance snaps (x, y) to the nearest node within
// maxDistance and resolves its path to the nearest entrance. Distance is
// the sum of the straight-line hops between consecutive path nodes.
func (g *Graph) FindPathCoordinatesToEntrance(x, y, maxDistance float64) (Route, bool) {
	start, ok := g.FindNearestNode(x, y, maxDistance)
	if !ok {
		return Route{}, false
	}

	ids, ok := g.FindPathToNearestEntrance(start.ID)
	if !ok {
		return Route{}, false
	}

	route := Route{
		NodeIDs: ids,
		Points:  make([]orb.Point, 0, len(ids)),
	}
	for i, id := range ids {
		p := g.nodes[id].Position
		if i > 0 {
			route.Distance += planar.Distance(route.Points[i-1], p)
		}
		route.Points = append(route.Points, p)
	}
	return route, true
}

// GetEdgeHandlesForPath returns, for each consecutive node pair of path, the
// first edge joining them in either orientation. Pairs without an edge are
// skipped.
func (g *Graph) GetEdgeHandlesForPath(path []string) []string {
	handles := make([]string, 0, len(path))
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		for _, id := range g.edgeOrder {
			e := g.edges[id]
			if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
				handles = append(handles, id)
				break
			}
		}
	}
	return handles
}

// GetAllHandlesForPath returns the known node IDs of path followed by the
// edge handles joining them, the full entity set to highlight a route.
func (g *Graph) GetAllHandlesForPath(path []string) []string {
	handles := make([]string, 0, 2*len(path))
	for _, id := range path {
		if _, ok := g.nodes[id]; ok {
			handles = append(handles, id)
		}
	}
	return append(handles, g.GetEdgeHandlesForPath(path)...)
}
