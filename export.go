package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"floorplan-engine/walkgraph"
)

// unitsFeatureCollection exports unit areas as polygons on the unit layer
func unitsFeatureCollection(units []*UnitArea, layer string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, u := range units {
		f := geojson.NewFeature(orb.Polygon{u.Ring})
		f.Properties["label"] = u.Label
		f.Properties["labels"] = u.Labels
		f.Properties["cells"] = u.Cells
		f.Properties["layer"] = layer
		fc.Append(f)
	}
	return fc
}

// outlineFeatureCollection exports outline rings as polygons
func outlineFeatureCollection(rings []orb.Ring) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, r := range rings {
		f := geojson.NewFeature(orb.Polygon{r})
		f.Properties["index"] = i
		fc.Append(f)
	}
	return fc
}

// routeFeature exports a route as a LineString with its graph handles
func routeFeature(g *walkgraph.Graph, route walkgraph.Route) *geojson.Feature {
	f := geojson.NewFeature(orb.LineString(route.Points))
	f.Properties["nodes"] = route.NodeIDs
	f.Properties["edges"] = g.GetEdgeHandlesForPath(route.NodeIDs)
	f.Properties["handles"] = g.GetAllHandlesForPath(route.NodeIDs)
	f.Properties["distance"] = route.Distance
	return f
}

// graphLinesFeatureCollection exports graph edges for visualization
func graphLinesFeatureCollection(g *walkgraph.Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	edges := g.Edges()
	for i, line := range g.Lines() {
		f := geojson.NewFeature(line)
		f.ID = edges[i].ID
		f.Properties["weight"] = edges[i].Weight
		fc.Append(f)
	}
	return fc
}
