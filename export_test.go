package main

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsFeatureCollection(t *testing.T) {
	units := []*UnitArea{{
		Label:  "101",
		Labels: []string{"101", "101A"},
		Ring:   closeRing([]orb.Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}),
		Cells:  16,
	}}

	fc := unitsFeatureCollection(units, "UNIT_AREA")
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, orb.Polygon{units[0].Ring}, f.Geometry)
	assert.Equal(t, "101", f.Properties.MustString("label"))
	assert.Equal(t, "UNIT_AREA", f.Properties.MustString("layer"))
	assert.Equal(t, 16, f.Properties.MustInt("cells"))

	data, err := json.Marshal(fc)
	require.NoError(t, err)
	decoded, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	assert.Equal(t, []any{"101", "101A"}, decoded.Features[0].Properties["labels"])
}

func TestRouteFeature(t *testing.T) {
	g := BuildWalkGraph(&Drawing{Entities: walkway()}, testConfig())
	route, ok := g.FindPathCoordinatesToEntrance(0, 0, 1)
	require.True(t, ok)

	f := routeFeature(g, route)
	assert.Equal(t, orb.LineString{{0, 0}, {3, 4}, {3, 10}}, f.Geometry)
	assert.Equal(t, []string{"A", "B", "C"}, f.Properties["nodes"])
	assert.Equal(t, []string{"AB", "BC"}, f.Properties["edges"])
	assert.Equal(t, []string{"A", "B", "C", "AB", "BC"}, f.Properties["handles"])
	assert.InDelta(t, 11.0, f.Properties.MustFloat64("distance"), 1e-12)
}

func TestGraphLinesFeatureCollection(t *testing.T) {
	g := BuildWalkGraph(&Drawing{Entities: walkway()}, testConfig())

	fc := graphLinesFeatureCollection(g)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, "AB", fc.Features[0].ID)
	assert.Equal(t, orb.LineString{{0, 0}, {3, 4}}, fc.Features[0].Geometry)
	assert.InDelta(t, 5.0, fc.Features[0].Properties.MustFloat64("weight"), 1e-12)
	assert.Equal(t, "BC", fc.Features[1].ID)
}

func TestOutlineFeatureCollection(t *testing.T) {
	rings := []orb.Ring{
		closeRing([]orb.Point{{0, 0}, {1, 0}, {1, 1}}),
		closeRing([]orb.Point{{5, 5}, {6, 5}, {6, 6}}),
	}
	fc := outlineFeatureCollection(rings)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, 1, fc.Features[1].Properties.MustInt("index"))
}
