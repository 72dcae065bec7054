package regiongrid

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(minX, minY, maxX, maxY float64) []Shape {
	return []Shape{Polyline{
		Vertices: []Vertex{
			{Point: orb.Point{minX, minY}},
			{Point: orb.Point{maxX, minY}},
			{Point: orb.Point{maxX, maxY}},
			{Point: orb.Point{minX, maxY}},
		},
		Closed: true,
	}}
}

func TestFindWallComponents(t *testing.T) {
	g := New(0, 0, 20, 20, 0.5)
	g.RasterizeAll(square(2, 2, 6, 6))
	g.RasterizeAll(square(12, 12, 18, 18))
	g.Rasterize(Segment{P1: orb.Point{10, 3}, P2: orb.Point{10, 3}}) // stray 2×2 speck

	all := g.FindWallComponents(0)
	require.Len(t, all, 3)
	assert.Equal(t, 4, all[1].Count())

	total := 0
	for _, m := range all {
		total += m.Count()
	}
	assert.Equal(t, g.WallCount(), total)

	big := g.FindWallComponents(10)
	require.Len(t, big, 2)
	assert.True(t, big[0].At(g.WorldToCell(orb.Point{2, 2})))
	assert.True(t, big[1].At(g.WorldToCell(orb.Point{18, 18})))
}

func TestFindWallComponents_DiagonalTouchJoins(t *testing.T) {
	g := New(0, 0, 10, 10, 1)
	// two 2×2 blocks touching only at a corner
	g.Rasterize(Segment{P1: orb.Point{2, 2}, P2: orb.Point{2, 2}})
	g.Rasterize(Segment{P1: orb.Point{4, 4}, P2: orb.Point{4, 4}})

	comps := g.FindWallComponents(0)
	require.Len(t, comps, 1)
	assert.Equal(t, 8, comps[0].Count())
}

func TestFindWallComponents_Empty(t *testing.T) {
	g := New(0, 0, 10, 10, 1)
	assert.Empty(t, g.FindWallComponents(0))
}
