package regiongrid

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Dimensions(t *testing.T) {
	tests := []struct {
		name                   string
		minX, minY, maxX, maxY float64
		cell                   float64
		wantW, wantH           int
	}{
		{"unit square", 5, 5, 15, 15, 0.5, 24, 24},
		{"wide", 0, 0, 100, 10, 1, 104, 14},
		{"fractional extent", 0, 0, 10.2, 3.1, 1, 15, 8},
		{"degenerate extent", 3, 3, 3, 3, 1, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.minX, tt.minY, tt.maxX, tt.maxY, tt.cell)
			assert.Equal(t, tt.wantW, g.Width())
			assert.Equal(t, tt.wantH, g.Height())
			assert.Equal(t, orb.Point{tt.minX - 2*tt.cell, tt.minY - 2*tt.cell}, g.Origin())
			assert.Zero(t, g.WallCount())
		})
	}
}

func TestNew_InvalidCellSize(t *testing.T) {
	for _, cs := range []float64{0, -1} {
		g := New(0, 0, 10, 10, cs)
		assert.Zero(t, g.Width())
		assert.Zero(t, g.Height())

		// every operation must stay total on an empty grid
		g.Rasterize(Segment{P1: orb.Point{0, 0}, P2: orb.Point{10, 10}})
		_, ok := g.FloodFill(5, 5)
		assert.False(t, ok)
		assert.Empty(t, g.FindWallComponents(0))
	}
}

func TestWorldToCell_RoundTrip(t *testing.T) {
	g := New(0, 0, 10, 10, 0.5)

	x, y := g.WorldToCell(orb.Point{0, 0})
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)

	x, y = g.WorldToCell(orb.Point{3.26, 4.74})
	assert.Equal(t, 9, x)
	assert.Equal(t, 11, y)

	p := g.CellToWorld(9, 11)
	assert.InDelta(t, 3.5, p.X(), 1e-12)
	assert.InDelta(t, 4.5, p.Y(), 1e-12)
}

func TestNewFromBound(t *testing.T) {
	b := orb.Bound{Min: orb.Point{5, 5}, Max: orb.Point{15, 15}}
	g := NewFromBound(b, 0.5)
	require.Equal(t, 24, g.Width())
	require.Equal(t, 24, g.Height())
}

func TestMask_OutOfRange(t *testing.T) {
	m := newMask(3, 2)
	m.set(2, 1)
	assert.True(t, m.At(2, 1))
	assert.False(t, m.At(3, 1))
	assert.False(t, m.At(-1, 0))
	assert.Equal(t, 1, m.Count())
}
