package regiongrid

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractContour_Block(t *testing.T) {
	g := New(0, 0, 10, 10, 1)
	m := newMask(g.Width(), g.Height())
	m.set(5, 5)
	m.set(6, 5)
	m.set(5, 6)
	m.set(6, 6)

	got := g.ExtractContour(m)
	want := []orb.Point{
		g.CellToWorld(5, 5),
		g.CellToWorld(6, 5),
		g.CellToWorld(6, 6),
		g.CellToWorld(5, 6),
	}
	assert.Equal(t, want, got)
}

func TestExtractContour_EnclosedSquare(t *testing.T) {
	g := New(5, 5, 15, 15, 0.5)
	g.RasterizeAll(unitSquare())

	mask, ok := g.FloodFill(10, 10)
	require.True(t, ok)

	contour := g.ExtractContour(mask)
	// every boundary cell of the 18×18 interior, once
	require.Len(t, contour, 4*18-4)
	assert.Equal(t, g.CellToWorld(4, 4), contour[0])
	assert.NotEqual(t, contour[0], contour[len(contour)-1])

	simplified := SimplifyPolygon(contour, g.CellSize())
	assert.GreaterOrEqual(t, len(simplified), 3)
	assert.Contains(t, simplified, g.CellToWorld(21, 4))
	assert.Contains(t, simplified, g.CellToWorld(21, 21))
	assert.Contains(t, simplified, g.CellToWorld(4, 21))
}

func TestExtractContour_WallComponent(t *testing.T) {
	g := New(0, 0, 20, 20, 0.5)
	g.RasterizeAll(square(2, 2, 6, 6))

	comps := g.FindWallComponents(1)
	require.Len(t, comps, 1)

	contour := g.ExtractContour(comps[0])
	require.GreaterOrEqual(t, len(contour), 4)

	outline := SimplifyPolygon(contour, g.CellSize())
	assert.GreaterOrEqual(t, len(outline), 3)
}

func TestExtractContour_Degenerate(t *testing.T) {
	g := New(0, 0, 10, 10, 1)

	assert.Empty(t, g.ExtractContour(nil))
	assert.Empty(t, g.ExtractContour(newMask(g.Width(), g.Height())))

	single := newMask(g.Width(), g.Height())
	single.set(3, 3)
	assert.Equal(t, []orb.Point{g.CellToWorld(3, 3)}, g.ExtractContour(single))
}

func TestExtractContour_BoundedOnFullMask(t *testing.T) {
	g := New(0, 0, 4, 4, 1)
	full := newMask(g.Width(), g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			full.set(x, y)
		}
	}

	// the edge of the mask counts as unset, so (0,0) is a boundary cell
	contour := g.ExtractContour(full)
	assert.NotEmpty(t, contour)
	assert.LessOrEqual(t, len(contour), g.Width()*g.Height())
}
