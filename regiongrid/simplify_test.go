package regiongrid

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestSimplifyPolygon_ShortInputUnchanged(t *testing.T) {
	assert.Empty(t, SimplifyPolygon(nil, 1))

	one := []orb.Point{{1, 1}}
	assert.Equal(t, one, SimplifyPolygon(one, 1))

	two := []orb.Point{{0, 0}, {5, 5}}
	assert.Equal(t, two, SimplifyPolygon(two, 100))
}

func TestSimplifyPolygon_DropsCollinear(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2}}
	got := SimplifyPolygon(pts, 0.1)
	assert.Equal(t, []orb.Point{{0, 0}, {3, 0}, {3, 2}}, got)
}

func TestSimplifyPolygon_KeepsOutlierAboveTolerance(t *testing.T) {
	pts := []orb.Point{{0, 0}, {5, 0.4}, {10, 0}}
	assert.Len(t, SimplifyPolygon(pts, 0.5), 2)
	assert.Len(t, SimplifyPolygon(pts, 0.3), 3)
	// a point exactly at tolerance is dropped
	assert.Len(t, SimplifyPolygon([]orb.Point{{0, 0}, {5, 1}, {10, 0}}, 1), 2)
}

func TestSimplifyPolygon_ZeroLengthChord(t *testing.T) {
	// closed ring: first == last, so distances are point-to-point
	ring := []orb.Point{{0, 0}, {4, 0}, {4, 3}, {0, 0}}
	got := SimplifyPolygon(ring, 1)
	assert.Equal(t, orb.Point{0, 0}, got[0])
	assert.Equal(t, orb.Point{0, 0}, got[len(got)-1])
	assert.Contains(t, got, orb.Point{4, 3})

	assert.InDelta(t, 5.0, perpendicularDistance(orb.Point{3, 4}, orb.Point{0, 0}, orb.Point{0, 0}), 1e-12)
}

func TestSimplifyPolygon_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := 2 + rng.Intn(60)
		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = orb.Point{rng.Float64() * 100, rng.Float64() * 100}
		}
		tol := rng.Float64() * 20

		once := SimplifyPolygon(pts, tol)
		twice := SimplifyPolygon(once, tol)

		assert.Equal(t, once, twice, "idempotence, iter %d", iter)
		assert.Equal(t, pts[0], once[0], "first point, iter %d", iter)
		assert.Equal(t, pts[n-1], once[len(once)-1], "last point, iter %d", iter)
		assert.LessOrEqual(t, len(once), n)
	}
}

func TestSimplifyPolygon_ZeroTolerance(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 1}, {2, 0}, {3, 1}}
	assert.Equal(t, pts, SimplifyPolygon(pts, 0))
}
