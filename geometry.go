package main

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"floorplan-engine/regiongrid"
)

// shapeBound calculates a bounding box that contains the whole shape.
// Arcs use their full circle, which can only over-cover.
func shapeBound(s regiongrid.Shape) orb.Bound {
	switch v := s.(type) {
	case regiongrid.Segment:
		return orb.Bound{Min: v.P1, Max: v.P1}.Extend(v.P2)

	case regiongrid.Arc:
		return circleBound(v.Center, v.Radius)

	case regiongrid.Polyline:
		if len(v.Vertices) == 0 {
			return orb.Bound{}
		}
		first := v.Vertices[0].Point
		b := orb.Bound{Min: first, Max: first}
		n := len(v.Vertices)
		for i, vert := range v.Vertices {
			b = b.Extend(vert.Point)
			if vert.Bulge == 0 || (i == n-1 && !v.Closed) {
				continue
			}
			if arc, ok := regiongrid.BulgeToArc(vert.Point, v.Vertices[(i+1)%n].Point, vert.Bulge); ok {
				b = b.Union(circleBound(arc.Center, arc.Radius))
			}
		}
		return b
	}

	return orb.Bound{}
}

func circleBound(c orb.Point, r float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.X() - r, c.Y() - r},
		Max: orb.Point{c.X() + r, c.Y() + r},
	}
}

// cellSizeFor picks the grid resolution for a drawing extent: the longer
// side divided into divisor cells. Zero means the extent is unusable.
func cellSizeFor(b orb.Bound, divisor float64) float64 {
	if divisor <= 0 {
		return 0
	}
	size := math.Max(b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()) / divisor
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return 0
	}
	return size
}

// closeRing turns an open contour into a closed orb.Ring
func closeRing(points []orb.Point) orb.Ring {
	ring := make(orb.Ring, 0, len(points)+1)
	ring = append(ring, points...)
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// ringContains checks if a point is inside or on a ring
func ringContains(ring orb.Ring, p orb.Point) bool {
	if len(ring) < 4 {
		return false
	}
	return planar.RingContains(ring, p)
}
