package regiongrid

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SimplifyPolygon reduces a point chain using the Douglas-Peucker algorithm.
// Endpoints are always kept; interior points within tolerance of the local
// chord are dropped. Inputs with fewer than 3 points are returned unchanged.
func SimplifyPolygon(points []orb.Point, tolerance float64) []orb.Point {
	if len(points) < 3 {
		return points
	}
	return douglasPeucker(points, tolerance)
}

// douglasPeucker marks the points to keep with an explicit stack of
// [lo, hi] spans instead of recursing. A span keeps its farthest interior
// point when that point lies strictly beyond epsilon, and is split there.
func douglasPeucker(points []orb.Point, epsilon float64) []orb.Point {
	last := len(points) - 1
	keep := make([]bool, len(points))
	keep[0], keep[last] = true, true

	spans := [][2]int{{0, last}}
	for len(spans) > 0 {
		lo, hi := spans[len(spans)-1][0], spans[len(spans)-1][1]
		spans = spans[:len(spans)-1]

		far, farDist := -1, epsilon
		for i := lo + 1; i < hi; i++ {
			if d := perpendicularDistance(points[i], points[lo], points[hi]); d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 {
			continue
		}
		keep[far] = true
		spans = append(spans, [2]int{far, hi}, [2]int{lo, far})
	}

	out := make([]orb.Point, 0, len(points))
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// perpendicularDistance is the distance from p to the infinite line through
// a and b, or to a itself when a and b coincide.
func perpendicularDistance(p, a, b orb.Point) float64 {
	chord := planar.Distance(a, b)
	if chord == 0 {
		return planar.Distance(p, a)
	}
	cross := (b.X()-a.X())*(p.Y()-a.Y()) - (b.Y()-a.Y())*(p.X()-a.X())
	return math.Abs(cross) / chord
}
