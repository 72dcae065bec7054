package regiongrid

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
)

const (
	minArcSamples = 8
	fullCircleEps = 1e-9
)

// Rasterize marks every cell touched by the shape as a wall.
// Shapes of any other kind, including nil, are ignored.
func (g *Grid) Rasterize(s Shape) {
	if len(g.walls) == 0 {
		return
	}

	switch v := s.(type) {
	case Segment:
		g.rasterizeSegment(v.P1, v.P2)
	case *Segment:
		g.rasterizeSegment(v.P1, v.P2)
	case Arc:
		g.rasterizeArc(v)
	case *Arc:
		g.rasterizeArc(*v)
	case Polyline:
		g.rasterizePolyline(v)
	case *Polyline:
		g.rasterizePolyline(*v)
	}
}

// RasterizeAll rasterizes shapes in order.
func (g *Grid) RasterizeAll(shapes []Shape) {
	for _, s := range shapes {
		g.Rasterize(s)
	}
}

// rasterizeSegment walks the grid cells between p1 and p2 with Bresenham's
// algorithm, marking a 2×2 block per step so 4-connected fills cannot slip
// through diagonal steps. The segment is clipped to the grid first, so the
// walk never leaves it by more than one cell.
func (g *Grid) rasterizeSegment(p1, p2 orb.Point) {
	p1, p2, ok := g.clipSegment(p1, p2)
	if !ok {
		return
	}

	x0, y0 := g.WorldToCell(p1)
	x1, y1 := g.WorldToCell(p2)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		g.markCell(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipSegment trims p1→p2 to the grid extent grown by one cell.
// Non-finite endpoints and segments missing the grid are rejected.
func (g *Grid) clipSegment(p1, p2 orb.Point) (orb.Point, orb.Point, bool) {
	if !finite(p1) || !finite(p2) {
		return p1, p2, false
	}

	c := g.cellSize
	box := orb.Bound{
		Min: orb.Point{g.origin.X() - c, g.origin.Y() - c},
		Max: orb.Point{g.origin.X() + float64(g.width)*c, g.origin.Y() + float64(g.height)*c},
	}
	if box.Contains(p1) && box.Contains(p2) {
		return p1, p2, true
	}

	parts := clip.LineString(box, orb.LineString{p1, p2})
	if len(parts) == 0 || len(parts[0]) == 0 {
		return p1, p2, false
	}
	part := parts[0]
	return part[0], part[len(part)-1], true
}

func finite(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// rasterizeArc samples the arc at roughly half-cell arc-length spacing and
// rasterizes the chords between consecutive samples.
func (g *Grid) rasterizeArc(a Arc) {
	if a.Radius <= 0 || math.IsNaN(a.Radius) {
		return
	}

	sweep := arcSweep(a.StartAngle, a.EndAngle)
	n := int(math.Ceil(a.Radius * sweep / (g.cellSize / 2)))
	if n < minArcSamples {
		n = minArcSamples
	}

	prev := pointOnArc(a.Center, a.Radius, a.StartAngle)
	for i := 1; i <= n; i++ {
		next := pointOnArc(a.Center, a.Radius, a.StartAngle+sweep*float64(i)/float64(n))
		g.rasterizeSegment(prev, next)
		prev = next
	}
}

func (g *Grid) rasterizePolyline(pl Polyline) {
	n := len(pl.Vertices)
	if n == 0 {
		return
	}
	if n == 1 {
		g.rasterizeSegment(pl.Vertices[0].Point, pl.Vertices[0].Point)
		return
	}

	segments := n - 1
	if pl.Closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		v := pl.Vertices[i]
		next := pl.Vertices[(i+1)%n].Point
		if v.Bulge == 0 {
			g.rasterizeSegment(v.Point, next)
			continue
		}
		arc, ok := BulgeToArc(v.Point, next, v.Bulge)
		if !ok {
			g.rasterizeSegment(v.Point, next)
			continue
		}
		g.rasterizeArc(arc)
	}
}

// BulgeToArc converts the bulged segment p1→p2 into a counterclockwise Arc.
// A negative bulge yields the same circle swept from p2 back to p1.
// It returns false for zero bulge or a zero-length chord.
func BulgeToArc(p1, p2 orb.Point, bulge float64) (Arc, bool) {
	dx := p2.X() - p1.X()
	dy := p2.Y() - p1.Y()
	chord := math.Sqrt(dx*dx + dy*dy)
	if bulge == 0 || chord == 0 {
		return Arc{}, false
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/4 + sagitta*sagitta) / (2 * sagitta)

	sign := 1.0
	if bulge < 0 {
		sign = -1.0
	}

	// left-hand normal of the chord direction
	nx, ny := -dy/chord, dx/chord
	offset := sign * (radius - sagitta)
	center := orb.Point{
		(p1.X()+p2.X())/2 + nx*offset,
		(p1.Y()+p2.Y())/2 + ny*offset,
	}

	a1 := math.Atan2(p1.Y()-center.Y(), p1.X()-center.X())
	a2 := math.Atan2(p2.Y()-center.Y(), p2.X()-center.X())
	if bulge < 0 {
		a1, a2 = a2, a1
	}

	return Arc{Center: center, Radius: radius, StartAngle: a1, EndAngle: a2}, true
}

// arcSweep returns the counterclockwise sweep from start to end in (0, 2π].
func arcSweep(start, end float64) float64 {
	sweep := math.Mod(end-start, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	if sweep < fullCircleEps || math.Abs(sweep-2*math.Pi) < fullCircleEps {
		return 2 * math.Pi
	}
	return sweep
}

func pointOnArc(c orb.Point, r, angle float64) orb.Point {
	return orb.Point{c.X() + r*math.Cos(angle), c.Y() + r*math.Sin(angle)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
