package regiongrid

import "github.com/paulmach/orb"

// Shape is a wall primitive accepted by Rasterize: Segment, Arc or Polyline.
type Shape interface {
	isShape()
}

// Segment is a straight wall between two world points.
type Segment struct {
	P1, P2 orb.Point
}

// Arc is a circular arc swept counterclockwise from StartAngle to EndAngle
// (radians). Equal angles, or a sweep of 2π, describe a full circle.
type Arc struct {
	Center     orb.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// Vertex is a polyline vertex. A non-zero Bulge turns the segment to the
// next vertex into a circular arc: |Bulge| = tan(θ/4), positive = counterclockwise.
type Vertex struct {
	Point orb.Point
	Bulge float64
}

// Polyline is an ordered vertex chain, optionally closed back to its first vertex.
type Polyline struct {
	Vertices []Vertex
	Closed   bool
}

func (Segment) isShape()  {}
func (Arc) isShape()      {}
func (Polyline) isShape() {}

// Circle returns a full-circle Arc.
func Circle(center orb.Point, radius float64) Arc {
	return Arc{Center: center, Radius: radius}
}
