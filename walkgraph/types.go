package walkgraph

import "github.com/paulmach/orb"

// Entity is a tagged walkway shape: NodeMarker or EdgeSegment.
type Entity interface {
	isEntity()
}

// NodeMarker is a circular marker that becomes a graph node.
type NodeMarker struct {
	Handle   string
	Center   orb.Point
	Radius   float64
	Entrance bool
}

// EdgeSegment is a straight segment that becomes an edge if both ends snap
// to distinct nodes.
type EdgeSegment struct {
	Handle     string
	Start, End orb.Point
}

func (NodeMarker) isEntity()  {}
func (EdgeSegment) isEntity() {}

// Node is a walkway graph node.
type Node struct {
	ID         string    `json:"id"`
	Position   orb.Point `json:"position"`
	IsEntrance bool      `json:"isEntrance"`
	Edges      []string  `json:"edges"` // IDs of incident edges
}

// Edge connects two nodes with a cost
type Edge struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"` // Euclidean distance between node positions
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}
	return e.From
}

// Route is a resolved path to an entrance.
type Route struct {
	NodeIDs  []string
	Points   []orb.Point
	Distance float64
}
