package walkgraph

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DefaultMatchTolerance is the snapping distance used when no node markers exist.
const DefaultMatchTolerance = 1.0

// Graph is an undirected walkway graph.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string
	tolerance float64
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		tolerance: DefaultMatchTolerance,
	}
}

// BuildFromEntities replaces the graph with one derived from entities.
//
// Every NodeMarker becomes a node; the first marker wins when handles
// repeat, and an empty handle is replaced by "N<index>" (suffixed with
// "-<n>" if a real handle already uses that name). Every EdgeSegment
// whose endpoints snap to two different nodes within MatchTolerance becomes
// an edge ("E<index>" for an empty handle). Other entity kinds are ignored.
func (g *Graph) BuildFromEntities(entities []Entity) {
	g.nodes = make(map[string]*Node)
	g.nodeOrder = g.nodeOrder[:0]
	g.edges = make(map[string]*Edge)
	g.edgeOrder = g.edgeOrder[:0]

	// real handles are reserved before any ID is generated
	nodeHandles := make(map[string]bool)
	edgeHandles := make(map[string]bool)
	for _, ent := range entities {
		if m, ok := asNodeMarker(ent); ok && m.Handle != "" {
			nodeHandles[m.Handle] = true
		}
		if s, ok := asEdgeSegment(ent); ok && s.Handle != "" {
			edgeHandles[s.Handle] = true
		}
	}

	// Node pass
	maxRadius := 0.0
	for i, ent := range entities {
		m, ok := asNodeMarker(ent)
		if !ok {
			continue
		}
		id := m.Handle
		if id == "" {
			id = generatedID("N", i, func(id string) bool {
				_, exists := g.nodes[id]
				return exists || nodeHandles[id]
			})
		}
		if _, exists := g.nodes[id]; exists {
			continue
		}
		g.nodes[id] = &Node{
			ID:         id,
			Position:   m.Center,
			IsEntrance: m.Entrance,
			Edges:      make([]string, 0),
		}
		g.nodeOrder = append(g.nodeOrder, id)
		if m.Radius > maxRadius {
			maxRadius = m.Radius
		}
	}

	g.tolerance = DefaultMatchTolerance
	if len(g.nodes) > 0 && maxRadius > 0 {
		g.tolerance = 2 * maxRadius
	}

	// Edge pass
	for i, ent := range entities {
		s, ok := asEdgeSegment(ent)
		if !ok {
			continue
		}
		id := s.Handle
		if id == "" {
			id = generatedID("E", i, func(id string) bool {
				_, exists := g.edges[id]
				return exists || edgeHandles[id]
			})
		}
		if _, exists := g.edges[id]; exists {
			continue
		}

		from, ok := g.FindNearestNode(s.Start.X(), s.Start.Y(), g.tolerance)
		if !ok {
			continue
		}
		to, ok := g.FindNearestNode(s.End.X(), s.End.Y(), g.tolerance)
		if !ok || to.ID == from.ID {
			continue
		}

		g.edges[id] = &Edge{
			ID:     id,
			From:   from.ID,
			To:     to.ID,
			Weight: planar.Distance(from.Position, to.Position),
		}
		g.edgeOrder = append(g.edgeOrder, id)
		from.Edges = append(from.Edges, id)
		to.Edges = append(to.Edges, id)
	}
}

// generatedID names an entity without a handle "<prefix><index>", adding a
// "-<n>" suffix while that name is taken.
func generatedID(prefix string, index int, taken func(string) bool) string {
	id := fmt.Sprintf("%s%d", prefix, index)
	for n := 1; taken(id); n++ {
		id = fmt.Sprintf("%s%d-%d", prefix, index, n)
	}
	return id
}

func asNodeMarker(e Entity) (NodeMarker, bool) {
	switch v := e.(type) {
	case NodeMarker:
		return v, true
	case *NodeMarker:
		if v != nil {
			return *v, true
		}
	}
	return NodeMarker{}, false
}

func asEdgeSegment(e Entity) (EdgeSegment, bool) {
	switch v := e.(type) {
	case EdgeSegment:
		return v, true
	case *EdgeSegment:
		if v != nil {
			return *v, true
		}
	}
	return EdgeSegment{}, false
}

// MatchTolerance returns the endpoint snapping distance of the last build.
func (g *Graph) MatchTolerance() float64 { return g.tolerance }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edgeOrder) }

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// Nodes returns all nodes in build order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in build order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

// FindNearestNode finds the closest node to (x, y) within maxDistance.
// Ties go to the node built first.
func (g *Graph) FindNearestNode(x, y, maxDistance float64) (*Node, bool) {
	point := orb.Point{x, y}
	var nearest *Node
	minDist := math.Inf(1)

	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		dist := planar.Distance(point, n.Position)
		if dist <= maxDistance && dist < minDist {
			minDist = dist
			nearest = n
		}
	}

	return nearest, nearest != nil
}

// Lines returns the graph edges as line segments for visualization
func (g *Graph) Lines() []orb.LineString {
	lines := make([]orb.LineString, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		e := g.edges[id]
		lines = append(lines, orb.LineString{g.nodes[e.From].Position, g.nodes[e.To].Position})
	}
	return lines
}
