// Package walkgraph builds an undirected weighted walkway graph from tagged
// markers and segments, and routes from any node to the nearest entrance.
//
// Circles become nodes (NodeMarker), lines become edge candidates
// (EdgeSegment). Edge endpoints snap to the nearest node within twice the
// largest node radius; the edge weight is the distance between the snapped
// node centers.
//
// Unknown nodes, unreachable entrances and empty neighborhoods are reported
// as a false flag, never as errors. A Graph is not safe for concurrent use.
package walkgraph
