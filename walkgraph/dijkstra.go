package walkgraph

import "container/heap"

// searchNode is a node in the Dijkstra frontier
type searchNode struct {
	NodeID string
	G      float64 // Cost from start to this node
	Parent *searchNode
	Index  int // Index in the heap
}

// priorityQueue implements heap.Interface ordered by path cost
type priorityQueue []*searchNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].G < pq[j].G
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *priorityQueue) Push(x any) {
	n := len(*pq)
	node := x.(*searchNode)
	node.Index = n
	*pq = append(*pq, node)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*pq = old[0 : n-1]
	return node
}

// FindPathToNearestEntrance returns the cheapest node path from startID to
// any entrance node, start and entrance included. A start node that is
// itself an entrance yields a one-node path. It returns false when startID
// is unknown or no entrance is reachable.
func (g *Graph) FindPathToNearestEntrance(startID string) ([]string, bool) {
	start, ok := g.nodes[startID]
	if !ok {
		return nil, false
	}
	if start.IsEntrance {
		return []string{startID}, true
	}

	openSet := &priorityQueue{}
	heap.Init(openSet)

	startNode := &searchNode{NodeID: startID}
	heap.Push(openSet, startNode)

	closedSet := make(map[string]bool)
	openSetMap := map[string]*searchNode{startID: startNode}

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*searchNode)
		delete(openSetMap, current.NodeID)

		if g.nodes[current.NodeID].IsEntrance {
			path := []string{}
			for node := current; node != nil; node = node.Parent {
				path = append(path, node.NodeID)
			}
			reverse(path)
			return path, true
		}

		closedSet[current.NodeID] = true

		for _, edgeID := range g.nodes[current.NodeID].Edges {
			edge := g.edges[edgeID]
			neighborID := edge.Other(current.NodeID)
			if closedSet[neighborID] {
				continue
			}

			tentativeG := current.G + edge.Weight

			neighbor, exists := openSetMap[neighborID]
			if !exists {
				neighbor = &searchNode{
					NodeID: neighborID,
					G:      tentativeG,
					Parent: current,
				}
				heap.Push(openSet, neighbor)
				openSetMap[neighborID] = neighbor
			} else if tentativeG < neighbor.G {
				neighbor.G = tentativeG
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	// No entrance in this component
	return nil, false
}

func reverse(ids []string) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}
