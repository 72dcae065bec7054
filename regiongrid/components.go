package regiongrid

// offsets8 lists the 8-connected neighbor offsets.
var offsets8 = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// FindWallComponents groups wall cells into 8-connected components and
// returns one full-size mask per component holding at least minCellCount
// cells. Components are ordered by their first cell in row-major order.
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags, plus one mask per surviving component.
func (g *Grid) FindWallComponents(minCellCount int) []*Mask {
	seen := make([]bool, len(g.walls))
	var comps []*Mask

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			i0 := g.index(x, y)
			if !g.walls[i0] || seen[i0] {
				continue
			}

			// BFS to collect the component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := u%g.width, u/g.width
				for _, d := range offsets8 {
					vx, vy := ux+d[0], uy+d[1]
					if !g.InBounds(vx, vy) {
						continue
					}
					vi := g.index(vx, vy)
					if g.walls[vi] && !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}

			if len(queue) < minCellCount {
				continue // noise
			}
			mask := newMask(g.width, g.height)
			for _, u := range queue {
				mask.cells[u] = true
			}
			comps = append(comps, mask)
		}
	}

	return comps
}
