package regiongrid

import "github.com/paulmach/orb"

// orthogonal neighbor offsets, in probe order: right, left, up, down.
var offsets4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FloodFill fills the empty region around the cell nearest (worldX, worldY)
// through 4-connected neighbors. It returns false when the region is not
// enclosed: the fill reached the edge of the grid, the seed lies outside the
// grid, or the seed and all four of its neighbors are walls.
//
// A seed on a wall cell restarts from its first empty orthogonal neighbor.
func (g *Grid) FloodFill(worldX, worldY float64) (*Mask, bool) {
	x, y := g.WorldToCell(orb.Point{worldX, worldY})
	if !g.InBounds(x, y) {
		return nil, false
	}

	if g.walls[g.index(x, y)] {
		found := false
		for _, d := range offsets4 {
			nx, ny := x+d[0], y+d[1]
			if g.InBounds(nx, ny) && !g.walls[g.index(nx, ny)] {
				x, y = nx, ny
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}

	mask := newMask(g.width, g.height)
	mask.set(x, y)
	stack := []int{g.index(x, y)}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cx, cy := i%g.width, i/g.width

		for _, d := range offsets4 {
			nx, ny := cx+d[0], cy+d[1]
			if !g.InBounds(nx, ny) {
				// reached the grid edge: open space
				return nil, false
			}
			ni := g.index(nx, ny)
			if g.walls[ni] || mask.cells[ni] {
				continue
			}
			mask.cells[ni] = true
			stack = append(stack, ni)
		}
	}

	return mask, true
}

// FloodFillPoint is FloodFill at an orb.Point.
func (g *Grid) FloodFillPoint(p orb.Point) (*Mask, bool) {
	return g.FloodFill(p.X(), p.Y())
}
