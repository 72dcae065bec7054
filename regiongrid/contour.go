package regiongrid

import "github.com/paulmach/orb"

// Moore directions, clockwise in cell space starting east:
// E, SE, S, SW, W, NW, N, NE.
var mooreDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
var mooreDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}

// ExtractContour traces the outer boundary of mask and returns it in world
// coordinates, without a closing duplicate point. The start cell is the
// first set cell, in row-major order, with an unset 4-connected neighbor.
// An empty slice is returned when the mask has no boundary cell.
//
// The trace stops when it returns to the start cell, when the current cell
// has no set neighbor, or after W×H steps.
func (g *Grid) ExtractContour(mask *Mask) []orb.Point {
	if mask == nil {
		return nil
	}

	sx, sy, ok := boundaryStart(mask)
	if !ok {
		return nil
	}

	contour := []orb.Point{g.CellToWorld(sx, sy)}
	cx, cy := sx, sy
	dir := 7
	limit := mask.width * mask.height

	for step := 0; step < limit; step++ {
		found := false
		for i := 0; i < 8; i++ {
			nd := (dir + 5 + i) % 8
			nx, ny := cx+mooreDX[nd], cy+mooreDY[nd]
			if mask.At(nx, ny) {
				cx, cy, dir = nx, ny, nd
				found = true
				break
			}
		}
		if !found || (cx == sx && cy == sy) {
			break
		}
		contour = append(contour, g.CellToWorld(cx, cy))
	}

	return contour
}

func boundaryStart(mask *Mask) (int, int, bool) {
	for y := 0; y < mask.height; y++ {
		for x := 0; x < mask.width; x++ {
			if !mask.At(x, y) {
				continue
			}
			for _, d := range offsets4 {
				if !mask.At(x+d[0], y+d[1]) {
					return x, y, true
				}
			}
		}
	}
	return 0, 0, false
}
