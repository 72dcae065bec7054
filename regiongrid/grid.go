package regiongrid

import (
	"math"

	"github.com/paulmach/orb"
)

// Padding is the number of empty cells added on each side of the extent.
const Padding = 2

// Grid is a uniform 2D wall occupancy grid in world units.
type Grid struct {
	walls    []bool // true = wall, indexed y*width+x
	width    int
	height   int
	cellSize float64
	origin   orb.Point
}

// New creates an empty grid covering [minX,maxX]×[minY,maxY] plus Padding
// cells on each side. A non-positive cellSize yields an empty 0×0 grid.
func New(minX, minY, maxX, maxY, cellSize float64) *Grid {
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return &Grid{cellSize: cellSize}
	}

	pad := Padding * cellSize
	w := int(math.Ceil((maxX - minX + 2*pad) / cellSize))
	h := int(math.Ceil((maxY - minY + 2*pad) / cellSize))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return &Grid{
		walls:    make([]bool, w*h),
		width:    w,
		height:   h,
		cellSize: cellSize,
		origin:   orb.Point{minX - pad, minY - pad},
	}
}

// NewFromBound is New over an orb.Bound.
func NewFromBound(b orb.Bound, cellSize float64) *Grid {
	return New(b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y(), cellSize)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellSize returns the cell edge length in world units.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Origin returns the world position of cell (0,0).
func (g *Grid) Origin() orb.Point { return g.origin }

// InBounds reports whether (x,y) is a valid cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// IsWall reports whether cell (x,y) is a wall cell. Out-of-range cells are not walls.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.walls[g.index(x, y)]
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, w := range g.walls {
		if w {
			n++
		}
	}
	return n
}

// WorldToCell maps a world point to the nearest cell coordinates.
// The result may lie outside the grid.
func (g *Grid) WorldToCell(p orb.Point) (int, int) {
	x := int(math.Round((p.X() - g.origin.X()) / g.cellSize))
	y := int(math.Round((p.Y() - g.origin.Y()) / g.cellSize))
	return x, y
}

// CellToWorld maps cell coordinates back to world units.
func (g *Grid) CellToWorld(x, y int) orb.Point {
	return orb.Point{
		g.origin.X() + float64(x)*g.cellSize,
		g.origin.Y() + float64(y)*g.cellSize,
	}
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// markCell sets (x,y) and the cells at +1 in each axis.
func (g *Grid) markCell(x, y int) {
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			if g.InBounds(x+dx, y+dy) {
				g.walls[g.index(x+dx, y+dy)] = true
			}
		}
	}
}

// Mask is a boolean cell set with the dimensions of the grid that produced it.
type Mask struct {
	cells  []bool
	width  int
	height int
}

func newMask(width, height int) *Mask {
	return &Mask{
		cells:  make([]bool, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// At reports whether (x,y) is set. Out-of-range cells are unset.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.cells[y*m.width+x]
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

func (m *Mask) set(x, y int) {
	m.cells[y*m.width+x] = true
}
