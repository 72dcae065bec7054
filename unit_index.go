package main

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// boundEpsilon gives degenerate (zero-width) bounds a usable R-tree extent
const boundEpsilon = 1e-9

// unitEntry wraps a unit area for R-tree storage
type unitEntry struct {
	Unit *UnitArea
	BBox rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (u *unitEntry) Bounds() rtreego.Rect {
	return u.BBox
}

// UnitIndex answers "which generated unit contains this point"
type UnitIndex struct {
	tree *rtreego.Rtree
}

// NewUnitIndex creates an empty unit index
func NewUnitIndex() *UnitIndex {
	return &UnitIndex{tree: rtreego.NewTree(2, 25, 50)} // 2D, min 25, max 50 entries per node
}

// Insert adds a unit; units whose bound cannot form a rectangle are ignored
func (ui *UnitIndex) Insert(unit *UnitArea) {
	bbox, err := boundToRect(unit.Ring.Bound())
	if err != nil {
		return
	}
	ui.tree.Insert(&unitEntry{Unit: unit, BBox: bbox})
}

// Size returns the number of indexed units
func (ui *UnitIndex) Size() int {
	return ui.tree.Size()
}

// Containing returns the first indexed unit whose ring contains p
func (ui *UnitIndex) Containing(p orb.Point) (*UnitArea, bool) {
	query, err := rtreego.NewRect(rtreego.Point{p.X(), p.Y()}, []float64{boundEpsilon, boundEpsilon})
	if err != nil {
		return nil, false
	}

	for _, item := range ui.tree.SearchIntersect(query) {
		entry := item.(*unitEntry)
		if ringContains(entry.Unit.Ring, p) {
			return entry.Unit, true
		}
	}
	return nil, false
}

// boundToRect converts an orb.Bound to an R-tree rectangle
func boundToRect(b orb.Bound) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{b.Min.X(), b.Min.Y()},
		[]float64{
			max(b.Max.X()-b.Min.X(), boundEpsilon),
			max(b.Max.Y()-b.Min.Y(), boundEpsilon),
		},
	)
}
