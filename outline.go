package main

import (
	"log"

	"github.com/paulmach/orb"

	"floorplan-engine/regiongrid"
)

// OutlineReport holds the building outlines traced from wall components
type OutlineReport struct {
	Rings      []orb.Ring `json:"rings"`
	Components int        `json:"components"`
	Skipped    int        `json:"skipped"`
	CellSize   float64    `json:"cellSize"`
}

// GenerateOutline traces every sizeable wall component and keeps the
// outermost contours as the background outline.
func GenerateOutline(d *Drawing, cfg Config) (*OutlineReport, error) {
	parts := d.split(cfg)
	grid, err := rasterizeWalls(parts, cfg)
	if err != nil {
		return nil, err
	}

	comps := grid.FindWallComponents(cfg.MinComponentCells)
	tolerance := grid.CellSize() * cfg.SimplifyFactor

	rings := make([]orb.Ring, 0, len(comps))
	for _, mask := range comps {
		contour := regiongrid.SimplifyPolygon(grid.ExtractContour(mask), tolerance)
		if len(contour) < 3 {
			continue
		}
		rings = append(rings, closeRing(contour))
	}

	outer := removeContainedRings(rings)
	log.Printf("   Wall components: %d, outlines after removing contained: %d (removed %d)\n",
		len(comps), len(outer), len(rings)-len(outer))

	return &OutlineReport{
		Rings:      outer,
		Components: len(comps),
		Skipped:    parts.Skipped,
		CellSize:   grid.CellSize(),
	}, nil
}

// removeContainedRings keeps only the outermost rings. A ring is dropped
// when another ring encloses it; of two rings enclosing each other
// (duplicates) the earlier one survives.
func removeContainedRings(rings []orb.Ring) []orb.Ring {
	if len(rings) <= 1 {
		return rings
	}

	outer := make([]orb.Ring, 0, len(rings))
	for i, r := range rings {
		if !enclosedByAnother(rings, i) {
			outer = append(outer, r)
		}
	}
	return outer
}

func enclosedByAnother(rings []orb.Ring, i int) bool {
	for j, other := range rings {
		if j == i || !isRingContainedIn(rings[i], other) {
			continue
		}
		if j > i && isRingContainedIn(other, rings[i]) {
			continue
		}
		return true
	}
	return false
}

// isRingContainedIn reports whether every vertex of a lies in b
func isRingContainedIn(a, b orb.Ring) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	if bb, ab := b.Bound(), a.Bound(); !bb.Contains(ab.Min) || !bb.Contains(ab.Max) {
		return false
	}
	for _, p := range a {
		if !ringContains(b, p) {
			return false
		}
	}
	return true
}
