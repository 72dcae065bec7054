package main

import (
	"fmt"
	"log"
	"time"

	"github.com/paulmach/orb"

	"floorplan-engine/regiongrid"
)

// UnitArea is the polygon generated around one or more unit labels
type UnitArea struct {
	Label  string    `json:"label"`
	Labels []string  `json:"labels"` // every label seeded inside this area, Label first
	Seed   orb.Point `json:"seed"`
	Ring   orb.Ring  `json:"ring"`
	Cells  int       `json:"cells"` // filled grid cells
}

// UnitReport summarizes a unit-area generation pass
type UnitReport struct {
	Units    []*UnitArea `json:"units"`
	Failed   []string    `json:"failed"`
	Skipped  int         `json:"skipped"`
	CellSize float64     `json:"cellSize"`
}

// rasterizeWalls builds the wall grid for a drawing
func rasterizeWalls(parts drawingParts, cfg Config) (*regiongrid.Grid, error) {
	if len(parts.Walls) == 0 {
		return nil, ErrEmptyDrawing
	}
	cellSize := cellSizeFor(parts.WallBound, cfg.CellDivisor)
	if cellSize == 0 {
		return nil, fmt.Errorf("%w: zero extent", ErrEmptyDrawing)
	}

	grid := regiongrid.NewFromBound(parts.WallBound, cellSize)
	grid.RasterizeAll(parts.Walls)
	return grid, nil
}

// GenerateUnitAreas flood-fills the enclosed area around every unit label.
// Labels outside any enclosure are reported as failed; a label inside an
// area already generated for another label joins that area.
func GenerateUnitAreas(d *Drawing, cfg Config) (*UnitReport, error) {
	startTime := time.Now()
	parts := d.split(cfg)
	if parts.Skipped > 0 {
		log.Printf("   ⚠️  Skipped %d unsupported entities\n", parts.Skipped)
	}

	grid, err := rasterizeWalls(parts, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("   Grid: %dx%d cells of %.4f (%d walls)\n", grid.Width(), grid.Height(), grid.CellSize(), len(parts.Walls))

	report := &UnitReport{
		Units:    make([]*UnitArea, 0, len(parts.Labels)),
		Failed:   make([]string, 0),
		Skipped:  parts.Skipped,
		CellSize: grid.CellSize(),
	}
	index := NewUnitIndex()
	tolerance := grid.CellSize() * cfg.SimplifyFactor

	for _, label := range parts.Labels {
		if unit, ok := index.Containing(label.Position); ok {
			unit.Labels = append(unit.Labels, label.Text)
			continue
		}

		mask, ok := grid.FloodFillPoint(label.Position)
		if !ok {
			report.Failed = append(report.Failed, label.Text)
			continue
		}

		contour := regiongrid.SimplifyPolygon(grid.ExtractContour(mask), tolerance)
		if len(contour) < 3 {
			report.Failed = append(report.Failed, label.Text)
			continue
		}

		unit := &UnitArea{
			Label:  label.Text,
			Labels: []string{label.Text},
			Seed:   label.Position,
			Ring:   closeRing(contour),
			Cells:  mask.Count(),
		}
		index.Insert(unit)
		report.Units = append(report.Units, unit)
	}

	log.Printf("   ✅ %d unit areas generated, %d failed (%.2fs)\n",
		len(report.Units), len(report.Failed), time.Since(startTime).Seconds())
	return report, nil
}
