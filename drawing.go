package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paulmach/orb"

	"floorplan-engine/regiongrid"
	"floorplan-engine/walkgraph"
)

// Entity kinds understood by the service
const (
	EntityLine       = "LINE"
	EntityArc        = "ARC"
	EntityCircle     = "CIRCLE"
	EntityLWPolyline = "LWPOLYLINE"
	EntityPolyline   = "POLYLINE"
	EntityText       = "TEXT"
	EntityMText      = "MTEXT"
)

// Drawing is the JSON form of a floor-plan document exported by the editor
type Drawing struct {
	Entities []DrawingEntity `json:"entities"`
}

// DrawingEntity is one CAD entity. Only the fields of its Type are used.
type DrawingEntity struct {
	Handle string `json:"handle"`
	Type   string `json:"type"`
	Layer  string `json:"layer"`
	Color  int    `json:"color"`

	// LINE
	Start orb.Point `json:"start"`
	End   orb.Point `json:"end"`

	// ARC, CIRCLE
	Center     orb.Point `json:"center"`
	Radius     float64   `json:"radius"`
	StartAngle float64   `json:"startAngle"`
	EndAngle   float64   `json:"endAngle"`

	// LWPOLYLINE
	Vertices []DrawingVertex `json:"vertices,omitempty"`
	Closed   bool            `json:"closed,omitempty"`

	// TEXT, MTEXT
	Position orb.Point `json:"position"`
	Text     string    `json:"text,omitempty"`
}

// DrawingVertex is a polyline vertex with its optional bulge
type DrawingVertex struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Bulge float64 `json:"bulge,omitempty"`
}

// unitLabel is a unit-number text used as a flood-fill seed
type unitLabel struct {
	Text     string
	Position orb.Point
}

// drawingParts is a drawing split by role
type drawingParts struct {
	Walls     []regiongrid.Shape
	WallBound orb.Bound
	Labels    []unitLabel
	Walkway   []walkgraph.Entity
	Skipped   int // entities of unsupported kinds
}

// LoadDrawing decodes a drawing document
func LoadDrawing(r io.Reader) (*Drawing, error) {
	var d Drawing
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode drawing: %w", err)
	}
	return &d, nil
}

// LoadDrawingFile reads a drawing document from disk
func LoadDrawingFile(filename string) (*Drawing, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open drawing: %w", err)
	}
	defer f.Close()

	return LoadDrawing(f)
}

func kind(e DrawingEntity) string {
	return strings.ToUpper(strings.TrimSpace(e.Type))
}

// split classifies the drawing's entities using the layer conventions in cfg
func (d *Drawing) split(cfg Config) drawingParts {
	var parts drawingParts
	haveBound := false

	for _, e := range d.Entities {
		switch {
		case strings.EqualFold(e.Layer, cfg.UnitLayer):
			// previously generated output, never an input
			continue

		case strings.EqualFold(e.Layer, cfg.WalkwayLayer):
			if ent, ok := walkwayEntity(e, cfg.EntranceColor); ok {
				parts.Walkway = append(parts.Walkway, ent)
			} else {
				parts.Skipped++
			}

		case kind(e) == EntityText || kind(e) == EntityMText:
			if strings.EqualFold(e.Layer, cfg.LabelLayer) && strings.TrimSpace(e.Text) != "" {
				parts.Labels = append(parts.Labels, unitLabel{Text: strings.TrimSpace(e.Text), Position: e.Position})
			}

		default:
			shape, ok := wallShape(e)
			if !ok {
				parts.Skipped++
				continue
			}
			b := shapeBound(shape)
			if !haveBound {
				parts.WallBound = b
				haveBound = true
			} else {
				parts.WallBound = parts.WallBound.Union(b)
			}
			parts.Walls = append(parts.Walls, shape)
		}
	}

	return parts
}

// wallShape converts a wall entity into a rasterizable shape
func wallShape(e DrawingEntity) (regiongrid.Shape, bool) {
	switch kind(e) {
	case EntityLine:
		return regiongrid.Segment{P1: e.Start, P2: e.End}, true

	case EntityArc:
		if e.Radius <= 0 {
			return nil, false
		}
		return regiongrid.Arc{Center: e.Center, Radius: e.Radius, StartAngle: e.StartAngle, EndAngle: e.EndAngle}, true

	case EntityCircle:
		if e.Radius <= 0 {
			return nil, false
		}
		return regiongrid.Circle(e.Center, e.Radius), true

	case EntityLWPolyline, EntityPolyline:
		if len(e.Vertices) == 0 {
			return nil, false
		}
		pl := regiongrid.Polyline{
			Vertices: make([]regiongrid.Vertex, 0, len(e.Vertices)),
			Closed:   e.Closed,
		}
		for _, v := range e.Vertices {
			pl.Vertices = append(pl.Vertices, regiongrid.Vertex{Point: orb.Point{v.X, v.Y}, Bulge: v.Bulge})
		}
		return pl, true
	}

	return nil, false
}

// walkwayEntity converts a walkway-layer entity into a graph entity
func walkwayEntity(e DrawingEntity, entranceColor int) (walkgraph.Entity, bool) {
	switch kind(e) {
	case EntityCircle:
		return walkgraph.NodeMarker{
			Handle:   e.Handle,
			Center:   e.Center,
			Radius:   e.Radius,
			Entrance: e.Color == entranceColor,
		}, true
	case EntityLine:
		return walkgraph.EdgeSegment{Handle: e.Handle, Start: e.Start, End: e.End}, true
	}
	return nil, false
}

// walkwayEntities returns the raw walkway-layer entities of the drawing
func (d *Drawing) walkwayEntities(cfg Config) []DrawingEntity {
	var out []DrawingEntity
	for _, e := range d.Entities {
		if strings.EqualFold(e.Layer, cfg.WalkwayLayer) {
			out = append(out, e)
		}
	}
	return out
}
