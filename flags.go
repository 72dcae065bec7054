package main

import "flag"

// Flag defaults, shared by the flag declarations and DefaultConfig.
const (
	defaultAddr              = ":8080"
	defaultWalkGraphFile     = "walk_graph.json"
	defaultCellDivisor       = 2000
	defaultSimplifyFactor    = 1.0
	defaultMinComponentCells = 50
	defaultWalkwayLayer      = "WALKWAY"
	defaultLabelLayer        = "UNIT_NUMBER"
	defaultUnitLayer         = "UNIT_AREA"
	defaultEntranceColor     = 1
	defaultRouteSnapDistance = 0
)

// Command-line flags for the generation service. Layer names and the
// entrance color are drawing conventions owned by the editor, not by the
// geometry packages.
var (
	// addrFlag is the HTTP listen address.
	addrFlag = flag.String("addr", defaultAddr, "HTTP listen address")

	// walkGraphFileFlag stores the walkway entities of the last saved graph.
	walkGraphFileFlag = flag.String("walk-graph-file", defaultWalkGraphFile, "file used to persist walkway entities")

	// cellDivisorFlag sets grid resolution: cell size = max(extent) / divisor.
	cellDivisorFlag = flag.Float64("cell-divisor", defaultCellDivisor, "grid cells along the longer drawing axis")

	// simplifyFactorFlag scales the polygon simplification tolerance by the cell size.
	simplifyFactorFlag = flag.Float64("simplify-factor", defaultSimplifyFactor, "simplification tolerance in cells")

	minComponentCellsFlag = flag.Int("min-component-cells", defaultMinComponentCells, "wall components smaller than this are ignored for outlines")

	walkwayLayerFlag = flag.String("walkway-layer", defaultWalkwayLayer, "layer holding walkway nodes (circles) and edges (lines)")
	labelLayerFlag   = flag.String("label-layer", defaultLabelLayer, "layer holding unit-number labels")
	unitLayerFlag    = flag.String("unit-layer", defaultUnitLayer, "layer generated unit areas are written to")

	// entranceColorFlag marks walkway circles of this ACI color as entrances.
	entranceColorFlag = flag.Int("entrance-color", defaultEntranceColor, "ACI color of entrance node markers")

	routeSnapFlag = flag.Float64("route-snap-distance", defaultRouteSnapDistance, "max distance from a query point to its start node (0 = graph match tolerance)")
)

// Config holds the service settings.
type Config struct {
	Addr              string
	WalkGraphFile     string
	CellDivisor       float64
	SimplifyFactor    float64
	MinComponentCells int
	WalkwayLayer      string
	LabelLayer        string
	UnitLayer         string
	EntranceColor     int
	RouteSnapDistance float64
}

// DefaultConfig returns the flag defaults.
func DefaultConfig() Config {
	return Config{
		Addr:              defaultAddr,
		WalkGraphFile:     defaultWalkGraphFile,
		CellDivisor:       defaultCellDivisor,
		SimplifyFactor:    defaultSimplifyFactor,
		MinComponentCells: defaultMinComponentCells,
		WalkwayLayer:      defaultWalkwayLayer,
		LabelLayer:        defaultLabelLayer,
		UnitLayer:         defaultUnitLayer,
		EntranceColor:     defaultEntranceColor,
		RouteSnapDistance: defaultRouteSnapDistance,
	}
}

// configFromFlags reads the parsed flag values.
func configFromFlags() Config {
	return Config{
		Addr:              *addrFlag,
		WalkGraphFile:     *walkGraphFileFlag,
		CellDivisor:       *cellDivisorFlag,
		SimplifyFactor:    *simplifyFactorFlag,
		MinComponentCells: *minComponentCellsFlag,
		WalkwayLayer:      *walkwayLayerFlag,
		LabelLayer:        *labelLayerFlag,
		UnitLayer:         *unitLayerFlag,
		EntranceColor:     *entranceColorFlag,
		RouteSnapDistance: *routeSnapFlag,
	}
}
