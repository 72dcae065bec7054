package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"floorplan-engine/walkgraph"
)

// BuildWalkGraph builds a fresh walk graph from the drawing's walkway layer
func BuildWalkGraph(d *Drawing, cfg Config) *walkgraph.Graph {
	parts := d.split(cfg)
	g := walkgraph.New()
	g.BuildFromEntities(parts.Walkway)
	return g
}

// SaveWalkway serializes the walkway entities to a JSON file.
// The graph itself is rebuilt from them on load.
func SaveWalkway(filename string, entities []DrawingEntity) error {
	log.Printf("💾 Saving walkway to %s...\n", filename)

	data, err := json.MarshalIndent(Drawing{Entities: entities}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal walkway: %w", err)
	}

	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("   ✅ Walkway saved (%d bytes)\n", len(data))
	return nil
}

// LoadWalkway reads walkway entities saved by SaveWalkway
func LoadWalkway(filename string) (*Drawing, error) {
	log.Printf("📂 Loading walkway from %s...\n", filename)

	d, err := LoadDrawingFile(filename)
	if err != nil {
		return nil, err
	}

	log.Printf("   ✅ Walkway loaded: %d entities\n", len(d.Entities))
	return d, nil
}
