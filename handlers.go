package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"floorplan-engine/walkgraph"
)

type RouteRequest struct {
	Point       orb.Point `json:"point"`
	MaxDistance float64   `json:"maxDistance,omitempty"` // 0 = configured snap distance
}

type RouteResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Route    *geojson.Feature `json:"route,omitempty"`
	Distance float64          `json:"distance,omitempty"`
}

// server holds the walk graph shared by all requests
type server struct {
	cfg Config
	hub *Hub

	mu      sync.RWMutex
	graph   *walkgraph.Graph
	walkway []DrawingEntity
}

func newServer(cfg Config) *server {
	return &server{cfg: cfg, hub: NewHub()}
}

// routes registers every endpoint
func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/units", corsMiddleware(s.unitsHandler))
	mux.HandleFunc("/outline", corsMiddleware(s.outlineHandler))
	mux.HandleFunc("/buildWalkGraph", corsMiddleware(s.buildWalkGraphHandler))
	mux.HandleFunc("/walkGraphLines", corsMiddleware(s.walkGraphLinesHandler))
	mux.HandleFunc("/route", corsMiddleware(s.routeHandler))
	mux.HandleFunc("/health", corsMiddleware(s.healthHandler))
	mux.HandleFunc("/ws", s.wsHandler)
	return mux
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️  Failed to encode response: %v\n", err)
	}
}

// decodeDrawing reads a POSTed drawing, answering the request itself on failure
func decodeDrawing(w http.ResponseWriter, r *http.Request) (*Drawing, bool) {
	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	d, err := LoadDrawing(r.Body)
	if err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return d, true
}

// POST /units - Generate unit areas around unit-number labels
func (s *server) unitsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🏬 Unit area request received")

	d, ok := decodeDrawing(w, r)
	if !ok {
		return
	}
	log.Printf("   Entities: %d\n", len(d.Entities))

	report, err := GenerateUnitAreas(d, s.cfg)
	if err != nil {
		log.Printf("❌ Unit generation failed: %v\n", err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"message": err.Error(),
		})
		log.Println("========================================")
		return
	}
	if len(report.Failed) > 0 {
		log.Printf("   ⚠️  %d unit areas failed to generate: %v\n", len(report.Failed), report.Failed)
	}

	s.hub.Publish(EventUnitsGenerated, map[string]any{
		"units":  len(report.Units),
		"failed": len(report.Failed),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"units":    unitsFeatureCollection(report.Units, s.cfg.UnitLayer),
		"failed":   report.Failed,
		"skipped":  report.Skipped,
		"cellSize": report.CellSize,
	})
	log.Println("========================================")
}

// POST /outline - Generate the background outline from wall components
func (s *server) outlineHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🧱 Outline request received")

	d, ok := decodeDrawing(w, r)
	if !ok {
		return
	}

	report, err := GenerateOutline(d, s.cfg)
	if err != nil {
		log.Printf("❌ Outline generation failed: %v\n", err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"message": err.Error(),
		})
		log.Println("========================================")
		return
	}

	s.hub.Publish(EventOutlineGenerated, map[string]any{"outlines": len(report.Rings)})

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"outlines":   outlineFeatureCollection(report.Rings),
		"components": report.Components,
		"skipped":    report.Skipped,
		"cellSize":   report.CellSize,
	})
	log.Println("========================================")
}

// POST /buildWalkGraph - Rebuild the walk graph from walkway entities
func (s *server) buildWalkGraphHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🗺️  Build walk graph request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Drawing
		SaveToFile bool `json:"saveToFile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	graph, walkway := s.rebuild(&req.Drawing)

	if req.SaveToFile {
		if err := SaveWalkway(s.cfg.WalkGraphFile, walkway); err != nil {
			log.Printf("⚠️  Failed to save walkway: %v\n", err)
		}
	}

	s.hub.Publish(EventWalkGraphBuilt, map[string]any{
		"numNodes": graph.NodeCount(),
		"numEdges": graph.EdgeCount(),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"numNodes":       graph.NodeCount(),
		"numEdges":       graph.EdgeCount(),
		"matchTolerance": graph.MatchTolerance(),
	})
	log.Println("========================================")
}

// rebuild replaces the shared walk graph with one built from d
func (s *server) rebuild(d *Drawing) (*walkgraph.Graph, []DrawingEntity) {
	graph := BuildWalkGraph(d, s.cfg)
	walkway := d.walkwayEntities(s.cfg)

	s.mu.Lock()
	s.graph = graph
	s.walkway = walkway
	s.mu.Unlock()

	log.Printf("   ✅ Walk graph built: %d nodes, %d edges (tolerance %.4f)\n",
		graph.NodeCount(), graph.EdgeCount(), graph.MatchTolerance())
	return graph, walkway
}

func (s *server) currentGraph() (*walkgraph.Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return nil, ErrNoWalkGraph
	}
	return s.graph, nil
}

// GET /walkGraphLines - Get graph edges as line strings for visualization
func (s *server) walkGraphLinesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	graph, err := s.currentGraph()
	if err != nil {
		http.Error(w, "Walk graph not built. Call /buildWalkGraph first", http.StatusBadRequest)
		return
	}

	// graphs are never mutated after rebuild swaps them in
	lines := graphLinesFeatureCollection(graph)

	log.Printf("📊 Returning %d walk graph edges\n", len(lines.Features))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"lines":    lines,
		"numNodes": graph.NodeCount(),
		"numEdges": graph.EdgeCount(),
	})
}

// POST /route - Shortest walk from a point to the nearest entrance
func (s *server) routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	log.Printf("   Point: (%.4f, %.4f)\n", req.Point.X(), req.Point.Y())

	graph, err := s.currentGraph()
	if err != nil {
		log.Println("❌ Walk graph not available")
		http.Error(w, "Walk graph not built. Call /buildWalkGraph first", http.StatusBadRequest)
		log.Println("========================================")
		return
	}

	maxDistance := req.MaxDistance
	if maxDistance <= 0 {
		maxDistance = s.cfg.RouteSnapDistance
	}
	if maxDistance <= 0 {
		maxDistance = graph.MatchTolerance()
	}

	route, ok := graph.FindPathCoordinatesToEntrance(req.Point.X(), req.Point.Y(), maxDistance)

	response := RouteResponse{Success: ok}
	if !ok {
		log.Println("❌ No route to an entrance")
		response.Message = "No walkway node in range or no entrance reachable"
	} else {
		response.Route = routeFeature(graph, route)
		response.Distance = route.Distance
		log.Printf("✅ Route found: %d nodes, distance %.2f\n", len(route.NodeIDs), route.Distance)
	}

	writeJSON(w, http.StatusOK, response)
	log.Println("========================================")
}

// GET /health - Health check endpoint
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	hasGraph := s.graph != nil
	walkwayEntities := len(s.walkway)
	numNodes, numEdges := 0, 0
	if s.graph != nil {
		numNodes = s.graph.NodeCount()
		numEdges = s.graph.EdgeCount()
	}
	s.mu.RUnlock()

	status := "ready"
	if !hasGraph {
		status = "waiting for walk graph"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       status,
		"hasWalkGraph": hasGraph,
		"numNodes":     numNodes,
		"numEdges":     numEdges,
		"walkway":      walkwayEntities,
		"clients":      s.hub.Count(),
	})
}

// GET /ws - Stream generation events
func (s *server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("❌ Websocket accept failed: %v\n", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	s.hub.Add(conn)
	defer s.hub.Remove(conn)

	// Clients only listen; block until they go away
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
}

// loadWalkway restores the walk graph saved by a previous run
func (s *server) loadWalkway() error {
	d, err := LoadWalkway(s.cfg.WalkGraphFile)
	if err != nil {
		return err
	}
	s.rebuild(d)
	return nil
}

// isMissing reports whether err means the walkway file does not exist yet
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
