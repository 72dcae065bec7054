package main

import (
	"flag"
	"log"
	"net/http"
)

func main() {
	flag.Parse()
	cfg := configFromFlags()
	s := newServer(cfg)

	log.Println("========================================")
	log.Println("🚀 Floor Plan Engine Server")
	log.Println("========================================")
	log.Println("Checking for existing walkway file...")

	if err := s.loadWalkway(); err == nil {
		log.Printf("✅ Loaded existing walk graph from %s\n", cfg.WalkGraphFile)
	} else if isMissing(err) {
		log.Println("ℹ️  No existing graph found (this is normal on first run)")
		log.Println("   Call /buildWalkGraph to create a new graph")
	} else {
		log.Printf("⚠️  Could not load walkway file: %v\n", err)
		log.Println("   Call /buildWalkGraph to create a new graph")
	}
	log.Println("")

	log.Printf("Server starting on %s\n", cfg.Addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /units              - Generate unit areas from a drawing")
	log.Println("  POST /outline            - Generate the building outline")
	log.Println("  POST /buildWalkGraph     - Build walk graph from walkway entities")
	log.Println("  GET  /walkGraphLines     - Get walk graph edges for visualization")
	log.Println("  POST /route              - Route from a point to the nearest entrance")
	log.Println("  GET  /health             - Check server status")
	log.Println("  GET  /ws                 - Subscribe to generation events")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(cfg.Addr, s.routes()); err != nil {
		log.Fatal(err)
	}
}
