package server

import "net/http"

// setupRoutes configures all HTTP handlers
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /{$}", s.HandleIndex)        // All sixteen types
	s.mux.HandleFunc("GET /type", s.HandleType)        // Derive ?code= (or ?type=)
	s.mux.HandleFunc("POST /type", s.HandleType)       // Derive form field or JSON body
	s.mux.HandleFunc("GET /{code}/info", s.HandleInfo) // Full profile for one type
	s.mux.HandleFunc("GET /health", s.HandleHealth)    // Liveness + version
	s.mux.Handle("GET /metrics", s.metrics.handler())  // Prometheus
	s.mux.HandleFunc("/", s.handleNotFound)            // JSON 404 for everything else
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, notFound(r.URL.Path))
}
