package server

import (
	"encoding/json"
	"net/http"

	"github.com/contextlab/ragstore/internal/engine"
)

// Server wires the engine into HTTP handlers.
type Server struct {
	engine   *engine.Engine
	storeKey string
	backend  string
}

// New creates a server over the given engine. backend is a
// human-readable backend name reported by the health endpoint.
func New(e *engine.Engine, storeKey, backend string) *Server {
	return &Server{engine: e, storeKey: storeKey, backend: backend}
}

// Handler returns the API routes. Query and ask are aliases.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /rag/health", s.handleHealth)
	mux.HandleFunc("POST /rag/init", s.handleInit)
	mux.HandleFunc("POST /rag/append", s.handleAppend)
	mux.HandleFunc("POST /rag/query", s.handleQuery)
	mux.HandleFunc("POST /rag/ask", s.handleQuery)
	mux.HandleFunc("GET /rag/status", s.handleStatus)

	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{OK: false, Error: err.Error()})
}
