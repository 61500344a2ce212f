package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fortuna/gridiron/internal/service"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/gorilla/mux"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, db *store.Database, analyzer *service.AnalyzerService) *Server {
	handler := NewHandler(db, analyzer)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Game ingestion: body is one game's play-by-play input
	api.HandleFunc("/seasons/{season}/games", handler.IngestGame).Methods("POST")

	// Analyzed games
	api.HandleFunc("/seasons/{season}/teams/{team}/games", handler.GetSeasonGames).Methods("GET")
	api.HandleFunc("/seasons/{season}/teams/{team}/games/{gameNumber}", handler.GetGame).Methods("GET")

	// Season summary
	api.HandleFunc("/seasons/{season}/teams/{team}/summary", handler.GetSeasonSummary).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
