// Package server provides the HTTP API for submitting and tracking candidate
// evaluations.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sleebit/recruiter-agent/internal/db"
	"github.com/sleebit/recruiter-agent/internal/pipeline"
	"github.com/sleebit/recruiter-agent/internal/task"
)

// TaskService is the subset of the task manager the handlers need.
type TaskService interface {
	Submit(ctx context.Context, input pipeline.Input) (*task.Task, error)
	Get(ctx context.Context, id string) (*task.Task, error)
}

// RunLister lists archived evaluation runs.
type RunLister interface {
	ListRuns(ctx context.Context, limit int) ([]db.AgentRun, error)
}

// Config holds server configuration
type Config struct {
	Port int
	// JWTSecret enables bearer-token auth on mutating routes when non-empty.
	JWTSecret string
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	tasks      TaskService
	runs       RunLister // nil when no database is configured
	jwtSecret  string
}

// New creates a new server instance. runs may be nil when run history is not
// persisted.
func New(cfg Config, tasks TaskService, runs RunLister) *Server {
	s := &Server{
		tasks:     tasks,
		runs:      runs,
		jwtSecret: cfg.JWTSecret,
	}

	mux := http.NewServeMux()
	mux.Handle("POST /run-agent/", s.withAuth(http.HandlerFunc(s.handleRunAgent)))
	mux.HandleFunc("GET /task/{task_id}", s.handleGetTask)
	mux.HandleFunc("GET /runs/", s.handleListRuns)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
