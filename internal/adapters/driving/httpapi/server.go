// Package httpapi exposes the docqa boundary surface over HTTP:
// document upload, question answering, document listing and a status
// probe. Handlers translate domain errors into HTTP statuses and do no
// business logic of their own.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"docqa/internal/core/ports/driven"
	"docqa/internal/core/ports/driving"
	"docqa/internal/logger"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP adapter. Each request runs on its own goroutine;
// the services behind it are safe for concurrent use.
type Server struct {
	ask       driving.AskService
	ingest    driving.IngestService
	documents driving.DocumentService
	db        Pinger                   // optional, nil for in-memory stores
	llm       driven.CompletionService // optional, nil when unconfigured

	httpServer *http.Server
}

// NewServer creates the HTTP adapter. db and llm may be nil; the status
// endpoint then reports them as unavailable.
func NewServer(
	port int,
	ask driving.AskService,
	ingest driving.IngestService,
	documents driving.DocumentService,
	db Pinger,
	llm driven.CompletionService,
) *Server {
	s := &Server{
		ask:       ask,
		ingest:    ingest,
		documents: documents,
		db:        db,
		llm:       llm,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("POST /ask", s.handleAsk)
	mux.HandleFunc("GET /documents", s.handleListDocuments)
	mux.HandleFunc("GET /documents/{id}", s.handleDocumentContent)
	mux.HandleFunc("DELETE /documents/{id}", s.handleDeleteDocument)
	mux.HandleFunc("GET /status", s.handleStatus)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           requestLog(cors(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving HTTP until Shutdown is called or the
// listener fails.
func (s *Server) ListenAndServe() error {
	logger.Info("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the server's root handler. Useful for testing.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// requestLog logs every request at debug level.
func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// cors allows browser frontends on other origins to call the API.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
