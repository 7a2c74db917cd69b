// Package server exposes labscan over HTTP for the web frontend.
//
// Routes:
//
//	POST /api/v1/upload   multipart field "file"; returns a JSON array of results
//	POST /api/v1/extract  {"text": "...", "mode": "catalog|generic"}; returns a JSON array
//	GET  /api/v1/catalog  the active parameter catalog
//	GET  /healthz         {"status":"ok"}
//
// Errors are returned as {"error": "..."} with a matching status code.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/tsawler/labscan"
	"github.com/tsawler/labscan/catalog"
	"github.com/tsawler/labscan/log"
)

// HeaderRequestID carries the request ID on requests and responses.
const HeaderRequestID = "X-Request-ID"

// DefaultMaxUploadBytes limits the size of an uploaded document.
const DefaultMaxUploadBytes int64 = 20 << 20

// Server serves the labscan HTTP API.
type Server struct {
	router    *mux.Router
	handler   http.Handler
	catalog   *catalog.Catalog
	configure func(*labscan.Extractor) *labscan.Extractor
	maxUpload int64
	origins   []string
}

// Option configures a Server.
type Option func(*Server)

// WithCatalog sets the catalog used for uploads and text extraction.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Server) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithPipeline customizes the extractor run for each upload, for example to
// set the OCR language or the number of workers.
func WithPipeline(configure func(*labscan.Extractor) *labscan.Extractor) Option {
	return func(s *Server) {
		if configure != nil {
			s.configure = configure
		}
	}
}

// WithMaxUploadBytes limits the request body size of uploads.
func WithMaxUploadBytes(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUpload = n
		}
	}
}

// WithAllowedOrigins sets the origins allowed by CORS. "*" allows any.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{
		router:    mux.NewRouter(),
		catalog:   catalog.Default(),
		configure: func(e *labscan.Extractor) *labscan.Extractor { return e },
		maxUpload: DefaultMaxUploadBytes,
		origins:   []string{"*"},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(requestID)
	s.registerRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{HeaderRequestID},
	})
	s.handler = c.Handler(s.router)
	return s
}

// Handler returns the http.Handler for the server.
func (s *Server) Handler() http.Handler { return s.handler }

func (s *Server) registerRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)
	api.HandleFunc("/extract", s.handleExtract).Methods(http.MethodPost)
	api.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		log.Infof("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestID tags every request and response with an ID, reusing one sent
// by the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(HeaderRequestID, id)
		}
		w.Header().Set(HeaderRequestID, id)
		log.Debugf("%s %s request_id=%s", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Parameters())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
