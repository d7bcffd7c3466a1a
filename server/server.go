// Package server provides the HTTP API serving reports, RSS feeds and
// the OPML subscription list.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/scout/pkg/config"
	"github.com/umputun/scout/pkg/domain"
	"github.com/umputun/scout/pkg/repository"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/report_provider.go -pkg mocks -skip-ensure -fmt goimports . ReportProvider
//go:generate moq -out mocks/status_provider.go -pkg mocks -skip-ensure -fmt goimports . StatusProvider

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	reports ReportProvider
	status  StatusProvider
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ReportProvider supplies the latest report and rebuilds it on demand
type ReportProvider interface {
	Latest() *domain.Report
	RefreshNow(ctx context.Context) (*domain.Report, error)
}

// StatusProvider reports per-source cache state
type StatusProvider interface {
	States(ctx context.Context) ([]repository.SourceState, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	GetSources() []config.Source
}

// New initializes a new server instance
func New(cfg ConfigProvider, reports ReportProvider, status StatusProvider, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		reports: reports,
		status:  status,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("scout", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /suggestions", s.suggestionsHandler)
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /update", s.updateHandler)
	})

	// feed routes
	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /rss/{topic}", s.rssHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
}
