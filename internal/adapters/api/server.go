// Package api provides the HTTP adapter that triggers merges and reports on them
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"mailmerge.app/internal/core/merge"
	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// MergeDefaults fills request fields the caller leaves out
type MergeDefaults struct {
	Provider    ports.Provider
	Credentials ports.Credentials
	Format      ports.BodyFormat
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router       *gin.Engine
	config       ServerConfig
	mergeUseCase MergeUseCase
	runs         RunFinder
	stats        StatsProvider
	health       ports.SystemHealthChecker
	defaults     MergeDefaults

	// runMu keeps at most one SMTP session open per process
	runMu sync.Mutex
}

// Dependencies of the HTTP adapter
type MergeUseCase interface {
	Run(ctx context.Context, req merge.MergeRequest) (*merge.Report, error)
}

type RunFinder interface {
	FindRun(ctx context.Context, id string) (*ports.RunData, []*ports.DeliveryData, error)
}

type StatsProvider interface {
	GetStats() map[string]interface{}
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config       ServerConfig
	MergeUseCase MergeUseCase
	Runs         RunFinder
	Stats        StatsProvider
	Health       ports.SystemHealthChecker
	Gatherer     prometheus.Gatherer
	Defaults     MergeDefaults
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &HTTPServerAdapter{
		router:       router,
		config:       opts.Config,
		mergeUseCase: opts.MergeUseCase,
		runs:         opts.Runs,
		stats:        opts.Stats,
		health:       opts.Health,
		defaults:     opts.Defaults,
	}

	server.setupRoutes(opts.Gatherer)
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.MergeUseCase == nil {
		return errors.NewValidationError("merge use case is required")
	}
	if opts.Runs == nil {
		return errors.NewValidationError("run finder is required")
	}
	if opts.Stats == nil {
		return errors.NewValidationError("stats provider is required")
	}
	if opts.Health == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Gatherer == nil {
		return errors.NewValidationError("metrics gatherer is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes(gatherer prometheus.Gatherer) {
	api := s.router.Group("/api")
	{
		api.POST("/merges", s.createMerge)
		api.GET("/merges/:id", s.getMerge)
		api.GET("/stats", s.getStats)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", s.config.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server")
		return srv.Shutdown(context.Background())
	}
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
