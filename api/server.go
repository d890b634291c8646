package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/rofind-api/api/types"
	"github.com/killallgit/rofind-api/internal/services/cache"
	"github.com/killallgit/rofind-api/pkg/log"
)

// Server represents the HTTP server
type Server struct {
	engine      *gin.Engine
	httpServer  *http.Server
	rateLimiter *ClientRateLimiter
	cache       cache.Cache
	routes      RouteOptions

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string, readTimeout, writeTimeout, idleTimeout time.Duration) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		engine:      engine,
		rateLimiter: NewClientRateLimiter(),
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    readTimeout,
			WriteTimeout:   writeTimeout,
			IdleTimeout:    idleTimeout,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}
}

// SetMaxHeaderBytes overrides the 1 MB default header limit
func (s *Server) SetMaxHeaderBytes(n int) {
	if n > 0 {
		s.httpServer.MaxHeaderBytes = n
	}
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// SetRouteOptions sets rate limits and the response cache configuration.
// The server owns the cache from here on and closes it on shutdown.
func (s *Server) SetRouteOptions(opts RouteOptions) {
	s.routes = opts
	s.cache = opts.Cache.Cache
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()
	RegisterRoutes(s.engine, s.dependencies, s.rateLimiter, s.routes)
	return nil
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(log.GinMiddleware(log.L()))
	s.engine.Use(CORS())
	s.engine.Use(RequestSizeLimit())
}

// Start starts the HTTP server. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.rateLimiter.Stop()

	err := s.httpServer.Shutdown(ctx)

	if s.cache != nil {
		if cerr := s.cache.Close(); cerr != nil {
			l := log.L()
			l.Warn().Err(cerr).Msg("failed to close response cache")
		}
	}
	return err
}
