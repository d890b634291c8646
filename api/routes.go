package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/rofind-api/api/categories"
	"github.com/killallgit/rofind-api/api/facets"
	"github.com/killallgit/rofind-api/api/health"
	"github.com/killallgit/rofind-api/api/home"
	"github.com/killallgit/rofind-api/api/middleware"
	"github.com/killallgit/rofind-api/api/search"
	"github.com/killallgit/rofind-api/api/trending"
	"github.com/killallgit/rofind-api/api/types"
	"github.com/killallgit/rofind-api/api/version"
	_ "github.com/killallgit/rofind-api/docs/swagger"
	"github.com/killallgit/rofind-api/pkg/config"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
)

// RouteOptions carries the cross-cutting settings applied to route groups
type RouteOptions struct {
	RateLimiting config.RateLimitConfig
	Cache        middleware.CacheConfig
}

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limiter *ClientRateLimiter, opts RouteOptions) {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	rl := opts.RateLimiting
	limit := func(group *gin.RouterGroup, bucket string, rps float64, burst int) {
		if rl.Enabled && limiter != nil {
			group.Use(limiter.Middleware(bucket, rps, burst))
		}
	}

	// Search is never cached and has a tighter limit
	searchGroup := v1.Group("/search")
	limit(searchGroup, "search", rl.SearchRPS, rl.SearchBurst)
	search.RegisterRoutes(searchGroup, deps)

	responseCache := middleware.CacheMiddleware(opts.Cache)

	facetsGroup := v1.Group("/facets")
	limit(facetsGroup, "facets", rl.DefaultRPS, rl.DefaultBurst)
	facetsGroup.Use(responseCache)
	facets.RegisterRoutes(facetsGroup, deps)

	categoriesGroup := v1.Group("/categories")
	limit(categoriesGroup, "categories", rl.DefaultRPS, rl.DefaultBurst)
	categoriesGroup.Use(responseCache)
	categories.RegisterRoutes(categoriesGroup, deps)

	trendingGroup := v1.Group("/trending")
	limit(trendingGroup, "trending", rl.DefaultRPS, rl.DefaultBurst)
	trendingGroup.Use(responseCache)
	trending.RegisterRoutes(trendingGroup, deps)

	homeGroup := v1.Group("/home")
	limit(homeGroup, "home", rl.DefaultRPS, rl.DefaultBurst)
	homeGroup.Use(responseCache)
	home.RegisterRoutes(homeGroup, deps)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "The requested endpoint was not found",
			Error:   string(apperrors.ErrCodeNotFound),
			Details: gin.H{"path": c.Request.URL.Path},
		})
	}
}
