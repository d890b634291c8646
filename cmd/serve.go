package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/killallgit/rofind-api/api"
	"github.com/killallgit/rofind-api/api/middleware"
	"github.com/killallgit/rofind-api/internal/services/cache"
	"github.com/killallgit/rofind-api/pkg/config"
	"github.com/killallgit/rofind-api/pkg/log"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the RoFind API server with the configured settings.

The server proxies searches to the configured search backend and
serves facets, categories and trending games over HTTP.

Example:
  rofind serve
  rofind serve --port 9090
  rofind serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	svc, cfg, err := loadServices()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	host, port := cfg.Server.Host, cfg.Server.Port
	if serverHost != "" {
		host = serverHost
	}
	if serverPort != 0 {
		port = serverPort
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	responseCache, err := cache.New(cache.Options{
		Backend:    cfg.Cache.Backend,
		DefaultTTL: cfg.Cache.DefaultTTL,
		MaxSizeMB:  int64(cfg.Cache.MaxSizeMB),
		Prefix:     cfg.Cache.Prefix,
		Redis: cache.RedisConfig{
			Address:  cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		},
	})
	if err != nil {
		return fmt.Errorf("creating response cache: %w", err)
	}

	address := fmt.Sprintf("%s:%d", host, port)
	server := api.NewServer(address, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.IdleTimeout)
	server.SetMaxHeaderBytes(cfg.Server.MaxHeaderBytes)
	server.SetDependencies(svc.dependencies(cfg))
	server.SetRouteOptions(routeOptions(cfg, responseCache))
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	logger := log.L()
	logger.Info().
		Str("address", address).
		Str("backend", cfg.Backend.BaseURL).
		Str("cache", cfg.Cache.Backend).
		Msg("starting RoFind API server")

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Channel to receive server errors
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-stop:
		logger.Info().Msg("shutting down server")
	case err := <-serverErr:
		if err != nil {
			logger.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	logger.Info().Msg("server gracefully stopped")
	return nil
}

// routeOptions maps configuration onto the route level middleware settings
func routeOptions(cfg *config.Config, c cache.Cache) api.RouteOptions {
	trendingTTL := cfg.Cache.TrendingTTL
	if trendingTTL <= 0 {
		trendingTTL = time.Minute
	}

	return api.RouteOptions{
		RateLimiting: cfg.RateLimiting,
		Cache: middleware.CacheConfig{
			Cache:      c,
			DefaultTTL: cfg.Cache.DefaultTTL,
			TTLByPath: map[string]time.Duration{
				"/api/v1/trending": trendingTTL,
				"/api/v1/home":     trendingTTL,
			},
			Enabled: c != nil,
		},
	}
}
