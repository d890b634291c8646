package cmd

import (
	"fmt"

	"github.com/killallgit/rofind-api/api/types"
	"github.com/killallgit/rofind-api/internal/services/backend"
	"github.com/killallgit/rofind-api/internal/services/facets"
	"github.com/killallgit/rofind-api/internal/services/search"
	"github.com/killallgit/rofind-api/pkg/config"
)

// services is the wired component graph shared by serve and the CLI commands
type services struct {
	client       *backend.Client
	orchestrator *search.Orchestrator
	facets       *facets.Service
	featured     *search.Featured
}

func loadServices() (*services, *config.Config, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return newServices(cfg), cfg, nil
}

func newServices(cfg *config.Config) *services {
	client := backend.NewClient(backend.Config{
		BaseURL:           cfg.Backend.BaseURL,
		UserAgent:         cfg.Backend.UserAgent,
		Timeout:           cfg.Backend.Timeout,
		RequestsPerSecond: cfg.Backend.RateLimit,
		Burst:             cfg.Backend.Burst,
	})

	orchestrator := search.NewOrchestrator(client, search.Config{
		FetchSize:          cfg.Search.FetchSize,
		PageSize:           cfg.Search.PageSize,
		MaxPages:           cfg.Search.MaxPages,
		EnhancementTimeout: cfg.Search.EnhancementTimeout,
		HighlightOpen:      cfg.Search.HighlightOpen,
		HighlightClose:     cfg.Search.HighlightClose,
	})

	return &services{
		client:       client,
		orchestrator: orchestrator,
		facets:       facets.NewService(client, cfg.Facets.TopCategories, facets.WithFetchTimeout(cfg.Backend.Timeout)),
		featured: search.NewFeatured(client, orchestrator.Transformer(), cfg.Facets.FeaturedCount,
			search.WithTrendingLimit(cfg.Facets.TrendingLimit)),
	}
}

// dependencies exposes the services to the HTTP handlers
func (s *services) dependencies(cfg *config.Config) *types.Dependencies {
	return &types.Dependencies{
		Searcher: s.orchestrator,
		Facets:   s.facets,
		Featured: s.featured,
		Backend:  s.client,
		MaxPages: cfg.Search.MaxPages,
		Version:  Version,
	}
}
