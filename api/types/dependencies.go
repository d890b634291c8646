package types

import (
	"context"

	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/internal/services/search"
)

// Searcher runs a paginated game search. It never fails; errors surface as an empty result.
type Searcher interface {
	Search(ctx context.Context, params search.Params) *models.SearchResult
}

// FacetProvider derives filter and category data from backend aggregations
type FacetProvider interface {
	Facets(ctx context.Context) (*models.FacetSet, error)
	Categories(ctx context.Context, limit int) ([]models.MergedBucket, error)
}

// FeaturedProvider returns trending and featured games
type FeaturedProvider interface {
	Trending(ctx context.Context, limit int) ([]models.Game, error)
	Games(ctx context.Context) ([]models.Game, error)
}

// HealthChecker reports whether the search backend is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Searcher Searcher
	Facets   FacetProvider
	Featured FeaturedProvider
	Backend  HealthChecker

	// Search defaults exposed to handlers for validation
	MaxPages int

	// Build version reported by GET /
	Version string
}
