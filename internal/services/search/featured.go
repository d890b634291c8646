package search

import (
	"context"
	"fmt"

	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/internal/services/backend"
)

const (
	DefaultTrendingLimit = 10
	DefaultFeaturedCount = 5
	maxTrendingLimit     = 50
)

// TrendingSource returns the games with the most active players
type TrendingSource interface {
	Trending(ctx context.Context, limit int) (*backend.SearchResponse, error)
}

// Featured selects the games shown in the featured carousel
type Featured struct {
	source       TrendingSource
	transformer  *Transformer
	count        int
	defaultLimit int
}

// FeaturedOption configures a Featured service
type FeaturedOption func(*Featured)

// WithTrendingLimit sets the trending size used when callers pass no limit
func WithTrendingLimit(limit int) FeaturedOption {
	return func(f *Featured) {
		if limit > 0 {
			f.defaultLimit = min(limit, maxTrendingLimit)
		}
	}
}

// NewFeatured creates a featured service. count <= 0 uses DefaultFeaturedCount.
func NewFeatured(source TrendingSource, transformer *Transformer, count int, opts ...FeaturedOption) *Featured {
	if count <= 0 {
		count = DefaultFeaturedCount
	}
	f := &Featured{
		source:       source,
		transformer:  transformer,
		count:        count,
		defaultLimit: DefaultTrendingLimit,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Trending returns up to limit trending games, de-duplicated by id
func (f *Featured) Trending(ctx context.Context, limit int) ([]models.Game, error) {
	if limit <= 0 {
		limit = f.defaultLimit
	}
	limit = min(limit, maxTrendingLimit)

	resp, err := f.source.Trending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch trending games: %w", err)
	}

	games := f.transformer.Transform(ctx, resp.Hits.Hits)
	seen := make(map[string]struct{}, len(games))
	unique := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g.ID != "" {
			if _, dup := seen[g.ID]; dup {
				continue
			}
			seen[g.ID] = struct{}{}
		}
		unique = append(unique, g)
	}

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique, nil
}

// Games returns the featured selection: the first trending games
func (f *Featured) Games(ctx context.Context) ([]models.Game, error) {
	games, err := f.Trending(ctx, max(f.count, f.defaultLimit))
	if err != nil {
		return nil, err
	}
	if len(games) > f.count {
		games = games[:f.count]
	}
	return games, nil
}
