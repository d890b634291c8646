package facets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/internal/services/backend"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
	"github.com/killallgit/rofind-api/pkg/log"
)

// Aggregation names returned by the backend
const (
	AggGenre      = "genre"
	AggGenreL1    = "genre_l1"
	AggGenreL2    = "genre_l2"
	AggCreators   = "creators"
	AggMaxPlayers = "max_players"
)

// DefaultTopCategories is the size of the category browser
const DefaultTopCategories = 8

// DefaultFetchTimeout bounds a shared aggregation fetch once it is detached from its callers
const DefaultFetchTimeout = 30 * time.Second

// AggregationSource returns the raw backend aggregations
type AggregationSource interface {
	Aggregations(ctx context.Context) (backend.Aggregations, error)
}

// Service derives facet and category lists from backend aggregations
type Service struct {
	source        AggregationSource
	topCategories int
	fetchTimeout  time.Duration
	sf            singleflight.Group
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithFetchTimeout bounds each backend aggregation fetch
func WithFetchTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// NewService creates a facet service. topCategories <= 0 uses DefaultTopCategories.
func NewService(source AggregationSource, topCategories int, opts ...ServiceOption) *Service {
	if topCategories <= 0 {
		topCategories = DefaultTopCategories
	}
	s := &Service{source: source, topCategories: topCategories, fetchTimeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Facets returns the filter panel data. Genres merge the two genre levels.
func (s *Service) Facets(ctx context.Context) (*models.FacetSet, error) {
	aggs, err := s.aggregations(ctx)
	if err != nil {
		return nil, err
	}

	return &models.FacetSet{
		Genres:       Merge(terms(ctx, aggs, AggGenreL1), terms(ctx, aggs, AggGenreL2)),
		Creators:     Merge(terms(ctx, aggs, AggCreators)),
		PlayerRanges: ranges(ctx, aggs, AggMaxPlayers),
	}, nil
}

// Categories returns the most populated categories across all genre levels.
// limit <= 0 uses the configured size.
func (s *Service) Categories(ctx context.Context, limit int) ([]models.MergedBucket, error) {
	aggs, err := s.aggregations(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.topCategories
	}

	merged := Merge(terms(ctx, aggs, AggGenreL1), terms(ctx, aggs, AggGenreL2), terms(ctx, aggs, AggGenre))
	return Top(merged, limit), nil
}

// aggregations coalesces concurrent fetches into a single backend call.
// The shared fetch outlives any single caller; each caller stops waiting when its own ctx ends.
func (s *Service) aggregations(ctx context.Context) (backend.Aggregations, error) {
	ch := s.sf.DoChan("aggregations", func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		aggs, err := s.source.Aggregations(fetchCtx)
		if err != nil {
			return nil, err
		}
		// The backend answers 200 with {"error": "..."} when the index query fails
		if raw, ok := aggs["error"]; ok {
			var msg string
			_ = json.Unmarshal(raw, &msg)
			return nil, apperrors.ExternalServiceError("search-backend", errors.New(msg))
		}
		return aggs, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load aggregations: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("load aggregations: %w", res.Err)
		}
		if res.Shared {
			l := log.Ctx(ctx)
			l.Debug().Msg("aggregation fetch shared with concurrent caller")
		}
		return res.Val.(backend.Aggregations), nil
	}
}

type termsAggregation struct {
	Buckets []struct {
		Key      json.RawMessage `json:"key"`
		DocCount int64           `json:"doc_count"`
	} `json:"buckets"`
}

type rangeAggregation struct {
	Buckets []struct {
		Key      string   `json:"key"`
		From     *float64 `json:"from"`
		To       *float64 `json:"to"`
		DocCount int64    `json:"doc_count"`
	} `json:"buckets"`
}

// terms decodes a terms aggregation. Missing or differently shaped aggregations yield nil.
func terms(ctx context.Context, aggs backend.Aggregations, name string) []models.AggregationBucket {
	raw, ok := aggs[name]
	if !ok {
		return nil
	}

	var agg termsAggregation
	if err := json.Unmarshal(raw, &agg); err != nil {
		l := log.Ctx(ctx)
		l.Warn().Err(err).Str("aggregation", name).Msg("ignoring undecodable aggregation")
		return nil
	}

	buckets := make([]models.AggregationBucket, 0, len(agg.Buckets))
	for _, b := range agg.Buckets {
		var key models.FlexString
		if err := json.Unmarshal(b.Key, &key); err != nil {
			continue
		}
		buckets = append(buckets, models.AggregationBucket{Key: key.String(), Count: b.DocCount})
	}
	return buckets
}

func ranges(ctx context.Context, aggs backend.Aggregations, name string) []models.RangeBucket {
	out := make([]models.RangeBucket, 0)
	raw, ok := aggs[name]
	if !ok {
		return out
	}

	var agg rangeAggregation
	if err := json.Unmarshal(raw, &agg); err != nil {
		l := log.Ctx(ctx)
		l.Warn().Err(err).Str("aggregation", name).Msg("ignoring undecodable aggregation")
		return out
	}

	for _, b := range agg.Buckets {
		out = append(out, models.RangeBucket{Key: b.Key, From: b.From, To: b.To, Count: b.DocCount})
	}
	return out
}
