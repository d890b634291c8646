package search

import (
	"context"
	"errors"
	"time"

	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/internal/services/backend"
	"github.com/killallgit/rofind-api/pkg/log"
)

// DefaultEnhancementTimeout bounds an enhanced search before it is retried plain
const DefaultEnhancementTimeout = 15 * time.Second

// Backend is the part of the backend client the orchestrator needs
type Backend interface {
	Search(ctx context.Context, req models.SearchRequest) (*backend.SearchResponse, error)
}

// Config holds the search tunables
type Config struct {
	FetchSize          int
	PageSize           int
	MaxPages           int
	EnhancementTimeout time.Duration
	HighlightOpen      string
	HighlightClose     string
}

func (c Config) withDefaults() Config {
	if c.FetchSize <= 0 {
		c.FetchSize = DefaultFetchSize
	}
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.EnhancementTimeout <= 0 {
		c.EnhancementTimeout = DefaultEnhancementTimeout
	}
	return c
}

// Params is one search invocation
type Params struct {
	Query          string
	PageSize       int // display page size, <= 0 uses the configured one
	Page           int
	MaxPages       int // <= 0 uses the configured one
	UseEnhancement bool
	Filters        models.FilterSet
}

// Orchestrator runs a search end to end: build, call, transform, paginate
type Orchestrator struct {
	backend     Backend
	builder     *RequestBuilder
	transformer *Transformer
	cfg         Config
}

// NewOrchestrator creates a new orchestrator
func NewOrchestrator(b Backend, cfg Config) *Orchestrator {
	cfg = cfg.withDefaults()
	return &Orchestrator{
		backend:     b,
		builder:     NewRequestBuilder(cfg.FetchSize),
		transformer: NewTransformer(cfg.HighlightOpen, cfg.HighlightClose),
		cfg:         cfg,
	}
}

// Transformer returns the transformer used for hits
func (o *Orchestrator) Transformer() *Transformer {
	return o.transformer
}

// Search never fails: every error path yields an empty result on the clamped page.
// An enhanced search that exceeds the enhancement timeout is run once more without enhancement.
func (o *Orchestrator) Search(ctx context.Context, p Params) *models.SearchResult {
	maxPages := p.MaxPages
	if maxPages <= 0 {
		maxPages = o.cfg.MaxPages
	}
	page := clamp(p.Page, 1, maxPages)

	req := o.builder.Build(p.Query, p.Filters, p.UseEnhancement)
	if req.Query == "" && req.Filters == nil {
		return models.EmptyResult(1)
	}

	logger := log.Ctx(ctx).With().
		Str(log.FieldQuery, req.Query).
		Int(log.FieldPage, page).
		Bool(log.FieldEnhancement, req.UseEnhancement).
		Logger()

	resp, timedOut, err := o.fetch(ctx, req)
	if err != nil {
		if timedOut {
			logger.Warn().Dur("timeout", o.cfg.EnhancementTimeout).Msg("enhanced search timed out, retrying without enhancement")
			p.UseEnhancement = false
			return o.Search(ctx, p)
		}
		logger.Error().Err(err).Msg("search failed")
		return models.EmptyResult(page)
	}

	games := o.transformer.Transform(log.WithLogger(ctx, logger), resp.Hits.Hits)

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = o.cfg.PageSize
	}
	pg := Paginate(games, page, pageSize)

	logger.Debug().
		Int64(log.FieldBackendTotal, resp.Hits.Total.Value).
		Int(log.FieldHits, len(games)).
		Int("total_pages", pg.TotalPages).
		Int("current_page", pg.CurrentPage).
		Msg("search completed")

	return &models.SearchResult{
		Items:       pg.Items,
		TotalCount:  len(games),
		CurrentPage: pg.CurrentPage,
		TotalPages:  pg.TotalPages,
		Suggestions: resp.Suggestions(),
		Analysis:    models.ParseAnalysis(resp.RawAnalysis()),
	}
}

// fetch performs the single backend call. timedOut reports that the enhancement
// deadline, not the caller, ended the call.
func (o *Orchestrator) fetch(ctx context.Context, req models.SearchRequest) (*backend.SearchResponse, bool, error) {
	if !req.UseEnhancement {
		resp, err := o.backend.Search(ctx, req)
		return resp, false, err
	}

	callCtx, cancel := context.WithTimeout(ctx, o.cfg.EnhancementTimeout)
	defer cancel()

	resp, err := o.backend.Search(callCtx, req)
	if err == nil {
		return resp, false, nil
	}
	timedOut := errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil
	return nil, timedOut, err
}
