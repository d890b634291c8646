package search

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/killallgit/rofind-api/internal/models"
)

// DefaultFetchSize is how many hits are requested from the backend in one call.
// Pagination happens locally over that set.
const DefaultFetchSize = 110

// RequestBuilder turns raw user input into a backend search request
type RequestBuilder struct {
	fetchSize int
	newID     func() string
}

// NewRequestBuilder creates a builder. fetchSize <= 0 uses DefaultFetchSize.
func NewRequestBuilder(fetchSize int) *RequestBuilder {
	if fetchSize <= 0 {
		fetchSize = DefaultFetchSize
	}
	return &RequestBuilder{fetchSize: fetchSize, newID: uuid.NewString}
}

// Build normalizes the query and filters. It never fails.
func (b *RequestBuilder) Build(query string, filters models.FilterSet, useEnhancement bool) models.SearchRequest {
	return models.SearchRequest{
		RequestID:      b.newID(),
		Query:          NormalizeQuery(query),
		PageSize:       b.fetchSize,
		Page:           1,
		UseEnhancement: useEnhancement,
		Filters:        buildFilters(filters),
	}
}

// NormalizeQuery trims the query and collapses whitespace runs to a single space
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}

func buildFilters(f models.FilterSet) *models.RequestFilters {
	out := &models.RequestFilters{
		Genres:              normalizeCategories(f.Categories),
		MinPlayingNow:       positive(f.MinActivePlayers),
		MinSupportedPlayers: positive(f.MinCapacity),
		MaxSupportedPlayers: positive(f.MaxCapacity),
	}

	if len(out.Genres) == 0 && out.MinPlayingNow == "" && out.MinSupportedPlayers == "" && out.MaxSupportedPlayers == "" {
		return nil
	}
	return out
}

func normalizeCategories(categories []string) []string {
	if len(categories) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// positive renders n when it is set and above zero
func positive(n *int) string {
	if n == nil || *n <= 0 {
		return ""
	}
	return strconv.Itoa(*n)
}
