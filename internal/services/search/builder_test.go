package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/rofind-api/internal/models"
)

func intPtr(n int) *int { return &n }

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"tower", "tower"},
		{"  tower   defense  ", "tower defense"},
		{"tower\t\ndefense", "tower defense"},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeQuery(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, NormalizeQuery(got), "normalization must be idempotent")
		})
	}
}

func TestRequestBuilder_Build(t *testing.T) {
	b := NewRequestBuilder(0)

	req := b.Build("  tower  ", models.FilterSet{}, true)
	assert.Equal(t, "tower", req.Query)
	assert.Equal(t, DefaultFetchSize, req.PageSize)
	assert.Equal(t, 1, req.Page)
	assert.True(t, req.UseEnhancement)
	assert.Nil(t, req.Filters)
	assert.NotEmpty(t, req.RequestID)

	other := b.Build("tower", models.FilterSet{}, true)
	assert.NotEqual(t, req.RequestID, other.RequestID)
}

func TestRequestBuilder_Filters(t *testing.T) {
	b := NewRequestBuilder(110)

	tests := []struct {
		name     string
		filters  models.FilterSet
		expected *models.RequestFilters
	}{
		{
			name:     "empty",
			filters:  models.FilterSet{},
			expected: nil,
		},
		{
			name:     "blank categories and non-positive numbers",
			filters:  models.FilterSet{Categories: []string{"", "  "}, MinActivePlayers: intPtr(0), MaxCapacity: intPtr(-3)},
			expected: nil,
		},
		{
			name:    "categories trimmed and deduplicated",
			filters: models.FilterSet{Categories: []string{" RPG", "Obby", "RPG", "", "rpg"}},
			expected: &models.RequestFilters{
				Genres: []string{"RPG", "Obby", "rpg"},
			},
		},
		{
			name:    "numeric filters as strings",
			filters: models.FilterSet{MinActivePlayers: intPtr(100), MinCapacity: intPtr(2), MaxCapacity: intPtr(50)},
			expected: &models.RequestFilters{
				MinPlayingNow:       "100",
				MinSupportedPlayers: "2",
				MaxSupportedPlayers: "50",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := b.Build("q", tt.filters, false)
			assert.Equal(t, tt.expected, req.Filters)
		})
	}
}

func TestRequestBuilder_WireBody(t *testing.T) {
	b := NewRequestBuilder(110)
	b.newID = func() string { return "fixed" }

	body, err := json.Marshal(b.Build("tower", models.FilterSet{Categories: []string{"Strategy"}, MinCapacity: intPtr(4)}, true))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"query": "tower",
		"page_size": 110,
		"page": 1,
		"use_llm": true,
		"filters": {"genres": ["Strategy"], "min_supported_players": "4"}
	}`, string(body))

	plain, err := json.Marshal(b.Build("tower", models.FilterSet{}, false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"query":"tower","page_size":110,"page":1,"use_llm":false}`, string(plain))
}
