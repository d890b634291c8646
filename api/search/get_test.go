package search

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		check          func(*testing.T, *mockSearcher)
	}{
		{
			name:           "query parameters",
			target:         "/api/v1/search?query=obby&page=3&enhance=true&genres=Obby,Parkour&min_playing_now=10&min_supported_players=2&max_supported_players=30",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, m *mockSearcher) {
				require.Len(t, m.calls, 1)
				p := m.calls[0]
				assert.Equal(t, "obby", p.Query)
				assert.Equal(t, 3, p.Page)
				assert.True(t, p.UseEnhancement)
				assert.Equal(t, []string{"Obby", "Parkour"}, p.Filters.Categories)
				assert.Equal(t, 10, *p.Filters.MinActivePlayers)
				assert.Equal(t, 2, *p.Filters.MinCapacity)
				assert.Equal(t, 30, *p.Filters.MaxCapacity)
			},
		},
		{
			name:           "defaults",
			target:         "/api/v1/search?query=obby",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, m *mockSearcher) {
				require.Len(t, m.calls, 1)
				assert.Equal(t, 1, m.calls[0].Page)
				assert.False(t, m.calls[0].UseEnhancement)
				assert.True(t, m.calls[0].Filters.IsEmpty())
			},
		},
		{
			name:           "invalid page",
			target:         "/api/v1/search?query=obby&page=abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid enhance flag",
			target:         "/api/v1/search?query=obby&enhance=maybe",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid numeric filter",
			target:         "/api/v1/search?query=obby&min_playing_now=lots",
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, m *mockSearcher) {
				assert.Empty(t, m.calls)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &mockSearcher{}
			router := setupRouter(searcher)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, searcher)
			}
		})
	}
}
