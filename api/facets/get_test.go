package facets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/rofind-api/api/types"
	"github.com/killallgit/rofind-api/internal/models"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
)

type mockFacets struct {
	set *models.FacetSet
	err error
}

func (m *mockFacets) Facets(context.Context) (*models.FacetSet, error) {
	return m.set, m.err
}

func (m *mockFacets) Categories(context.Context, int) ([]models.MergedBucket, error) {
	return nil, errors.New("not used")
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	four := 4.0
	set := &models.FacetSet{
		Genres:       []models.MergedBucket{{Key: "Obby", Count: 30}},
		Creators:     []models.MergedBucket{},
		PlayerRanges: []models.RangeBucket{{Key: "1-4", To: &four, Count: 12}},
	}

	tests := []struct {
		name           string
		provider       *mockFacets
		expectedStatus int
		check          func(*testing.T, []byte)
	}{
		{
			name:           "facets flattened into the envelope",
			provider:       &mockFacets{set: set},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "ok", resp["status"])
				assert.Len(t, resp["genres"], 1)
				assert.Equal(t, []interface{}{}, resp["creators"])
				assert.Len(t, resp["playerRanges"], 1)
			},
		},
		{
			name:           "malformed aggregations",
			provider:       &mockFacets{err: apperrors.MalformedResponseError("search-backend", errors.New("bad json"))},
			expectedStatus: http.StatusBadGateway,
			check: func(t *testing.T, body []byte) {
				var resp types.ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "MALFORMED_RESPONSE", resp.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			RegisterRoutes(router.Group("/api/v1/facets"), &types.Dependencies{Facets: tt.provider})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/facets", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.check(t, w.Body.Bytes())
		})
	}
}
