package categories

import (
	"context"
	"encoding/json"
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
	categoriesFunc func(ctx context.Context, limit int) ([]models.MergedBucket, error)
	lastLimit      int
}

func (m *mockFacets) Facets(context.Context) (*models.FacetSet, error) {
	return &models.FacetSet{}, nil
}

func (m *mockFacets) Categories(ctx context.Context, limit int) ([]models.MergedBucket, error) {
	m.lastLimit = limit
	return m.categoriesFunc(ctx, limit)
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buckets := []models.MergedBucket{{Key: "Simulation", Count: 120}, {Key: "RPG", Count: 80}}

	tests := []struct {
		name           string
		target         string
		categories     func(ctx context.Context, limit int) ([]models.MergedBucket, error)
		expectedStatus int
		expectedLimit  int
		expectedCode   string
	}{
		{
			name:   "default limit",
			target: "/api/v1/categories",
			categories: func(context.Context, int) ([]models.MergedBucket, error) {
				return buckets, nil
			},
			expectedStatus: http.StatusOK,
			expectedLimit:  0,
		},
		{
			name:   "explicit limit",
			target: "/api/v1/categories?limit=3",
			categories: func(context.Context, int) ([]models.MergedBucket, error) {
				return buckets, nil
			},
			expectedStatus: http.StatusOK,
			expectedLimit:  3,
		},
		{
			name:           "limit out of range",
			target:         "/api/v1/categories?limit=51",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "backend timeout",
			target: "/api/v1/categories",
			categories: func(context.Context, int) ([]models.MergedBucket, error) {
				return nil, apperrors.TimeoutError("GET /api/aggregations", context.DeadlineExceeded)
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   "API_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockFacets{categoriesFunc: tt.categories}
			router := gin.New()
			RegisterRoutes(router.Group("/api/v1/categories"), &types.Dependencies{Facets: provider})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp types.CategoriesResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedLimit, provider.lastLimit)
				assert.Equal(t, buckets, resp.Categories)
				assert.Equal(t, 2, resp.Count)
			}
			if tt.expectedCode != "" {
				var resp types.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Error)
			}
		})
	}
}

func TestGetWithoutProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/categories"), &types.Dependencies{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
