package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/internal/services/search"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
)

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestQueryInt(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected int
		ok       bool
	}{
		{"missing uses default", "/x", 7, true},
		{"parsed", "/x?page=3", 3, true},
		{"negative", "/x?page=-1", -1, true},
		{"invalid", "/x?page=two", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(tt.target)
			value, ok := QueryInt(c, "page", 7)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestQueryOptionalInt(t *testing.T) {
	c, _ := newContext("/x")
	value, ok := QueryOptionalInt(c, "min_playing_now")
	assert.True(t, ok)
	assert.Nil(t, value)

	c, _ = newContext("/x?min_playing_now=25")
	value, ok = QueryOptionalInt(c, "min_playing_now")
	assert.True(t, ok)
	require.NotNil(t, value)
	assert.Equal(t, 25, *value)
}

func TestQueryList(t *testing.T) {
	c, _ := newContext("/x?genres=RPG,%20Obby,&genres=Horror")
	assert.Equal(t, []string{"RPG", "Obby", "Horror"}, QueryList(c, "genres"))

	c, _ = newContext("/x")
	assert.Empty(t, QueryList(c, "genres"))
}

func TestLimitParam(t *testing.T) {
	c, _ := newContext("/x?limit=5")
	limit, ok := LimitParam(c)
	assert.True(t, ok)
	assert.Equal(t, 5, limit)

	c, w := newContext("/x?limit=500")
	_, ok = LimitParam(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"timeout", apperrors.TimeoutError("aggregations", nil), http.StatusGatewayTimeout, "API_TIMEOUT"},
		{"backend", apperrors.StatusError("search-backend", 500), http.StatusBadGateway, "EXTERNAL_SERVICE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext("/x")
			SendError(c, "Failed", tt.err)

			assert.Equal(t, tt.status, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.code, resp.Error)
		})
	}
}

func TestSearchResponseFlattensResult(t *testing.T) {
	resp := SearchResponse{
		BaseResponse: OK("done"),
		SearchResult: *models.EmptyResult(1),
		Query:        "tower",
		PageWindow:   search.PageWindow(1, 0),
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "ok",
		"message": "done",
		"items": [],
		"totalCount": 0,
		"currentPage": 1,
		"totalPages": 0,
		"suggestions": [],
		"query": "tower",
		"pageWindow": []
	}`, string(data))
}
