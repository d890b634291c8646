package types

import (
	"github.com/killallgit/rofind-api/internal/models"
	"github.com/killallgit/rofind-api/internal/services/search"
)

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// SearchResponse is one page of search results
type SearchResponse struct {
	BaseResponse
	models.SearchResult
	Query      string              `json:"query"`
	PageWindow []search.PageMarker `json:"pageWindow"`
}

// FacetsResponse carries the filter panel data
type FacetsResponse struct {
	BaseResponse
	models.FacetSet
}

// CategoriesResponse lists the most populated categories
type CategoriesResponse struct {
	BaseResponse
	Categories []models.MergedBucket `json:"categories"`
	Count      int                   `json:"count"`
}

// GamesResponse is a list of games, used for trending and featured
type GamesResponse struct {
	BaseResponse
	Games []models.Game `json:"games"`
	Count int           `json:"count"`
}

// HomeResponse bundles the landing page data
type HomeResponse struct {
	BaseResponse
	Categories []models.MergedBucket `json:"categories"`
	Featured   []models.Game         `json:"featured"`
}

// ErrorResponse is returned for every non-2xx answer
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}
