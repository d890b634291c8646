package types

// SearchRequest represents a game search request
type SearchRequest struct {
	Query          string         `json:"query" example:"tower defense"`
	Page           int            `json:"page,omitempty" example:"1"`
	PageSize       int            `json:"pageSize,omitempty" example:"11"`
	MaxPages       int            `json:"maxPages,omitempty" example:"10"`
	UseEnhancement bool           `json:"useEnhancement,omitempty" example:"false"`
	Filters        *SearchFilters `json:"filters,omitempty"`
}

// SearchFilters narrows a search
type SearchFilters struct {
	Genres              []string `json:"genres,omitempty" example:"Strategy,Tower Defense"`
	MinPlayingNow       *int     `json:"minPlayingNow,omitempty" example:"100"`
	MinSupportedPlayers *int     `json:"minSupportedPlayers,omitempty" example:"2"`
	MaxSupportedPlayers *int     `json:"maxSupportedPlayers,omitempty" example:"50"`
}

// Request bounds
const (
	MaxQueryLength  = 256
	MaxPageSize     = 100
	MaxPagesLimit   = 100
	MaxListLimit    = 50
	MaxGenreFilters = 20
)
