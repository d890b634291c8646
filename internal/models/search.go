package models

import "strings"

// FilterSet narrows a search. The zero value means no filter.
type FilterSet struct {
	Categories       []string `json:"genres,omitempty"`
	MinActivePlayers *int     `json:"minPlayingNow,omitempty"`
	MinCapacity      *int     `json:"minSupportedPlayers,omitempty"`
	MaxCapacity      *int     `json:"maxSupportedPlayers,omitempty"`
}

// IsEmpty reports whether the filter set constrains nothing
func (f FilterSet) IsEmpty() bool {
	for _, c := range f.Categories {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return f.MinActivePlayers == nil && f.MinCapacity == nil && f.MaxCapacity == nil
}

// RequestFilters is the wire form of a FilterSet.
type RequestFilters struct {
	Genres              []string `json:"genres,omitempty"`
	MinPlayingNow       string   `json:"min_playing_now,omitempty"`
	MinSupportedPlayers string   `json:"min_supported_players,omitempty"`
	MaxSupportedPlayers string   `json:"max_supported_players,omitempty"`
}

// SearchRequest is the payload posted to the backend search endpoint.
type SearchRequest struct {
	RequestID      string          `json:"-"`
	Query          string          `json:"query"`
	PageSize       int             `json:"page_size"`
	Page           int             `json:"page"`
	UseEnhancement bool            `json:"use_llm"`
	Filters        *RequestFilters `json:"filters,omitempty"`
}

// SearchResult is one page of transformed results.
type SearchResult struct {
	Items       []Game    `json:"items"`
	TotalCount  int       `json:"totalCount"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
	Suggestions []string  `json:"suggestions"`
	Analysis    *Analysis `json:"analysis,omitempty"`
}

// EmptyResult returns a result with no items positioned on the given page
func EmptyResult(page int) *SearchResult {
	return &SearchResult{
		Items:       []Game{},
		TotalCount:  0,
		CurrentPage: page,
		TotalPages:  0,
		Suggestions: []string{},
	}
}
