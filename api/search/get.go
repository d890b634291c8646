package search

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/rofind-api/api/types"
)

// Get handles game search requests expressed as query parameters
// @Summary      Search for games (query string)
// @Description  Same as POST /api/v1/search with parameters taken from the URL
// @Tags         search
// @Produce      json
// @Param        query                  query string false "Search text"
// @Param        page                   query int    false "Page number (1-based)"
// @Param        enhance                query bool   false "Request query enhancement"
// @Param        genres                 query string false "Comma separated genre list"
// @Param        min_playing_now        query int    false "Minimum active players"
// @Param        min_supported_players  query int    false "Minimum server capacity"
// @Param        max_supported_players  query int    false "Maximum server capacity"
// @Success      200 {object} types.SearchResponse "One page of results"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.SearchRequest{Query: c.Query("query")}

		var ok bool
		if req.Page, ok = types.QueryInt(c, "page", 1); !ok {
			return
		}

		if raw := strings.TrimSpace(c.Query("enhance")); raw != "" {
			enhance, err := strconv.ParseBool(raw)
			if err != nil {
				types.SendBadRequest(c, "Invalid enhance: must be a boolean")
				return
			}
			req.UseEnhancement = enhance
		}

		filters := &types.SearchFilters{Genres: types.QueryList(c, "genres")}
		if filters.MinPlayingNow, ok = types.QueryOptionalInt(c, "min_playing_now"); !ok {
			return
		}
		if filters.MinSupportedPlayers, ok = types.QueryOptionalInt(c, "min_supported_players"); !ok {
			return
		}
		if filters.MaxSupportedPlayers, ok = types.QueryOptionalInt(c, "max_supported_players"); !ok {
			return
		}
		req.Filters = filters

		run(c, deps, req)
	}
}
