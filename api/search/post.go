package search

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/rofind-api/api/types"
	"github.com/killallgit/rofind-api/internal/models"
	searchService "github.com/killallgit/rofind-api/internal/services/search"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
	"github.com/killallgit/rofind-api/pkg/log"
)

// Post handles game search requests
// @Summary      Search for games
// @Description  Runs a paginated game search. Backend failures produce an empty page rather than an error.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body types.SearchRequest true "Search parameters"
// @Success      200 {object} types.SearchResponse "One page of results"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid parameters"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/search [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		run(c, deps, req)
	}
}

// run validates req, executes the search and writes the response
func run(c *gin.Context, deps *types.Dependencies, req types.SearchRequest) {
	if deps == nil || deps.Searcher == nil {
		types.SendError(c, "Search service not available", apperrors.New(apperrors.ErrCodeServiceDown, "searcher not configured"))
		return
	}

	params, err := toParams(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Status:  types.StatusError,
			Message: err.Message,
			Error:   string(err.Code),
			Details: err.Details,
		})
		return
	}
	if params.MaxPages == 0 {
		params.MaxPages = deps.MaxPages
	}

	ctx := c.Request.Context()
	result := deps.Searcher.Search(ctx, params)

	l := log.Ctx(ctx)
	l.Debug().
		Str(log.FieldQuery, params.Query).
		Int(log.FieldPage, result.CurrentPage).
		Int(log.FieldHits, result.TotalCount).
		Msg("search served")

	c.JSON(http.StatusOK, types.SearchResponse{
		BaseResponse: types.OK("Search results retrieved successfully"),
		SearchResult: *result,
		Query:        params.Query,
		PageWindow:   searchService.PageWindow(result.CurrentPage, result.TotalPages),
	})
}

// toParams checks the request bounds and converts it to orchestrator parameters
func toParams(req types.SearchRequest) (searchService.Params, *apperrors.AppError) {
	query := strings.TrimSpace(req.Query)

	switch {
	case utf8.RuneCountInString(query) > types.MaxQueryLength:
		return searchService.Params{}, apperrors.ValidationError("query", "must be at most 256 characters")
	case req.Page < 0:
		return searchService.Params{}, apperrors.ValidationError("page", "must not be negative")
	case req.PageSize < 0 || req.PageSize > types.MaxPageSize:
		return searchService.Params{}, apperrors.ValidationError("pageSize", "must be between 1 and 100")
	case req.MaxPages < 0 || req.MaxPages > types.MaxPagesLimit:
		return searchService.Params{}, apperrors.ValidationError("maxPages", "must be between 1 and 100")
	}

	var filters models.FilterSet
	if f := req.Filters; f != nil {
		if len(f.Genres) > types.MaxGenreFilters {
			return searchService.Params{}, apperrors.ValidationError("genres", "at most 20 genres may be selected")
		}
		for name, v := range map[string]*int{
			"minPlayingNow":       f.MinPlayingNow,
			"minSupportedPlayers": f.MinSupportedPlayers,
			"maxSupportedPlayers": f.MaxSupportedPlayers,
		} {
			if v != nil && *v < 0 {
				return searchService.Params{}, apperrors.ValidationError(name, "must not be negative")
			}
		}
		filters = models.FilterSet{
			Categories:       f.Genres,
			MinActivePlayers: f.MinPlayingNow,
			MinCapacity:      f.MinSupportedPlayers,
			MaxCapacity:      f.MaxSupportedPlayers,
		}
	}

	page := req.Page
	if page == 0 {
		page = 1
	}

	return searchService.Params{
		Query:          query,
		Page:           page,
		PageSize:       req.PageSize,
		MaxPages:       req.MaxPages,
		UseEnhancement: req.UseEnhancement,
		Filters:        filters,
	}, nil
}
