package trending

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/rofind-api/api/types"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
)

// Get returns trending games
// @Summary      Get trending games
// @Description  Trending hits from the search backend, transformed like search results and de-duplicated by id
// @Tags         trending
// @Produce      json
// @Param        limit query int false "Number of games (1-50, default 10)"
// @Success      200 {object} types.GamesResponse "Trending games"
// @Failure      400 {object} types.ErrorResponse "Invalid limit"
// @Failure      502 {object} types.ErrorResponse "Search backend failure"
// @Router       /api/v1/trending [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Featured == nil {
			types.SendError(c, "Trending service not available", apperrors.New(apperrors.ErrCodeServiceDown, "featured not configured"))
			return
		}

		limit, ok := types.LimitParam(c)
		if !ok {
			return
		}

		games, err := deps.Featured.Trending(c.Request.Context(), limit)
		if err != nil {
			types.SendError(c, "Failed to fetch trending games", err)
			return
		}

		c.JSON(http.StatusOK, types.GamesResponse{
			BaseResponse: types.OK("Trending games retrieved successfully"),
			Games:        games,
			Count:        len(games),
		})
	}
}
