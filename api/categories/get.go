package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/rofind-api/api/types"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
)

// Get returns the most populated game categories
// @Summary      Get top game categories
// @Description  Merges the genre aggregations of the index case-insensitively and returns the largest ones.
// @Description  Results are cached by the response cache.
// @Tags         categories
// @Produce      json
// @Param        limit query int false "Number of categories (1-50, default 8)"
// @Success      200 {object} types.CategoriesResponse "Categories ordered by game count"
// @Failure      400 {object} types.ErrorResponse "Invalid limit"
// @Failure      502 {object} types.ErrorResponse "Search backend failure"
// @Failure      504 {object} types.ErrorResponse "Search backend timed out"
// @Router       /api/v1/categories [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Facets == nil {
			types.SendError(c, "Categories service not available", apperrors.New(apperrors.ErrCodeServiceDown, "facets not configured"))
			return
		}

		limit, ok := types.LimitParam(c)
		if !ok {
			return
		}

		categories, err := deps.Facets.Categories(c.Request.Context(), limit)
		if err != nil {
			types.SendError(c, "Failed to fetch categories", err)
			return
		}

		c.JSON(http.StatusOK, types.CategoriesResponse{
			BaseResponse: types.OK("Categories retrieved successfully"),
			Categories:   categories,
			Count:        len(categories),
		})
	}
}
