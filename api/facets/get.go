package facets

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/rofind-api/api/types"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
)

// Get returns the filter panel data
// @Summary      Get search facets
// @Description  Genre, creator and player-count buckets derived from the index aggregations
// @Tags         facets
// @Produce      json
// @Success      200 {object} types.FacetsResponse "Facet buckets"
// @Failure      502 {object} types.ErrorResponse "Search backend failure"
// @Failure      504 {object} types.ErrorResponse "Search backend timed out"
// @Router       /api/v1/facets [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Facets == nil {
			types.SendError(c, "Facet service not available", apperrors.New(apperrors.ErrCodeServiceDown, "facets not configured"))
			return
		}

		set, err := deps.Facets.Facets(c.Request.Context())
		if err != nil {
			types.SendError(c, "Failed to fetch facets", err)
			return
		}

		c.JSON(http.StatusOK, types.FacetsResponse{
			BaseResponse: types.OK("Facets retrieved successfully"),
			FacetSet:     *set,
		})
	}
}
