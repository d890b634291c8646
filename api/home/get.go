package home

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/killallgit/rofind-api/api/types"
	"github.com/killallgit/rofind-api/internal/models"
	apperrors "github.com/killallgit/rofind-api/pkg/errors"
)

// Get returns the landing page data
// @Summary      Get landing page data
// @Description  Top categories and featured games, fetched in parallel
// @Tags         home
// @Produce      json
// @Success      200 {object} types.HomeResponse "Categories and featured games"
// @Failure      502 {object} types.ErrorResponse "Search backend failure"
// @Router       /api/v1/home [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Facets == nil || deps.Featured == nil {
			types.SendError(c, "Home service not available", apperrors.New(apperrors.ErrCodeServiceDown, "facets or featured not configured"))
			return
		}

		var (
			categories []models.MergedBucket
			featured   []models.Game
		)

		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() error {
			var err error
			categories, err = deps.Facets.Categories(ctx, 0)
			return err
		})
		g.Go(func() error {
			var err error
			featured, err = deps.Featured.Games(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			types.SendError(c, "Failed to load home page data", err)
			return
		}

		c.JSON(http.StatusOK, types.HomeResponse{
			BaseResponse: types.OK("Home data retrieved successfully"),
			Categories:   categories,
			Featured:     featured,
		})
	}
}
