package facets

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/rofind-api/api/types"
)

// RegisterRoutes registers facet routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/facets
	router.GET("", Get(deps))
}
