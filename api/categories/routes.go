package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/rofind-api/api/types"
)

// RegisterRoutes registers categories routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/categories
	router.GET("", Get(deps))
}
