package home

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/rofind-api/api/types"
)

// RegisterRoutes registers the landing page route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/home
	router.GET("", Get(deps))
}
