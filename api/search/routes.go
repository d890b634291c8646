package search

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/rofind-api/api/types"
)

// RegisterRoutes registers search routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// router already includes the /search prefix
	router.POST("", Post(deps))
	router.GET("", Get(deps))
}
