package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/rofind-api/api/types"
)

// Name is reported by GET / and the CLI
const Name = "RoFind API"

// Get handles version requests
// @Summary      Service version
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version information"
// @Router       / [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	version := "dev"
	if deps != nil && deps.Version != "" {
		version = deps.Version
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        Name,
			"version":     version,
			"description": "Game search orchestration API",
			"status":      "running",
		})
	}
}
