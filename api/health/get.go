package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/rofind-api/api/types"
	"github.com/killallgit/rofind-api/pkg/log"
)

const backendCheckTimeout = 3 * time.Second

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service status and search backend reachability
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Service healthy"
// @Failure      503 {object} map[string]interface{} "Search backend unreachable"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		backend := getBackendStatus(c.Request.Context(), deps)

		status, code := "ok", http.StatusOK
		if backend["status"] == "unhealthy" {
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"backend":   backend,
		})
	}
}

// getBackendStatus returns the search backend status
func getBackendStatus(ctx context.Context, deps *types.Dependencies) gin.H {
	if deps == nil || deps.Backend == nil {
		return gin.H{"status": "not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, backendCheckTimeout)
	defer cancel()

	if err := deps.Backend.Health(ctx); err != nil {
		l := log.Ctx(ctx)
		l.Warn().Err(err).Msg("search backend health check failed")
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}
