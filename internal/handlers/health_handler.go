package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/formcraft/formbuilder-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// Pinger is anything the deep health check can probe
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	BaseHandler
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger, logger utils.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: NewBaseHandler(logger),
		checks:      checks,
	}
}

// Root is the lightweight liveness probe served at /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Form Builder API is running!",
		"status":  "healthy",
		"endpoints": []string{
			"/api/forms",
			"/api/responses",
			"/api/upload",
		},
	})
}

// Health pings every dependency and answers 503 when one of them fails
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			h.LogError(c, err, "Health check failed", "dependency", name)
			results[name] = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "healthy"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":       overall,
		"service":      "formbuilder-api",
		"dependencies": results,
	})
}
