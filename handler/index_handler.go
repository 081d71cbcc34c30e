package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dododo1295/tonotes-api/middleware"
	"github.com/dododo1295/tonotes-api/utils"

	"github.com/gin-gonic/gin"
)

func IndexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": "hello"})
}

// HealthCheck probes one backing service.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

func HealthHandler(c *gin.Context, checks []HealthCheck) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{}
	healthy := true
	for _, hc := range checks {
		if err := hc.Check(ctx); err != nil {
			middleware.Logger(c).WithError(err).WithField("check", hc.Name).Warn("health check failed")
			status[hc.Name] = "down"
			healthy = false
			continue
		}
		status[hc.Name] = "up"
	}

	if !healthy {
		utils.ServiceUnavailable(c, gin.H{"status": "degraded", "checks": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "checks": status})
}
