package handler

import (
	"context"
	"net/http"
	"time"

	"settlement-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 3 * time.Second

type dependencyStatus struct {
	Status   string `json:"status"`
	Critical bool   `json:"critical"`
	Latency  string `json:"latency"`
	Error    string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. The service is "unhealthy" (503) when a
// critical dependency fails and "degraded" (200) when only others do.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		deps := make(map[string]dependencyStatus, len(checkers))
		status, code := "healthy", http.StatusOK

		for _, checker := range checkers {
			start := time.Now()
			err := checker.Ping(ctx)
			dep := dependencyStatus{
				Status:   "healthy",
				Critical: checker.Critical(),
				Latency:  time.Since(start).Round(time.Microsecond).String(),
			}
			if err != nil {
				dep.Status, dep.Error = "unhealthy", err.Error()
				if dep.Critical {
					status, code = "unhealthy", http.StatusServiceUnavailable
				} else if status == "healthy" {
					status = "degraded"
				}
			}
			deps[checker.Name()] = dep
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
