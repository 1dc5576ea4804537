package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tee-settlement/domain/interfaces"
)

const healthCheckTimeout = 5 * time.Second

// HealthChecker probes the service dependencies. Probes left nil are
// reported as "unconfigured" rather than failing the check.
type HealthChecker struct {
	Backend     func(ctx context.Context) error
	Marketplace interfaces.Marketplace
	Chain       interfaces.BlockchainClient
	Logger      interfaces.Logger
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleHealthChecks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checker := s.Health
	if checker == nil {
		checker = &HealthChecker{}
	}
	checks := checker.run(ctx)
	status := http.StatusOK
	for _, state := range checks {
		if state == "error" {
			status = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(status, gin.H{
		"backend":   checks["backend"],
		"iexec":     checks["iexec"],
		"chain":     checks["chain"],
		"checkedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthChecker) run(ctx context.Context) map[string]string {
	checks := map[string]string{
		"backend": "unconfigured",
		"iexec":   "unconfigured",
		"chain":   "unconfigured",
	}

	if h.Backend != nil {
		checks["backend"] = h.probe("backend", h.Backend(ctx))
	}
	if h.Marketplace != nil {
		checks["iexec"] = h.probe("iexec", h.Marketplace.Ping(ctx))
	}
	if h.Chain != nil {
		_, err := h.Chain.GetBlockNumber(ctx)
		checks["chain"] = h.probe("chain", err)
	}
	return checks
}

func (h *HealthChecker) probe(name string, err error) string {
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("Health check failed", "check", name, "error", err.Error())
		}
		return "error"
	}
	return "ok"
}
