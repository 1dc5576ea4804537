// Package httpapi exposes the settlement service over HTTP. Routing and
// request plumbing live here; all behavior is delegated to use cases and
// repositories.
package httpapi

import (
	goerrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
	"tee-settlement/infrastructure/metrics"
)

// Server holds the process-scoped state injected into the routes.
type Server struct {
	RunSettlement     interfaces.RunSettlementUseCase
	FetchResult       interfaces.FetchResultUseCase
	ExecuteSettlement interfaces.ExecuteSettlementUseCase
	TreasuryBalance   interfaces.TreasuryBalanceUseCase
	Jobs              interfaces.JobRepository

	Datasets *BlobStore
	Faucet   *Faucet
	Health   *HealthChecker
	Metrics  *metrics.Metrics
	Logger   interfaces.Logger
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.POST("/settlement/run", s.handleRunSettlement)
	router.GET("/settlement/result/:taskId", s.handleFetchResult)
	router.POST("/settlement/execute", s.handleExecuteSettlement)
	router.GET("/settlement/treasury-balance", s.handleTreasuryBalance)

	router.GET("/jobs", s.handleListJobs)
	router.GET("/jobs/stats", s.handleJobStats)
	router.GET("/jobs/:taskId", s.handleGetJob)
	router.POST("/jobs", s.handleUpsertJob)
	router.PATCH("/jobs/:taskId", s.handlePatchJob)

	if s.Datasets != nil {
		router.POST("/datasets", s.handleUploadDataset)
		router.GET("/datasets/:id", s.handleGetDataset)
	}
	if s.Faucet != nil {
		router.POST("/faucet", s.handleFaucet)
	}

	router.GET("/health", s.handleHealth)
	router.GET("/health/checks", s.handleHealthChecks)
	if s.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	return router
}

// requestLogger tags each request with an id and records its duration.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("requestId", requestID)

		c.Next()

		status := c.Writer.Status()
		if s.Metrics != nil {
			s.Metrics.ObserveRequest(c.FullPath(), strconv.Itoa(status), time.Since(start))
		}
		s.Logger.Debug("Request handled",
			"requestId", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start))
	}
}

// respondError maps a domain error to its HTTP status. Every failure is a
// JSON object with a human-readable message; no stack traces.
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var verr *errors.ValidationError
	switch {
	case goerrors.As(err, &verr), goerrors.Is(err, errors.ErrInvalidInput):
		status = http.StatusBadRequest
	case goerrors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case goerrors.Is(err, errors.ErrConfiguration):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		s.Logger.WithError(err).Error("Request failed",
			"path", c.Request.URL.Path)
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// requireStore guards job endpoints when no backing store is configured.
func (s *Server) requireStore(c *gin.Context) bool {
	if s.Jobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job store is not configured"})
		return false
	}
	return true
}
