package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"tee-settlement/domain/entities"
)

func (s *Server) handleListJobs(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}

	jobs, err := s.Jobs.ListByWallet(c.Request.Context(), c.Query("wallet"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	out := make([]jobJSON, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobJSON(&jobs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"jobs": out})
}

func (s *Server) handleGetJob(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}

	job, err := s.Jobs.FindByTaskID(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobJSON(job))
}

func (s *Server) handleJobStats(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}

	jobs, err := s.Jobs.ListAll(c.Request.Context(), 0)
	if err != nil {
		s.respondError(c, err)
		return
	}

	stats := entities.JobStats{Total: len(jobs)}
	for i := range jobs {
		switch jobs[i].Status {
		case entities.JobStatusSubmitted:
			stats.Submitted++
		case entities.JobStatusCompleted:
			stats.Completed++
		case entities.JobStatusFailed:
			stats.Failed++
		case entities.JobStatusSettled:
			stats.Settled++
		}
	}

	c.JSON(http.StatusOK, stats)
}

type upsertJobRequest struct {
	TaskID             string               `json:"taskId"`
	DealID             string               `json:"dealId"`
	WalletAddress      string               `json:"walletAddress"`
	SettlementName     string               `json:"settlementName"`
	Status             string               `json:"status"`
	Result             *entities.TaskResult `json:"result"`
	Error              string               `json:"error"`
	DatasetURLOverride string               `json:"datasetUrlOverride"`
}

func (s *Server) handleUpsertJob(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}

	var req upsertJobRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TaskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "taskId is required"})
		return
	}

	job, err := s.Jobs.Upsert(c.Request.Context(), entities.Job{
		TaskID:             req.TaskID,
		DealID:             req.DealID,
		WalletAddress:      req.WalletAddress,
		SettlementName:     req.SettlementName,
		Status:             entities.JobStatus(req.Status),
		Result:             req.Result,
		Error:              req.Error,
		DatasetURLOverride: req.DatasetURLOverride,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobJSON(job))
}

type patchJobRequest struct {
	Status        *string              `json:"status"`
	Result        *entities.TaskResult `json:"result"`
	Error         *string              `json:"error"`
	SettledTxHash *string              `json:"settledTxHash"`
	SettledAt     *time.Time           `json:"settledAt"`
}

func (s *Server) handlePatchJob(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}

	var req patchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := entities.JobPatch{
		Result:        req.Result,
		Error:         req.Error,
		SettledTxHash: req.SettledTxHash,
		SettledAt:     req.SettledAt,
	}
	if req.Status != nil {
		status := entities.JobStatus(*req.Status)
		patch.Status = &status
	}

	job, err := s.Jobs.Patch(c.Request.Context(), c.Param("taskId"), patch)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobJSON(job))
}
