package httpapi

import (
	"encoding/json"
	goerrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

type runSettlementRequest struct {
	DatasetURL    string `json:"datasetUrl"`
	WalletAddress string `json:"walletAddress"`
	Wait          bool   `json:"wait"`
}

func (s *Server) handleRunSettlement(c *gin.Context) {
	if s.RunSettlement == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "settlement pipeline is not configured"})
		return
	}

	var req runSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	start := time.Now()
	result, err := s.RunSettlement.Execute(c.Request.Context(), interfaces.RunSettlementParams{
		DatasetURL:    req.DatasetURL,
		WalletAddress: req.WalletAddress,
		Wait:          req.Wait,
	})
	if req.Wait && s.Metrics != nil {
		s.Metrics.ObserveTaskWait(time.Since(start))
	}
	if err != nil {
		if s.Metrics != nil {
			s.Metrics.RecordPipelineRun("error")
		}
		s.respondError(c, err)
		return
	}

	if s.Metrics != nil {
		s.Metrics.RecordPipelineRun("ok")
	}

	response := gin.H{"dealId": result.DealID, "taskId": result.TaskID}
	if result.Result != nil {
		response["result"] = result.Result
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) handleFetchResult(c *gin.Context) {
	if s.FetchResult == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "settlement pipeline is not configured"})
		return
	}

	taskID := c.Param("taskId")

	fetched, err := s.FetchResult.Execute(c.Request.Context(), taskID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"taskId": taskID,
		"status": fetched.Status,
		"result": fetched.Result,
	})
}

type executeSettlementRequest struct {
	Recipients  []string      `json:"recipients"`
	Amounts     []json.Number `json:"amounts"`
	Attestation string        `json:"attestation"`
	TaskID      string        `json:"taskId"`
}

func (s *Server) handleExecuteSettlement(c *gin.Context) {
	if s.ExecuteSettlement == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "settlement executor is not configured"})
		return
	}

	var req executeSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	amounts := make([]string, len(req.Amounts))
	for i, a := range req.Amounts {
		amounts[i] = a.String()
	}

	result, err := s.ExecuteSettlement.Execute(c.Request.Context(), interfaces.ExecuteSettlementParams{
		Recipients:  req.Recipients,
		Amounts:     amounts,
		Attestation: req.Attestation,
		TaskID:      req.TaskID,
	})
	if err != nil {
		if s.Metrics != nil {
			s.Metrics.RecordSettlement(settlementOutcome(err))
		}
		s.respondError(c, err)
		return
	}

	if s.Metrics != nil {
		s.Metrics.RecordSettlement("ok")
	}
	c.JSON(http.StatusOK, gin.H{
		"txHash":      result.TxHash,
		"explorerUrl": result.ExplorerURL,
	})
}

func settlementOutcome(err error) string {
	if goerrors.Is(err, errors.ErrAlreadySettled) {
		return "already_settled"
	}
	return "error"
}

func (s *Server) handleTreasuryBalance(c *gin.Context) {
	if s.TreasuryBalance == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "treasury is not configured"})
		return
	}

	refresh := c.Query("refresh")
	force := refresh == "1" || refresh == "true"

	result, err := s.TreasuryBalance.Execute(c.Request.Context(), force)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if s.Metrics != nil {
		s.Metrics.RecordTreasuryRead(string(result.Source))
	}
	c.JSON(http.StatusOK, gin.H{
		"balanceFormatted":  result.BalanceFormatted,
		"balanceRaw":        result.BalanceRaw,
		"settlementAddress": result.SettlementAddress,
		"source":            result.Source,
	})
}

// jobJSON is the wire shape of a job record.
type jobJSON struct {
	TaskID             string               `json:"taskId"`
	DealID             string               `json:"dealId,omitempty"`
	WalletAddress      string               `json:"walletAddress,omitempty"`
	SettlementName     string               `json:"settlementName"`
	Status             entities.JobStatus   `json:"status"`
	Result             *entities.TaskResult `json:"result"`
	Error              string               `json:"error,omitempty"`
	DatasetURLOverride string               `json:"datasetUrlOverride,omitempty"`
	SubmittedAt        string               `json:"submittedAt"`
	UpdatedAt          string               `json:"updatedAt"`
	SettledAt          *string              `json:"settledAt,omitempty"`
	SettledTxHash      string               `json:"settledTxHash,omitempty"`
}

func toJobJSON(job *entities.Job) jobJSON {
	out := jobJSON{
		TaskID:             job.TaskID,
		DealID:             job.DealID,
		WalletAddress:      job.WalletAddress,
		SettlementName:     job.SettlementName,
		Status:             job.Status,
		Result:             job.Result,
		Error:              job.Error,
		DatasetURLOverride: job.DatasetURLOverride,
		SubmittedAt:        job.SubmittedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          job.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		SettledTxHash:      job.SettledTxHash,
	}
	if job.SettledAt != nil {
		settled := job.SettledAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		out.SettledAt = &settled
	}
	return out
}
