package httpapi

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
)

func TestHandleListJobs(t *testing.T) {
	t.Run("filters by wallet", func(t *testing.T) {
		server, m := newTestServer(t)

		wallet := "0x2222222222222222222222222222222222222222"
		m.jobs.EXPECT().
			ListByWallet(gomock.Any(), wallet).
			Return([]entities.Job{
				{TaskID: testTaskID, WalletAddress: wallet, Status: entities.JobStatusCompleted},
			}, nil)

		rec := doJSON(t, server, http.MethodGet, "/jobs?wallet="+wallet, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		jobs := body["jobs"].([]interface{})
		require.Len(t, jobs, 1)
		assert.Equal(t, testTaskID, jobs[0].(map[string]interface{})["taskId"])
	})

	t.Run("empty result is an empty list, not null", func(t *testing.T) {
		server, m := newTestServer(t)

		m.jobs.EXPECT().ListByWallet(gomock.Any(), "").Return([]entities.Job{}, nil)

		rec := doJSON(t, server, http.MethodGet, "/jobs", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"jobs":[]}`, rec.Body.String())
	})

	t.Run("no store is a 503", func(t *testing.T) {
		server, _ := newTestServer(t)
		server.Jobs = nil

		rec := doJSON(t, server, http.MethodGet, "/jobs", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body["error"], "job store")
	})
}

func TestHandleGetJob(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		server, m := newTestServer(t)

		m.jobs.EXPECT().
			FindByTaskID(gomock.Any(), testTaskID).
			Return(&entities.Job{TaskID: testTaskID, Status: entities.JobStatusSubmitted}, nil)

		rec := doJSON(t, server, http.MethodGet, "/jobs/"+testTaskID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "submitted", body["status"])
	})

	t.Run("unknown task is a 404", func(t *testing.T) {
		server, m := newTestServer(t)

		m.jobs.EXPECT().
			FindByTaskID(gomock.Any(), testTaskID).
			Return(nil, errors.NewDomainError(errors.ErrNotFound, "job not found"))

		rec := doJSON(t, server, http.MethodGet, "/jobs/"+testTaskID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleJobStats(t *testing.T) {
	server, m := newTestServer(t)

	m.jobs.EXPECT().
		ListAll(gomock.Any(), 0).
		Return([]entities.Job{
			{Status: entities.JobStatusSubmitted},
			{Status: entities.JobStatusCompleted},
			{Status: entities.JobStatusCompleted},
			{Status: entities.JobStatusFailed},
			{Status: entities.JobStatusSettled},
		}, nil)

	rec := doJSON(t, server, http.MethodGet, "/jobs/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(5), body["total"])
	assert.Equal(t, float64(1), body["submitted"])
	assert.Equal(t, float64(2), body["completed"])
	assert.Equal(t, float64(1), body["failed"])
	assert.Equal(t, float64(1), body["settled"])
}

func TestHandleUpsertJob(t *testing.T) {
	t.Run("creates or merges the record", func(t *testing.T) {
		server, m := newTestServer(t)

		m.jobs.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, job entities.Job) (*entities.Job, error) {
				assert.Equal(t, testTaskID, job.TaskID)
				assert.Equal(t, testDealID, job.DealID)
				job.Status = entities.JobStatusSubmitted
				return &job, nil
			})

		rec := doJSON(t, server, http.MethodPost, "/jobs", map[string]interface{}{
			"taskId": testTaskID,
			"dealId": testDealID,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, testTaskID, body["taskId"])
	})

	t.Run("missing taskId is a 400", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doJSON(t, server, http.MethodPost, "/jobs", map[string]interface{}{
			"dealId": testDealID,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body["error"], "taskId")
	})
}

func TestHandlePatchJob(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		server, m := newTestServer(t)

		m.jobs.EXPECT().
			Patch(gomock.Any(), testTaskID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, patch entities.JobPatch) (*entities.Job, error) {
				require.NotNil(t, patch.Status)
				assert.Equal(t, entities.JobStatusFailed, *patch.Status)
				require.NotNil(t, patch.Error)
				assert.Nil(t, patch.Result)
				return &entities.Job{TaskID: testTaskID, Status: *patch.Status}, nil
			})

		rec := doJSON(t, server, http.MethodPatch, "/jobs/"+testTaskID, map[string]interface{}{
			"status": "failed",
			"error":  "task did not reach a terminal state",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "failed", body["status"])
	})

	t.Run("empty patch is rejected by the store", func(t *testing.T) {
		server, m := newTestServer(t)

		m.jobs.EXPECT().
			Patch(gomock.Any(), testTaskID, gomock.Any()).
			Return(nil, errors.NewDomainError(errors.ErrInvalidInput, "patch carries no fields"))

		rec := doJSON(t, server, http.MethodPatch, "/jobs/"+testTaskID, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
