package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetUploadAndFetch(t *testing.T) {
	server, _ := newTestServer(t)
	server.Datasets = NewBlobStore()
	router := server.Router()

	t.Run("round trip preserves payload and content type", func(t *testing.T) {
		payload := []byte(`{"payouts":[{"recipient":"0x11","amount":"1.5"}]}`)
		req := httptest.NewRequest(http.MethodPost, "/datasets", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Host = "settle.example.com"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		id, ok := body["id"].(string)
		require.True(t, ok)
		require.NotEmpty(t, id)
		assert.Equal(t, "http://settle.example.com/datasets/"+id, body["url"])

		getReq := httptest.NewRequest(http.MethodGet, "/datasets/"+id, nil)
		getRec := httptest.NewRecorder()
		router.ServeHTTP(getRec, getReq)

		require.Equal(t, http.StatusOK, getRec.Code)
		assert.Equal(t, payload, getRec.Body.Bytes())
		assert.Contains(t, getRec.Header().Get("Content-Type"), "application/json")
	})

	t.Run("empty body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/datasets", bytes.NewReader(nil))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/datasets",
			bytes.NewReader(make([]byte, maxDatasetSize+1)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/datasets/does-not-exist", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
