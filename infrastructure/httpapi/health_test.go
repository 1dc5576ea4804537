package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tee-settlement/test/mocks"
)

func TestHandleHealth(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doJSON(t, server, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleHealthChecks(t *testing.T) {
	t.Run("all probes healthy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		server, _ := newTestServer(t)

		marketplace := mocks.NewMockMarketplace(ctrl)
		marketplace.EXPECT().Ping(gomock.Any()).Return(nil)
		chain := mocks.NewMockBlockchainClient(ctrl)
		chain.EXPECT().GetBlockNumber(gomock.Any()).Return(uint64(1234), nil)

		server.Health = &HealthChecker{
			Backend:     func(context.Context) error { return nil },
			Marketplace: marketplace,
			Chain:       chain,
		}

		rec := doJSON(t, server, http.MethodGet, "/health/checks", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "ok", body["backend"])
		assert.Equal(t, "ok", body["iexec"])
		assert.Equal(t, "ok", body["chain"])
		assert.NotEmpty(t, body["checkedAt"])
	})

	t.Run("failing probe degrades to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		server, _ := newTestServer(t)

		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

		chain := mocks.NewMockBlockchainClient(ctrl)
		chain.EXPECT().GetBlockNumber(gomock.Any()).Return(uint64(0), fmt.Errorf("connection refused"))

		server.Health = &HealthChecker{Chain: chain, Logger: logger}

		rec := doJSON(t, server, http.MethodGet, "/health/checks", nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["chain"])
		assert.Equal(t, "unconfigured", body["backend"])
		assert.Equal(t, "unconfigured", body["iexec"])
	})

	t.Run("nil checker reports everything unconfigured", func(t *testing.T) {
		server, _ := newTestServer(t)

		rec := doJSON(t, server, http.MethodGet, "/health/checks", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "unconfigured", body["backend"])
		assert.Equal(t, "unconfigured", body["chain"])
	})
}
