package httpapi

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tee-settlement/test/mocks"
)

type fakeSender struct {
	calls  int
	err    error
	lastTo common.Address
}

func (f *fakeSender) Send(_ context.Context, to common.Address, _ *big.Int) (common.Hash, error) {
	f.calls++
	f.lastTo = to
	if f.err != nil {
		return common.Hash{}, f.err
	}
	return common.HexToHash("0xfeed"), nil
}

func newTestFaucet(t *testing.T, sender FaucetSender, cooldown time.Duration) *Faucet {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	return NewFaucet(sender, big.NewInt(10_000_000), cooldown, logger)
}

func TestFaucetClaim(t *testing.T) {
	wallet := common.HexToAddress("0x2222222222222222222222222222222222222222")

	t.Run("first claim goes through", func(t *testing.T) {
		sender := &fakeSender{}
		faucet := newTestFaucet(t, sender, time.Hour)

		txHash, err := faucet.Claim(context.Background(), wallet)
		require.NoError(t, err)
		assert.Equal(t, common.HexToHash("0xfeed"), txHash)
		assert.Equal(t, wallet, sender.lastTo)
	})

	t.Run("second claim inside the cooldown is refused", func(t *testing.T) {
		sender := &fakeSender{}
		faucet := newTestFaucet(t, sender, time.Hour)

		_, err := faucet.Claim(context.Background(), wallet)
		require.NoError(t, err)

		_, err = faucet.Claim(context.Background(), wallet)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cooldown")
		assert.Equal(t, 1, sender.calls)
	})

	t.Run("cooldown expiry allows another claim", func(t *testing.T) {
		sender := &fakeSender{}
		faucet := newTestFaucet(t, sender, 10*time.Millisecond)

		_, err := faucet.Claim(context.Background(), wallet)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		_, err = faucet.Claim(context.Background(), wallet)
		require.NoError(t, err)
		assert.Equal(t, 2, sender.calls)
	})

	t.Run("failed send does not burn the cooldown", func(t *testing.T) {
		sender := &fakeSender{err: fmt.Errorf("nonce too low")}
		faucet := newTestFaucet(t, sender, time.Hour)

		_, err := faucet.Claim(context.Background(), wallet)
		require.Error(t, err)

		sender.err = nil
		_, err = faucet.Claim(context.Background(), wallet)
		require.NoError(t, err)
	})
}

func TestHandleFaucet(t *testing.T) {
	t.Run("claim returns the transaction hash", func(t *testing.T) {
		server, _ := newTestServer(t)
		server.Faucet = newTestFaucet(t, &fakeSender{}, time.Hour)

		rec := doJSON(t, server, http.MethodPost, "/faucet", map[string]interface{}{
			"walletAddress": "0x2222222222222222222222222222222222222222",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, common.HexToHash("0xfeed").Hex(), body["txHash"])
	})

	t.Run("cooldown maps to 429", func(t *testing.T) {
		server, _ := newTestServer(t)
		server.Faucet = newTestFaucet(t, &fakeSender{}, time.Hour)

		payload := map[string]interface{}{
			"walletAddress": "0x2222222222222222222222222222222222222222",
		}
		rec := doJSON(t, server, http.MethodPost, "/faucet", payload)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, server, http.MethodPost, "/faucet", payload)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("invalid address is a 400", func(t *testing.T) {
		server, _ := newTestServer(t)
		server.Faucet = newTestFaucet(t, &fakeSender{}, time.Hour)

		rec := doJSON(t, server, http.MethodPost, "/faucet", map[string]interface{}{
			"walletAddress": "not-an-address",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing wallet is a 400", func(t *testing.T) {
		server, _ := newTestServer(t)
		server.Faucet = newTestFaucet(t, &fakeSender{}, time.Hour)

		rec := doJSON(t, server, http.MethodPost, "/faucet", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
