package httpapi

import (
	"context"
	goerrors "errors"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// FaucetSender transfers test tokens to a wallet and returns the
// transaction hash.
type FaucetSender interface {
	Send(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
}

// Faucet hands out a fixed token amount per wallet, rate limited by a
// per-address cooldown. Claim bookkeeping is in memory only.
type Faucet struct {
	sender   FaucetSender
	amount   *big.Int
	cooldown time.Duration
	logger   interfaces.Logger

	mu        sync.Mutex
	lastClaim map[common.Address]time.Time
}

func NewFaucet(sender FaucetSender, amount *big.Int, cooldown time.Duration, logger interfaces.Logger) *Faucet {
	return &Faucet{
		sender:    sender,
		amount:    new(big.Int).Set(amount),
		cooldown:  cooldown,
		logger:    logger,
		lastClaim: make(map[common.Address]time.Time),
	}
}

// Claim sends the faucet amount to the wallet. Returns ErrNoCapacity
// while the wallet is inside its cooldown window.
func (f *Faucet) Claim(ctx context.Context, to common.Address) (common.Hash, error) {
	f.mu.Lock()
	last, claimed := f.lastClaim[to]
	if claimed && time.Since(last) < f.cooldown {
		f.mu.Unlock()
		return common.Hash{}, errors.NewDomainError(errors.ErrNoCapacity, "wallet is still in its faucet cooldown window")
	}
	f.lastClaim[to] = time.Now()
	f.mu.Unlock()

	txHash, err := f.sender.Send(ctx, to, f.amount)
	if err != nil {
		f.mu.Lock()
		if claimed {
			f.lastClaim[to] = last
		} else {
			delete(f.lastClaim, to)
		}
		f.mu.Unlock()
		return common.Hash{}, err
	}

	f.logger.Info("Faucet claim sent",
		"wallet", to.Hex(),
		"txHash", txHash.Hex())
	return txHash, nil
}

type faucetRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

func (s *Server) handleFaucet(c *gin.Context) {
	var req faucetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walletAddress is required"})
		return
	}
	if !common.IsHexAddress(req.WalletAddress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "walletAddress is not a valid address"})
		return
	}

	txHash, err := s.Faucet.Claim(c.Request.Context(), common.HexToAddress(req.WalletAddress))
	if err != nil {
		if goerrors.Is(err, errors.ErrNoCapacity) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
			return
		}
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"txHash": txHash.Hex()})
}
