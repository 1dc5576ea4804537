// Package blockchain provides the chain infrastructure for the settlement
// service: the Ethereum client wrapper, the settlement contract executor and
// the treasury balance reader.
package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// ethereumClient implements the BlockchainClient interface.
type ethereumClient struct {
	client  *ethclient.Client
	chainID int64
}

// NewEthereumClient creates a new Ethereum client and verifies the chain id
// of the endpoint it connected to.
func NewEthereumClient(rpcURL string, chainID int64) (interfaces.BlockchainClient, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, &errors.BlockchainError{
			Operation: "Dial",
			ChainID:   chainID,
			Err:       err,
		}
	}

	// Verify chain ID.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	networkID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, &errors.BlockchainError{
			Operation: "ChainID",
			ChainID:   chainID,
			Err:       err,
		}
	}

	if networkID.Int64() != chainID {
		client.Close()
		return nil, &errors.BlockchainError{
			Operation: "ChainID",
			ChainID:   chainID,
			Err:       fmt.Errorf("chain ID mismatch: expected %d, got %d", chainID, networkID.Int64()),
		}
	}

	return &ethereumClient{
		client:  client,
		chainID: chainID,
	}, nil
}

// GetBlockNumber returns the current block number.
func (c *ethereumClient) GetBlockNumber(ctx context.Context) (uint64, error) {
	blockNumber, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, &errors.BlockchainError{
			Operation: "GetBlockNumber",
			ChainID:   c.chainID,
			Err:       err,
		}
	}

	return blockNumber, nil
}

// CodeAt returns the bytecode deployed at an address at the latest block.
func (c *ethereumClient) CodeAt(ctx context.Context, address common.Address) ([]byte, error) {
	code, err := c.client.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, &errors.BlockchainError{
			Operation: "CodeAt",
			ChainID:   c.chainID,
			Err:       err,
		}
	}

	return code, nil
}

// Close closes the blockchain client connection.
func (c *ethereumClient) Close() error {
	c.client.Close()
	return nil
}
