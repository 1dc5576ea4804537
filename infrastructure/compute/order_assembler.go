package compute

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"tee-settlement/domain/entities"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// orderAssembler implements the OrderAssembler interface. All state created
// by assembly lives on the compute network; nothing is persisted locally.
type orderAssembler struct {
	chain     interfaces.BlockchainClient
	market    interfaces.Marketplace
	key       *ecdsa.PrivateKey
	requester common.Address
	app       common.Address
	logger    interfaces.Logger
}

// NewOrderAssembler creates an order assembler signing with the requester
// (task-submission) key.
func NewOrderAssembler(
	chain interfaces.BlockchainClient,
	market interfaces.Marketplace,
	appAddress string,
	requesterKeyHex string,
	logger interfaces.Logger,
) (interfaces.OrderAssembler, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(requesterKeyHex, "0x"))
	if err != nil {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid requester key")
	}

	if !common.IsHexAddress(appAddress) {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid application address")
	}

	return &orderAssembler{
		chain:     chain,
		market:    market,
		key:       key,
		requester: crypto.PubkeyToAddress(key.PublicKey),
		app:       common.HexToAddress(appAddress),
		logger:    logger,
	}, nil
}

// Assemble builds, signs and matches the three orders and derives the
// deterministic task id for the resulting deal.
func (a *orderAssembler) Assemble(ctx context.Context, datasetURL string) (string, string, error) {
	// The application must exist on the network before any order can
	// reference it.
	code, err := a.chain.CodeAt(ctx, a.app)
	if err != nil {
		return "", "", errors.NewDomainError(errors.ErrNetwork, err.Error())
	}
	if len(code) == 0 {
		return "", "", errors.NewDomainError(errors.ErrConfiguration,
			"application "+a.app.Hex()+" is not deployed on the compute network")
	}

	appOrder := a.buildAppOrder()

	pools, err := a.market.FetchWorkerpoolOrders(ctx, a.app.Hex(), entities.TeeTag)
	if err != nil {
		return "", "", errors.NewDomainError(errors.ErrNetwork, err.Error())
	}
	if len(pools) == 0 {
		// Not retried here; the caller decides whether to retry.
		return "", "", errors.NewDomainError(errors.ErrNoCapacity,
			"no workerpool order available for tag "+entities.TeeTag)
	}

	// Cheapest pool first.
	sort.Slice(pools, func(i, j int) bool {
		return pools[i].WorkerpoolPrice.Cmp(pools[j].WorkerpoolPrice) < 0
	})
	poolOrder := pools[0]

	requestOrder := a.buildRequestOrder(appOrder, poolOrder, datasetURL)

	dealID, err := a.market.MatchOrders(ctx, appOrder, poolOrder, requestOrder)
	if err != nil {
		return "", "", errors.NewDomainError(errors.ErrNetwork, err.Error())
	}

	taskID := DeriveTaskID(dealID, 0)

	a.logger.Info("Orders matched",
		"dealId", dealID,
		"taskId", taskID,
		"workerpool", poolOrder.Workerpool.Hex())

	return dealID, taskID, nil
}

// buildAppOrder produces an app order restricted to our own requester
// address so it cannot be consumed by third parties.
func (a *orderAssembler) buildAppOrder() entities.AppOrder {
	order := entities.AppOrder{
		App:               a.app,
		AppPrice:          big.NewInt(0),
		Volume:            big.NewInt(1),
		Tag:               entities.TeeTag,
		RequesterRestrict: a.requester,
		Salt:              newSalt(),
	}
	order.Signature = a.sign(hashAppOrder(order))
	return order
}

// buildRequestOrder references the chosen application and pool category.
// No dataset-market object is used; the dataset travels as an input file URL.
// Prices never exceed the matched orders.
func (a *orderAssembler) buildRequestOrder(
	appOrder entities.AppOrder,
	poolOrder entities.WorkerpoolOrder,
	datasetURL string,
) entities.RequestOrder {
	order := entities.RequestOrder{
		App:                a.app,
		AppMaxPrice:        new(big.Int).Set(appOrder.AppPrice),
		Dataset:            common.Address{},
		WorkerpoolMaxPrice: new(big.Int).Set(poolOrder.WorkerpoolPrice),
		Requester:          a.requester,
		Category:           poolOrder.Category,
		InputFiles:         []string{datasetURL},
		Tag:                entities.TeeTag,
		Salt:               newSalt(),
	}
	order.Signature = a.sign(hashRequestOrder(order))
	return order
}

func (a *orderAssembler) sign(hash common.Hash) string {
	sig, err := crypto.Sign(hash.Bytes(), a.key)
	if err != nil {
		// Signing a 32-byte digest with a validated key cannot fail.
		a.logger.Error("Order signing failed", "error", err)
		return ""
	}
	return hexutil.Encode(sig)
}

func hashAppOrder(o entities.AppOrder) common.Hash {
	return crypto.Keccak256Hash(
		o.App.Bytes(),
		common.LeftPadBytes(o.AppPrice.Bytes(), 32),
		common.LeftPadBytes(o.Volume.Bytes(), 32),
		common.HexToHash(o.Tag).Bytes(),
		o.RequesterRestrict.Bytes(),
		common.HexToHash(o.Salt).Bytes(),
	)
}

func hashRequestOrder(o entities.RequestOrder) common.Hash {
	segments := [][]byte{
		o.App.Bytes(),
		common.LeftPadBytes(o.AppMaxPrice.Bytes(), 32),
		o.Dataset.Bytes(),
		common.LeftPadBytes(o.WorkerpoolMaxPrice.Bytes(), 32),
		o.Requester.Bytes(),
		common.LeftPadBytes(new(big.Int).SetUint64(o.Category).Bytes(), 32),
		common.HexToHash(o.Tag).Bytes(),
		common.HexToHash(o.Salt).Bytes(),
	}
	for _, f := range o.InputFiles {
		segments = append(segments, crypto.Keccak256([]byte(f)))
	}
	return crypto.Keccak256Hash(segments...)
}

func newSalt() string {
	return crypto.Keccak256Hash([]byte(uuid.NewString())).Hex()
}
