package compute

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"tee-settlement/domain/errors"
	"tee-settlement/domain/interfaces"
)

// LogSubscriber is the subset of the chain client the observer needs.
// *ethclient.Client satisfies it.
type LogSubscriber interface {
	SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
}

// taskObserver implements the TaskObserver interface over the hub
// contract's push-based log stream. It is the single place the system
// converts an unbounded external wait into a bounded one.
type taskObserver struct {
	subscriber LogSubscriber
	hub        common.Address
	limit      time.Duration
	logger     interfaces.Logger
}

// NewTaskObserver creates an observer bound to the hub contract address
// with a fixed observation deadline.
func NewTaskObserver(
	subscriber LogSubscriber,
	hubAddress string,
	limit time.Duration,
	logger interfaces.Logger,
) (interfaces.TaskObserver, error) {
	if !common.IsHexAddress(hubAddress) {
		return nil, errors.NewDomainError(errors.ErrConfiguration, "invalid hub address")
	}

	return &taskObserver{
		subscriber: subscriber,
		hub:        common.HexToAddress(hubAddress),
		limit:      limit,
		logger:     logger,
	}, nil
}

// Wait blocks until the task reaches a terminal state or the deadline
// elapses. Exactly one outcome fires; the subscription and timer are
// released on every path.
func (o *taskObserver) Wait(ctx context.Context, taskID string, dealID string) error {
	id := common.HexToHash(taskID)

	logs := make(chan types.Log, 4)
	query := ethereum.FilterQuery{
		Addresses: []common.Address{o.hub},
		Topics: [][]common.Hash{
			{taskFinalizeTopic, taskFailedTopic},
			{id},
		},
	}

	sub, err := o.subscriber.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return errors.NewDomainError(errors.ErrNetwork, err.Error())
	}
	defer sub.Unsubscribe()

	timer := time.NewTimer(o.limit)
	defer timer.Stop()

	o.logger.Info("Observing task", "taskId", taskID, "dealId", dealID, "limit", o.limit)

	errCh := sub.Err()
	for {
		select {
		case lg := <-logs:
			if len(lg.Topics) == 0 {
				continue
			}
			switch lg.Topics[0] {
			case taskFinalizeTopic:
				o.logger.Info("Task finalized", "taskId", taskID, "block", lg.BlockNumber)
				return nil
			case taskFailedTopic:
				return errors.NewDomainError(errors.ErrTaskObservation,
					"task "+taskID+" reported failure on deal "+dealID)
			}

		case err := <-errCh:
			if err == nil {
				// Channel closed without error; keep waiting for the timer.
				errCh = nil
				continue
			}
			return errors.NewDomainError(errors.ErrTaskObservation, err.Error())

		case <-timer.C:
			return errors.NewDomainError(errors.ErrTimeout,
				"task "+taskID+" did not reach a terminal state within "+o.limit.String())

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
