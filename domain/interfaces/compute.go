package interfaces

import (
	"context"

	"tee-settlement/domain/entities"
)

// OrderAssembler builds, signs and matches the three orders required to
// start a confidential-computation task.
type OrderAssembler interface {
	// Assemble produces (dealID, taskID) for a publicly fetchable input
	// data URL. Fails with ErrConfiguration when the application is not
	// deployed, ErrNoCapacity when the order book is empty, and ErrNetwork
	// on transport failures. No local state is created.
	Assemble(ctx context.Context, datasetURL string) (dealID string, taskID string, err error)
}

// Marketplace is the compute network's order book and matching entry point.
type Marketplace interface {
	// FetchWorkerpoolOrders queries the order book for pool orders
	// compatible with the application, tag and a minimum volume of one.
	FetchWorkerpoolOrders(ctx context.Context, app string, tag string) ([]entities.WorkerpoolOrder, error)

	// MatchOrders matches the three orders atomically and returns the
	// resulting deal id.
	MatchOrders(ctx context.Context, appOrder entities.AppOrder, poolOrder entities.WorkerpoolOrder, requestOrder entities.RequestOrder) (string, error)

	// Ping checks marketplace reachability for health probes.
	Ping(ctx context.Context) error
}

// TaskObserver blocks until a task reaches a terminal state or a deadline
// elapses. The single place in the system converting an unbounded external
// wait into a bounded one.
type TaskObserver interface {
	// Wait resolves nil on normal completion, ErrTaskObservation when the
	// stream reports a failure, and ErrTimeout when the deadline fires
	// first. The underlying subscription is always released.
	Wait(ctx context.Context, taskID string, dealID string) error
}

// TaskStatusResult pairs the mapped task status with its result payload.
// Result is nil unless Status is COMPLETED.
type TaskStatusResult struct {
	Status entities.TaskStatus
	Result *entities.TaskResult
}

// ResultFetcher retrieves and decodes a task's output.
type ResultFetcher interface {
	// Fetch returns the task status and, for completed tasks, the decoded
	// result payload. A completed task with a missing or undecodable
	// payload fails with ErrResultFormat.
	Fetch(ctx context.Context, taskID string) (*TaskStatusResult, error)
}
