package task

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a task ID is unknown.
var ErrNotFound = errors.New("task not found")

// Repository stores tasks and enforces the status transition guards.
// Implementations must make each transition atomic: MarkRunning succeeds only
// from pending, MarkCompleted and MarkFailed only from running.
type Repository interface {
	// Create stores a new pending task and returns it.
	Create(ctx context.Context) (*Task, error)

	// Get returns a copy of the task, or ErrNotFound.
	Get(ctx context.Context, id string) (*Task, error)

	// MarkRunning transitions pending → running. Returns false without error
	// when the task was not pending, so duplicate starts become no-ops.
	MarkRunning(ctx context.Context, id string) (bool, error)

	// MarkCompleted transitions running → completed and stores the result.
	MarkCompleted(ctx context.Context, id string, result json.RawMessage, agentRunID string) error

	// MarkFailed transitions running → failed and stores the error message.
	MarkFailed(ctx context.Context, id string, errMsg string) error
}
