package task

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is a thread-safe, in-memory task store. State is ephemeral
// and lives only for the duration of the server process.
type MemoryRepository struct {
	mu    sync.Mutex
	tasks map[string]*Task
}

// NewMemoryRepository creates an empty in-memory task store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		tasks: make(map[string]*Task),
	}
}

func (r *MemoryRepository) Create(ctx context.Context) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t := &Task{
		ID:        uuid.NewString(),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.tasks[t.ID] = t

	cp := *t
	return &cp, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}

	cp := *t
	return &cp, nil
}

func (r *MemoryRepository) MarkRunning(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return false, ErrNotFound
	}
	if t.Status != StatusPending {
		return false, nil
	}

	t.Status = StatusRunning
	t.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *MemoryRepository) MarkCompleted(ctx context.Context, id string, result json.RawMessage, agentRunID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return ErrNotFound
	}
	if t.Status != StatusRunning {
		return nil
	}

	t.Status = StatusCompleted
	t.Result = result
	t.AgentRunID = agentRunID
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryRepository) MarkFailed(ctx context.Context, id string, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return ErrNotFound
	}
	if t.Status != StatusRunning {
		return nil
	}

	t.Status = StatusFailed
	t.Error = errMsg
	t.UpdatedAt = time.Now().UTC()
	return nil
}
