package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sleebit/recruiter-agent/internal/task"
)

// TaskRepository is the PostgreSQL-backed task store. Status transition
// guards are enforced with conditional updates, so they hold across multiple
// server processes sharing one database.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a task repository on the given database.
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context) (*task.Task, error) {
	now := time.Now().UTC()
	t := &task.Task{
		ID:        uuid.NewString(),
		Status:    task.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.pool.Exec(ctx,
		`INSERT INTO tasks (id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		t.ID, string(t.Status), t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

func (r *TaskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	var t task.Task
	var status string
	var result []byte
	var agentRunID *uuid.UUID

	err := r.db.pool.QueryRow(ctx,
		`SELECT id, status, result, error, agent_run_id, created_at, updated_at
		 FROM tasks WHERE id = $1`,
		id,
	).Scan(&t.ID, &status, &result, &t.Error, &agentRunID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, task.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	t.Status = task.Status(status)
	t.Result = result
	if agentRunID != nil {
		t.AgentRunID = agentRunID.String()
	}
	return &t, nil
}

func (r *TaskRepository) MarkRunning(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.pool.Exec(ctx,
		`UPDATE tasks SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status = $3`,
		string(task.StatusRunning), id, string(task.StatusPending),
	)
	if err != nil {
		return false, fmt.Errorf("failed to start task: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Distinguish a guard miss from an unknown task
	if _, err := r.Get(ctx, id); err != nil {
		return false, err
	}
	return false, nil
}

func (r *TaskRepository) MarkCompleted(ctx context.Context, id string, result json.RawMessage, agentRunID string) error {
	var runID any
	if agentRunID != "" {
		runID = agentRunID
	}

	tag, err := r.db.pool.Exec(ctx,
		`UPDATE tasks SET status = $1, result = $2, agent_run_id = $3, updated_at = NOW()
		 WHERE id = $4 AND status = $5`,
		string(task.StatusCompleted), []byte(result), runID, id, string(task.StatusRunning),
	)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepository) MarkFailed(ctx context.Context, id string, errMsg string) error {
	tag, err := r.db.pool.Exec(ctx,
		`UPDATE tasks SET status = $1, error = $2, updated_at = NOW()
		 WHERE id = $3 AND status = $4`,
		string(task.StatusFailed), errMsg, id, string(task.StatusRunning),
	)
	if err != nil {
		return fmt.Errorf("failed to mark task failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
