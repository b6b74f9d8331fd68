// Package task provides asynchronous task tracking for pipeline runs.
// Submitting an evaluation returns a task immediately; the pipeline runs in
// the background and the task records its terminal result or error.
package task

import (
	"encoding/json"
	"time"
)

// Status is the lifecycle state of a task.
type Status string

// Task lifecycle states. Transitions only move forward:
// pending → running → completed | failed.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Task is one asynchronous pipeline run.
type Task struct {
	ID        string          `json:"task_id"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	// AgentRunID links to the persisted run record once the result is stored.
	AgentRunID string `json:"agent_run_id,omitempty"`
}
