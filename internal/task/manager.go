package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sleebit/recruiter-agent/internal/pipeline"
)

// Recorder persists completed pipeline runs. The returned ID links the task
// to the stored record.
type Recorder interface {
	RecordRun(ctx context.Context, state *pipeline.State) (string, error)
}

// Manager submits pipeline runs as background tasks and tracks their state.
type Manager struct {
	repo     Repository
	runner   *pipeline.Runner
	recorder Recorder // optional
}

// NewManager creates a task manager. recorder may be nil when runs are not
// persisted.
func NewManager(repo Repository, runner *pipeline.Runner, recorder Recorder) *Manager {
	return &Manager{
		repo:     repo,
		runner:   runner,
		recorder: recorder,
	}
}

// Submit creates a pending task and starts the pipeline in a goroutine.
// It returns as soon as the task is stored.
func (m *Manager) Submit(ctx context.Context, input pipeline.Input) (*Task, error) {
	t, err := m.repo.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	go m.run(t.ID, input)

	return t, nil
}

// Get returns the current state of a task.
func (m *Manager) Get(ctx context.Context, id string) (*Task, error) {
	return m.repo.Get(ctx, id)
}

// run executes the pipeline for a task. It deliberately uses a fresh context:
// the HTTP request that submitted the task has long since returned.
func (m *Manager) run(id string, input pipeline.Input) {
	ctx := context.Background()

	started, err := m.repo.MarkRunning(ctx, id)
	if err != nil || !started {
		if err != nil {
			log.Printf("[TASK] failed to start task %s: %v", id, err)
		}
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[TASK] task %s panicked: %v", id, rec)
			m.fail(ctx, id, fmt.Sprintf("internal error: %v", rec))
		}
	}()

	state, err := m.runner.Run(ctx, input)
	if err != nil {
		m.fail(ctx, id, err.Error())
		return
	}

	result, err := json.Marshal(state)
	if err != nil {
		m.fail(ctx, id, fmt.Sprintf("failed to encode result: %v", err))
		return
	}

	agentRunID := ""
	if m.recorder != nil {
		agentRunID, err = m.recorder.RecordRun(ctx, state)
		if err != nil {
			// The run succeeded; losing the archive row should not fail the task
			log.Printf("[TASK] failed to persist run for task %s: %v", id, err)
		}
	}

	if err := m.repo.MarkCompleted(ctx, id, result, agentRunID); err != nil {
		log.Printf("[TASK] failed to complete task %s: %v", id, err)
	}
}

func (m *Manager) fail(ctx context.Context, id string, msg string) {
	if err := m.repo.MarkFailed(ctx, id, msg); err != nil {
		log.Printf("[TASK] failed to mark task %s failed: %v", id, err)
	}
}
