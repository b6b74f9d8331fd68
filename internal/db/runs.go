package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sleebit/recruiter-agent/internal/pipeline"
)

// AgentRun is one archived evaluation run.
type AgentRun struct {
	ID              uuid.UUID       `json:"id"`
	CandidateName   string          `json:"candidate_name"`
	FitScore        string          `json:"fit_score"`
	Result          json.RawMessage `json:"result"`
	FormattedOutput string          `json:"formatted_output,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RecordRun archives a completed pipeline run and returns the new record ID.
// Runs are insert-only; they are never updated after the fact.
func (db *DB) RecordRun(ctx context.Context, state *pipeline.State) (string, error) {
	result, err := json.Marshal(state)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run state: %w", err)
	}

	fitScore := ""
	if state.FitAssessment != nil {
		fitScore = state.FitAssessment.FitScore
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO agent_runs (id, candidate_name, fit_score, result, formatted_output)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, state.CandidateName, fitScore, result, state.FormattedOutput,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}

	return id.String(), nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]AgentRun, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, candidate_name, fit_score, result, formatted_output, created_at
		 FROM agent_runs
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]AgentRun, 0, limit)
	for rows.Next() {
		var run AgentRun
		if err := rows.Scan(&run.ID, &run.CandidateName, &run.FitScore, &run.Result, &run.FormattedOutput, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}
