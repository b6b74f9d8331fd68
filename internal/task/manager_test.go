package task

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sleebit/recruiter-agent/internal/llm"
	"github.com/sleebit/recruiter-agent/internal/pipeline"
	"github.com/sleebit/recruiter-agent/internal/research"
)

const managerJD = `{"title": "Engineer", "responsibilities": [], "required_qualifications": [], "top_skills": ["Go"]}`
const managerResume = `{"personal": {"name": "Jane Doe"}, "education": [], "experience": [], "skills": ["Go"]}`
const managerWeb = `{"github_repos": [], "blogs": [], "conference_talks": [], "social_mentions": []}`
const managerFit = `{"fit_score": "Strong Fit", "score_details": {"skill_match_percentage": 100, "experience_years": 3, "domain_signal": "Low"}, "comparison_matrix": [], "reasoning": "ok"}`

// scriptedLLM returns the four stage responses in call order.
type scriptedLLM struct {
	responses []string
	failFit   bool
	calls     int
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return "", fmt.Errorf("no queries")
}

func (s *scriptedLLM) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if s.calls >= len(s.responses) {
		if s.failFit {
			return "", fmt.Errorf("model unavailable")
		}
		return "", fmt.Errorf("unexpected call %d", s.calls)
	}
	resp := s.responses[s.calls]
	s.calls++
	return resp, nil
}

func (s *scriptedLLM) GetModel(tier llm.ModelTier) string { return "fake" }
func (s *scriptedLLM) Close() error                       { return nil }

type noopSearcher struct{}

func (noopSearcher) Search(ctx context.Context, query string, num int64) ([]research.SearchResult, error) {
	return nil, nil
}

func newManager(client llm.Client) (*Manager, Repository) {
	repo := NewMemoryRepository()
	runner := pipeline.NewRunner(client, research.NewAggregator(noopSearcher{}))
	return NewManager(repo, runner, nil), repo
}

func managerInput() pipeline.Input {
	return pipeline.Input{
		CandidateName:  "Jane Doe",
		JobDescription: "Backend role",
		ResumeText:     "Jane Doe, engineer",
	}
}

func waitForTerminal(t *testing.T, m *Manager, id string) *Task {
	t.Helper()

	var got *Task
	require.Eventually(t, func() bool {
		task, err := m.Get(context.Background(), id)
		if err != nil {
			return false
		}
		got = task
		return task.Status.Terminal()
	}, 5*time.Second, 10*time.Millisecond)
	return got
}

func TestManagerSubmitCompletes(t *testing.T) {
	client := &scriptedLLM{responses: []string{managerJD, managerResume, managerWeb, managerFit}}
	m, _ := newManager(client)

	created, err := m.Submit(context.Background(), managerInput())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, created.Status)

	got := waitForTerminal(t, m, created.ID)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.NotEmpty(t, got.Result)
	assert.Empty(t, got.Error)
	assert.Contains(t, string(got.Result), "Strong Fit")
}

func TestManagerSubmitFails(t *testing.T) {
	// Only three responses: the fit assessment call errors out
	client := &scriptedLLM{responses: []string{managerJD, managerResume, managerWeb}, failFit: true}
	m, _ := newManager(client)

	created, err := m.Submit(context.Background(), managerInput())
	require.NoError(t, err)

	got := waitForTerminal(t, m, created.ID)
	assert.Equal(t, StatusFailed, got.Status)
	assert.NotEmpty(t, got.Error)
	assert.Nil(t, got.Result)
}

func TestManagerSubmitInvalidInput(t *testing.T) {
	client := &scriptedLLM{}
	m, _ := newManager(client)

	created, err := m.Submit(context.Background(), pipeline.Input{})
	require.NoError(t, err)

	// Validation happens inside the run, so the task fails rather than Submit
	got := waitForTerminal(t, m, created.ID)
	assert.Equal(t, StatusFailed, got.Status)
}

func TestManagerGetUnknown(t *testing.T) {
	m, _ := newManager(&scriptedLLM{})

	_, err := m.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
